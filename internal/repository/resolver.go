// internal/repository/resolver.go
package repository

import (
    "encoding/json"
    "errors"

    appErrors "github.com/unclebandit/adleopard-backend/internal/errors"
    "github.com/unclebandit/adleopard-backend/internal/model"
    "github.com/unclebandit/adleopard-backend/internal/storage"
)

// Resolver maps a logical campaign id to the physical slot holding its
// record. Slots default to "{id}.json" but are not guaranteed to stay in
// sync with the record's current campaign_id (a record can be renamed in
// place without its slot being renamed), so lookups fall back to scanning
// the whole namespace when the default name misses.
type Resolver struct {
    NS storage.Namespace
}

// DefaultSlot is the conventional slot name for an id.
func DefaultSlot(id string) string {
    return id + ".json"
}

// ForRead returns the slot currently holding the record for id.
//
// Fast path: the default slot name, if it exists and parses. Fallback: scan
// every slot and return the first whose campaign_id field matches; slots
// that fail to parse are skipped. When several slots claim the same id the
// first one enumerated wins; no duplicate detection is attempted.
func (r *Resolver) ForRead(id string) (string, error) {
    slot := DefaultSlot(id)
    data, err := r.NS.Read(slot)
    if err == nil {
        var c model.Campaign
        if json.Unmarshal(data, &c) == nil {
            return slot, nil
        }
    } else if !errors.Is(err, storage.ErrSlotNotFound) {
        return "", &appErrors.StorageUnavailableError{Err: err}
    }

    match, err := r.scan(id)
    if err != nil {
        return "", err
    }
    if match == "" {
        return "", appErrors.NewCampaignNotFound(id)
    }
    return match, nil
}

// ForWrite returns the slot a write for id should target. Same search as
// ForRead, but a miss falls back to the default slot name so a write is
// always satisfiable (it creates a new slot).
func (r *Resolver) ForWrite(id string) (string, error) {
    slot, err := r.ForRead(id)
    if err != nil {
        var notFound *appErrors.CampaignNotFoundError
        if errors.As(err, &notFound) {
            return DefaultSlot(id), nil
        }
        return "", err
    }
    return slot, nil
}

func (r *Resolver) scan(id string) (string, error) {
    names, err := r.NS.List()
    if err != nil {
        return "", &appErrors.StorageUnavailableError{Err: err}
    }

    for _, name := range names {
        data, err := r.NS.Read(name)
        if err != nil {
            continue
        }
        var c model.Campaign
        if err := json.Unmarshal(data, &c); err != nil {
            continue
        }
        if c.CampaignID == id {
            return name, nil
        }
    }
    return "", nil
}
