// internal/repository/campaign_repository.go
package repository

import (
    "encoding/json"
    "errors"
    "log"
    "time"

    appErrors "github.com/unclebandit/adleopard-backend/internal/errors"
    "github.com/unclebandit/adleopard-backend/internal/model"
    "github.com/unclebandit/adleopard-backend/internal/schema"
    "github.com/unclebandit/adleopard-backend/internal/storage"
)

type CampaignRepositoryInterface interface {
    Get(id string) (*model.CampaignWithStatus, error)
    Put(id string, raw []byte) (*model.CampaignWithStatus, error)
    Delete(id string) error
    List() ([]model.CampaignWithStatus, error)
    Exists(id string) (bool, error)
}

// CampaignRepository is the campaign document store: get/put/delete/list over
// an injected storage namespace, with schema validation at the boundary.
type CampaignRepository struct {
    NS       storage.Namespace
    Schema   *schema.Validator
    Resolver *Resolver
}

// Get loads the record for id. A resolved slot whose content fails schema
// validation reads as not-found rather than as a distinct error: a slot
// either yields a valid record or the record does not exist from the
// caller's point of view.
func (r *CampaignRepository) Get(id string) (*model.CampaignWithStatus, error) {
    slot, err := r.Resolver.ForRead(id)
    if err != nil {
        return nil, err
    }

    data, err := r.NS.Read(slot)
    if err != nil {
        if errors.Is(err, storage.ErrSlotNotFound) {
            return nil, appErrors.NewCampaignNotFound(id)
        }
        return nil, &appErrors.StorageUnavailableError{Err: err}
    }

    c, err := r.Schema.Validate(data)
    if err != nil {
        var invalid *appErrors.ValidationError
        if errors.As(err, &invalid) {
            log.Printf("⚠️ slot %s failed validation on read, treating as not found: %v", slot, err)
            return nil, appErrors.NewCampaignNotFound(id)
        }
        return nil, err
    }

    return withStatus(c), nil
}

// Put validates the candidate, forces its campaign_id to the requested id,
// and fully overwrites whatever slot currently holds that id (or creates
// the default-named slot for a new id). No merge semantics: callers wanting
// a partial update must read-modify-write themselves.
func (r *CampaignRepository) Put(id string, raw []byte) (*model.CampaignWithStatus, error) {
    c, err := r.Schema.Validate(raw)
    if err != nil {
        return nil, err
    }
    c.CampaignID = id

    slot, err := r.Resolver.ForWrite(id)
    if err != nil {
        return nil, err
    }

    data, err := json.MarshalIndent(c, "", "  ")
    if err != nil {
        return nil, err
    }
    if err := r.NS.Write(slot, data); err != nil {
        return nil, &appErrors.StorageUnavailableError{Err: err}
    }

    return withStatus(c), nil
}

// Delete removes the slot for id. Deleting an unresolvable id reports
// not-found; callers may treat that as a successful idempotent delete.
func (r *CampaignRepository) Delete(id string) error {
    slot, err := r.Resolver.ForRead(id)
    if err != nil {
        return err
    }
    if err := r.NS.Delete(slot); err != nil {
        if errors.Is(err, storage.ErrSlotNotFound) {
            return appErrors.NewCampaignNotFound(id)
        }
        return &appErrors.StorageUnavailableError{Err: err}
    }
    return nil
}

// List returns every valid record in the namespace with its derived status.
// Unparsable or invalid slots are skipped and logged, never fatal: partial
// results are preferred over failing the whole listing. No ordering is
// guaranteed; sorting is a presentation concern.
func (r *CampaignRepository) List() ([]model.CampaignWithStatus, error) {
    names, err := r.NS.List()
    if err != nil {
        return nil, &appErrors.StorageUnavailableError{Err: err}
    }

    campaigns := []model.CampaignWithStatus{}
    for _, name := range names {
        data, err := r.NS.Read(name)
        if err != nil {
            log.Printf("⚠️ skipping slot %s: %v", name, err)
            continue
        }
        c, err := r.Schema.Validate(data)
        if err != nil {
            log.Printf("⚠️ skipping invalid slot %s: %v", name, err)
            continue
        }
        campaigns = append(campaigns, *withStatus(c))
    }
    return campaigns, nil
}

// Exists reports whether id currently resolves to a slot.
func (r *CampaignRepository) Exists(id string) (bool, error) {
    _, err := r.Resolver.ForRead(id)
    if err != nil {
        var notFound *appErrors.CampaignNotFoundError
        if errors.As(err, &notFound) {
            return false, nil
        }
        return false, err
    }
    return true, nil
}

func withStatus(c *model.Campaign) *model.CampaignWithStatus {
    return &model.CampaignWithStatus{
        Campaign: *c,
        Status:   model.DeriveStatus(c.CampaignStartDate, c.CampaignEndDate, time.Now().UTC()),
    }
}

var _ CampaignRepositoryInterface = (*CampaignRepository)(nil)
