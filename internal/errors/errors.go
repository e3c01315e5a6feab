// internal/errors/errors.go
package appErrors

import (
    "fmt"
    "strings"
)

// CampaignNotFoundError means no slot resolves to the requested campaign id,
// or the resolved slot no longer holds a valid record.
type CampaignNotFoundError struct {
    CampaignID string
}

func (e *CampaignNotFoundError) Error() string {
    return fmt.Sprintf("campaign %q not found", e.CampaignID)
}

// Helper constructor
func NewCampaignNotFound(id string) error {
    return &CampaignNotFoundError{CampaignID: id}
}

// CampaignExistsError means a create targeted an id that already resolves
// to a slot.
type CampaignExistsError struct {
    CampaignID string
}

func (e *CampaignExistsError) Error() string {
    return fmt.Sprintf("campaign %q already exists", e.CampaignID)
}

// FieldError is a single schema violation.
type FieldError struct {
    Path   string `json:"field_path"`
    Reason string `json:"reason"`
}

// ValidationError carries every schema violation found in a candidate
// record, not just the first, so a caller can display all problems at once.
type ValidationError struct {
    Fields []FieldError
}

func (e *ValidationError) Error() string {
    parts := make([]string, len(e.Fields))
    for i, f := range e.Fields {
        parts[i] = f.Path + ": " + f.Reason
    }
    return fmt.Sprintf("validation failed (%d violations): %s", len(e.Fields), strings.Join(parts, "; "))
}

// StorageUnavailableError means the storage namespace itself is unreachable,
// as opposed to an individual slot being missing.
type StorageUnavailableError struct {
    Err error
}

func (e *StorageUnavailableError) Error() string {
    return "storage unavailable: " + e.Err.Error()
}

func (e *StorageUnavailableError) Unwrap() error {
    return e.Err
}
