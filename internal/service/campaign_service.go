// internal/service/campaign_service.go
package service

import (
    "encoding/json"

    "github.com/google/uuid"

    appErrors "github.com/unclebandit/adleopard-backend/internal/errors"
    "github.com/unclebandit/adleopard-backend/internal/model"
    "github.com/unclebandit/adleopard-backend/internal/repository"
)

type CampaignService struct {
    CampaignRepo repository.CampaignRepositoryInterface
}

// CreateCampaign stores a new campaign. The id comes from the candidate's
// campaign_id field, or is generated when the field is absent. Creating an
// id that already resolves to a slot is a conflict; updates go through
// UpdateCampaign instead.
func (s *CampaignService) CreateCampaign(raw []byte) (*model.CampaignWithStatus, error) {
    var peek struct {
        CampaignID string `json:"campaign_id"`
    }
    // Decode failures surface from schema validation inside Put.
    _ = json.Unmarshal(raw, &peek)

    id := peek.CampaignID
    if id == "" {
        id = uuid.NewString()
        // Validation requires a non-empty campaign_id, so splice the
        // generated one into the candidate before storing.
        var doc map[string]any
        if err := json.Unmarshal(raw, &doc); err == nil {
            doc["campaign_id"] = id
            if patched, err := json.Marshal(doc); err == nil {
                raw = patched
            }
        }
    }

    exists, err := s.CampaignRepo.Exists(id)
    if err != nil {
        return nil, err
    }
    if exists {
        return nil, &appErrors.CampaignExistsError{CampaignID: id}
    }

    return s.CampaignRepo.Put(id, raw)
}

// UpdateCampaign is a full overwrite of the record for id.
func (s *CampaignService) UpdateCampaign(id string, raw []byte) (*model.CampaignWithStatus, error) {
    return s.CampaignRepo.Put(id, raw)
}

func (s *CampaignService) GetCampaign(id string) (*model.CampaignWithStatus, error) {
    return s.CampaignRepo.Get(id)
}

func (s *CampaignService) ListCampaigns() ([]model.CampaignWithStatus, error) {
    return s.CampaignRepo.List()
}

func (s *CampaignService) DeleteCampaign(id string) error {
    return s.CampaignRepo.Delete(id)
}
