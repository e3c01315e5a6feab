// internal/controller/campaign_controller.go
package controller

import (
    "encoding/json"
    "errors"
    "io"
    "net/http"

    "github.com/go-chi/chi/v5"

    appErrors "github.com/unclebandit/adleopard-backend/internal/errors"
    "github.com/unclebandit/adleopard-backend/internal/service"
)

type CampaignController struct {
    CampaignService *service.CampaignService
}

func (c *CampaignController) ListCampaigns(w http.ResponseWriter, r *http.Request) {
    campaigns, err := c.CampaignService.ListCampaigns()
    if err != nil {
        http.Error(w, "failed to list campaigns: "+err.Error(), http.StatusInternalServerError)
        return
    }

    w.Header().Set("Content-Type", "application/json")
    json.NewEncoder(w).Encode(map[string]interface{}{
        "data":  campaigns,
        "count": len(campaigns),
    })
}

func (c *CampaignController) GetCampaign(w http.ResponseWriter, r *http.Request) {
    id := chi.URLParam(r, "id")

    campaign, err := c.CampaignService.GetCampaign(id)
    if err != nil {
        var notFound *appErrors.CampaignNotFoundError
        if errors.As(err, &notFound) {
            http.Error(w, err.Error(), http.StatusNotFound)
            return
        }
        http.Error(w, "failed to fetch campaign: "+err.Error(), http.StatusInternalServerError)
        return
    }

    w.Header().Set("Content-Type", "application/json")
    json.NewEncoder(w).Encode(campaign)
}

func (c *CampaignController) CreateCampaign(w http.ResponseWriter, r *http.Request) {
    raw, err := io.ReadAll(r.Body)
    if err != nil {
        http.Error(w, "invalid body", http.StatusBadRequest)
        return
    }

    campaign, err := c.CampaignService.CreateCampaign(raw)
    if err != nil {
        var invalid *appErrors.ValidationError
        if errors.As(err, &invalid) {
            writeValidationError(w, invalid)
            return
        }
        var exists *appErrors.CampaignExistsError
        if errors.As(err, &exists) {
            http.Error(w, err.Error(), http.StatusConflict)
            return
        }
        http.Error(w, "failed to create campaign: "+err.Error(), http.StatusInternalServerError)
        return
    }

    w.Header().Set("Content-Type", "application/json")
    w.WriteHeader(http.StatusCreated)
    json.NewEncoder(w).Encode(campaign)
}

func (c *CampaignController) UpdateCampaign(w http.ResponseWriter, r *http.Request) {
    id := chi.URLParam(r, "id")

    raw, err := io.ReadAll(r.Body)
    if err != nil {
        http.Error(w, "invalid body", http.StatusBadRequest)
        return
    }

    campaign, err := c.CampaignService.UpdateCampaign(id, raw)
    if err != nil {
        var invalid *appErrors.ValidationError
        if errors.As(err, &invalid) {
            writeValidationError(w, invalid)
            return
        }
        http.Error(w, "failed to update campaign: "+err.Error(), http.StatusInternalServerError)
        return
    }

    w.Header().Set("Content-Type", "application/json")
    json.NewEncoder(w).Encode(campaign)
}

func (c *CampaignController) DeleteCampaign(w http.ResponseWriter, r *http.Request) {
    id := chi.URLParam(r, "id")

    if err := c.CampaignService.DeleteCampaign(id); err != nil {
        var notFound *appErrors.CampaignNotFoundError
        if errors.As(err, &notFound) {
            http.Error(w, err.Error(), http.StatusNotFound)
            return
        }
        http.Error(w, "failed to delete campaign: "+err.Error(), http.StatusInternalServerError)
        return
    }

    w.WriteHeader(http.StatusNoContent)
}

func writeValidationError(w http.ResponseWriter, invalid *appErrors.ValidationError) {
    w.Header().Set("Content-Type", "application/json")
    w.WriteHeader(http.StatusBadRequest)
    json.NewEncoder(w).Encode(map[string]interface{}{
        "error":  "validation failed",
        "fields": invalid.Fields,
    })
}
