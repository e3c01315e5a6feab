package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	appErrors "github.com/unclebandit/adleopard-backend/internal/errors"
	"github.com/unclebandit/adleopard-backend/internal/service"
)

// CampaignHandler holds the dependencies for the non-CRUD campaign endpoints
type CampaignHandler struct {
	CampaignService   *service.CampaignService
	AssetService      *service.AssetService
	ComplianceService *service.ComplianceService
}

// GenerateAssetsHandler queues an asset-generation job for a campaign
func (h *CampaignHandler) GenerateAssetsHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	log.Println("📥 Asset generation requested for campaign:", id)

	result, err := h.AssetService.QueueAssetGeneration(id)
	if err != nil {
		var notFound *appErrors.CampaignNotFoundError
		if errors.As(err, &notFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, "failed to queue asset generation: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(result)
}

// ComplianceHandler runs the keyword compliance checks over a campaign
func (h *CampaignHandler) ComplianceHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	record, err := h.CampaignService.GetCampaign(id)
	if err != nil {
		var notFound *appErrors.CampaignNotFoundError
		if errors.As(err, &notFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, "failed to fetch campaign: "+err.Error(), http.StatusInternalServerError)
		return
	}

	findings := h.ComplianceService.CheckCampaign(&record.Campaign)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"campaign_id": record.CampaignID,
		"passed":      len(findings) == 0,
		"findings":    findings,
	})
}
