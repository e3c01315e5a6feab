// internal/service/asset_service.go
package service

import (
    "time"

    "github.com/unclebandit/adleopard-backend/internal/queue"
    "github.com/unclebandit/adleopard-backend/internal/repository"
)

// AssetService queues asset-generation jobs for the external pipeline. The
// pipeline itself is an external collaborator; this service only loads the
// record and hands a job to the queue.
type AssetService struct {
    CampaignRepo repository.CampaignRepositoryInterface
    Queue        queue.Queue
}

type QueueAssetsResult struct {
    CampaignID string `json:"campaign_id"`
    Status     string `json:"status"`
}

func (s *AssetService) QueueAssetGeneration(id string) (*QueueAssetsResult, error) {
    record, err := s.CampaignRepo.Get(id)
    if err != nil {
        return nil, err
    }

    job := queue.AssetJob{
        CampaignID:   record.CampaignID,
        CampaignName: record.CampaignName,
        RequestedAt:  time.Now().UTC(),
    }
    if err := s.Queue.Publish("asset_jobs", job); err != nil {
        return nil, err
    }

    return &QueueAssetsResult{
        CampaignID: record.CampaignID,
        Status:     "queued",
    }, nil
}
