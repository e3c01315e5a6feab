package service

import (
	"log"

	"github.com/unclebandit/adleopard-backend/internal/model"
)

// CampaignGetter defines the methods the worker needs
type CampaignGetter interface {
	Get(id string) (*model.CampaignWithStatus, error)
}

// Worker processes asset-generation jobs
type Worker struct {
	CampaignRepo CampaignGetter
	JobChan      <-chan string
	GenerateFunc func(c *model.Campaign) bool
}

// Constructor
func NewWorker(repo CampaignGetter, jobChan <-chan string, generateFunc func(c *model.Campaign) bool) *Worker {
	return &Worker{
		CampaignRepo: repo,
		JobChan:      jobChan,
		GenerateFunc: generateFunc,
	}
}

// Start begins processing jobs
func (w *Worker) Start() {
	for campaignID := range w.JobChan {
		record, err := w.CampaignRepo.Get(campaignID)
		if err != nil {
			log.Println("Failed to get campaign:", err)
			continue
		}

		if w.GenerateFunc(&record.Campaign) {
			log.Println("✅ Assets generated for campaign:", campaignID)
		} else {
			log.Println("⚠️ Asset generation failed for campaign:", campaignID)
		}
	}
}
