package queue

import (
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/unclebandit/adleopard-backend/internal/repository"
)

// Queue interface
type Queue interface {
	Publish(topic string, payload any) error
	Subscribe(topic string, handler func(payload any) error) error
}

// InMemoryQueue is an in-memory queue with retry, used when no broker is
// configured and as the test double for the AMQP publisher.
type InMemoryQueue struct {
	mu       sync.Mutex
	handlers map[string][]func(payload any) error
}

// NewInMemoryQueue creates a new queue
func NewInMemoryQueue() *InMemoryQueue {
	return &InMemoryQueue{
		handlers: make(map[string][]func(payload any) error),
	}
}

// JobPayload wraps a message payload with retry info
type JobPayload struct {
	Payload    any
	RetryCount int
	MaxRetries int
}

// Publish sends a message to all subscribers
func (q *InMemoryQueue) Publish(topic string, payload any) error {
	q.mu.Lock()
	handlers := q.handlers[topic]
	q.mu.Unlock()

	if len(handlers) == 0 {
		return fmt.Errorf("no subscribers for topic %s", topic)
	}

	job := JobPayload{
		Payload:    payload,
		RetryCount: 0,
		MaxRetries: 3,
	}

	for _, handler := range handlers {
		go q.processJob(handler, job)
	}

	return nil
}

// processJob handles retries and errors
func (q *InMemoryQueue) processJob(handler func(payload any) error, job JobPayload) {
	for job.RetryCount <= job.MaxRetries {
		err := handler(job.Payload)
		if err == nil {
			return // ACK
		}

		job.RetryCount++
		log.Printf("Job failed (attempt %d/%d): %+v, error: %v\n", job.RetryCount, job.MaxRetries, job.Payload, err)

		if job.RetryCount > job.MaxRetries {
			log.Printf("Job permanently failed after %d attempts: %+v\n", job.MaxRetries, job.Payload)
			return // No requeue
		}

		// Exponential backoff before retry
		time.Sleep(time.Duration(job.RetryCount*500) * time.Millisecond)
	}
}

// Subscribe adds a handler for a topic
func (q *InMemoryQueue) Subscribe(topic string, handler func(payload any) error) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.handlers[topic] = append(q.handlers[topic], handler)
	return nil
}

// StartAssetJobSubscriber wires the local no-broker mode: asset jobs
// published in-process are handled by a mock pipeline invocation.
func StartAssetJobSubscriber(q Queue, campaignRepo repository.CampaignRepositoryInterface) {
	go func() {
		err := q.Subscribe("asset_jobs", func(payload any) error {
			job, ok := payload.(AssetJob)
			if !ok {
				log.Println("⚠️ Invalid payload type, expected AssetJob")
				return nil
			}

			log.Println("📩 Processing queued asset job for campaign:", job.CampaignID)

			record, err := campaignRepo.Get(job.CampaignID)
			if err != nil {
				log.Println("⚠️ Failed to fetch campaign:", err)
				return nil // record gone, no retry
			}

			if err := MockPipeline(record.CampaignName); err != nil {
				log.Println("⚠️ Asset generation failed:", err)
				return err // triggers retry in queue
			}

			log.Println("✅ Assets generated for campaign:", job.CampaignID)
			return nil
		})

		if err != nil {
			log.Println("⚠️ Failed to start subscriber for asset_jobs:", err)
		}
	}()
}

// AssetJob is the payload queued for the asset-generation pipeline.
type AssetJob struct {
	CampaignID   string    `json:"campaign_id"`
	CampaignName string    `json:"campaign_name"`
	RequestedAt  time.Time `json:"requested_at"`
}

//////////////////////////
// Example Mock Pipeline //
//////////////////////////

// MockPipeline simulates the external asset pipeline with 90% success
func MockPipeline(campaignName string) error {
	r := rand.Float64()
	if r < 0.9 {
		return nil // success
	}
	return fmt.Errorf("mock asset generation failed for %s", campaignName)
}
