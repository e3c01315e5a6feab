// cmd/server/main.go
package main

import (
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/unclebandit/adleopard-backend/internal/controller"
	"github.com/unclebandit/adleopard-backend/internal/handler"
	"github.com/unclebandit/adleopard-backend/internal/queue"
	"github.com/unclebandit/adleopard-backend/internal/repository"
	"github.com/unclebandit/adleopard-backend/internal/schema"
	"github.com/unclebandit/adleopard-backend/internal/service"
	"github.com/unclebandit/adleopard-backend/internal/storage"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}

	// Init storage namespace
	var ns storage.Namespace
	switch os.Getenv("STORE_BACKEND") {
	case "postgres":
		pg := &storage.PostgresNamespace{DB: storage.OpenDB()}
		if err := pg.EnsureSchema(); err != nil {
			log.Fatalf("failed to create slot table: %v", err)
		}
		ns = pg
	default:
		dataDir := os.Getenv("DATA_DIR")
		if dataDir == "" {
			dataDir = "data"
		}
		if err := os.MkdirAll(dataDir, 0o755); err != nil {
			log.Fatalf("failed to create data dir: %v", err)
		}
		ns = &storage.FSNamespace{Dir: dataDir}
	}

	validator, err := schema.New()
	if err != nil {
		log.Fatalf("failed to compile campaign schema: %v", err)
	}

	campaignRepo := &repository.CampaignRepository{
		NS:       ns,
		Schema:   validator,
		Resolver: &repository.Resolver{NS: ns},
	}

	var q queue.Queue
	if url := os.Getenv("AMQP_URL"); url != "" {
		q = &queue.AMQPPublisher{URL: url}
	} else {
		iq := queue.NewInMemoryQueue()
		queue.StartAssetJobSubscriber(iq, campaignRepo)
		q = iq
	}

	campaignService := &service.CampaignService{
		CampaignRepo: campaignRepo,
	}

	campaignController := &controller.CampaignController{
		CampaignService: campaignService,
	}

	campaignHandler := &handler.CampaignHandler{
		CampaignService:   campaignService,
		AssetService:      &service.AssetService{CampaignRepo: campaignRepo, Queue: q},
		ComplianceService: &service.ComplianceService{},
	}

	r := chi.NewRouter()

	// Campaign routes
	r.Get("/campaigns", campaignController.ListCampaigns)
	r.Post("/campaigns", campaignController.CreateCampaign)
	r.Get("/campaigns/{id}", campaignController.GetCampaign)
	r.Put("/campaigns/{id}", campaignController.UpdateCampaign)
	r.Delete("/campaigns/{id}", campaignController.DeleteCampaign)
	r.Post("/campaigns/{id}/generate-assets", campaignHandler.GenerateAssetsHandler)
	r.Get("/campaigns/{id}/compliance", campaignHandler.ComplianceHandler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("🚀 Server running on :" + port)
	log.Fatal(http.ListenAndServe(":"+port, r))
}
