//cmd/seeder/main.go
package main

import (
    "encoding/json"
    "fmt"
    "log"
    "os"

    "github.com/unclebandit/adleopard-backend/internal/repository"
    "github.com/unclebandit/adleopard-backend/internal/schema"
    "github.com/unclebandit/adleopard-backend/internal/storage"
)

func main() {
    dataDir := os.Getenv("DATA_DIR")
    if dataDir == "" {
        dataDir = "data"
    }
    if err := os.MkdirAll(dataDir, 0o755); err != nil {
        log.Fatal(err)
    }

    validator, err := schema.New()
    if err != nil {
        log.Fatal(err)
    }

    ns := &storage.FSNamespace{Dir: dataDir}
    repo := &repository.CampaignRepository{
        NS:       ns,
        Schema:   validator,
        Resolver: &repository.Resolver{NS: ns},
    }

    seedFiles := []string{
        "seed/summer_launch.json",
        "seed/winter_promo.json",
    }

    for _, file := range seedFiles {
        content, err := os.ReadFile(file)
        if err != nil {
            log.Fatalf("failed to read %s: %v", file, err)
        }

        var peek struct {
            CampaignID string `json:"campaign_id"`
        }
        if err := json.Unmarshal(content, &peek); err != nil {
            log.Fatalf("failed to parse %s: %v", file, err)
        }

        if _, err := repo.Put(peek.CampaignID, content); err != nil {
            log.Fatalf("failed to seed %s: %v", file, err)
        }
        fmt.Printf("Seeded: %s\n", file)
    }

    fmt.Println("Campaign store seeding completed successfully!")
}
