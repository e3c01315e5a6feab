package repository_test

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	appErrors "github.com/unclebandit/adleopard-backend/internal/errors"
	"github.com/unclebandit/adleopard-backend/internal/repository"
	"github.com/unclebandit/adleopard-backend/internal/schema"
	"github.com/unclebandit/adleopard-backend/internal/storage"
)

func newRepo(t *testing.T) (*repository.CampaignRepository, *storage.MemoryNamespace) {
	t.Helper()
	validator, err := schema.New()
	if err != nil {
		t.Fatal(err)
	}
	ns := storage.NewMemoryNamespace()
	repo := &repository.CampaignRepository{
		NS:       ns,
		Schema:   validator,
		Resolver: &repository.Resolver{NS: ns},
	}
	return repo, ns
}

func campaignJSON(t *testing.T, id, name string) []byte {
	t.Helper()
	doc := map[string]interface{}{
		"campaign_id":         id,
		"campaign_name":       name,
		"client":              "Acme Corp",
		"campaign_start_date": "2026-01-01",
		"campaign_end_date":   "2026-02-01",
		"campaign_message": map[string]interface{}{
			"headlines":   []string{"Hello"},
			"brand_voice": "friendly",
			"theme":       "launch",
		},
		"target_audience": map[string]interface{}{
			"age_range": "18-35",
			"interests": []string{"tech"},
		},
		"products":       []map[string]interface{}{{"name": "Widget"}},
		"target_regions": []map[string]interface{}{{"region": "EMEA"}},
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}
	return raw
}

func TestPutGetRoundTrip(t *testing.T) {
	repo, _ := newRepo(t)

	// campaign_id in the body differs from the requested id; the store
	// forces it to match before writing.
	if _, err := repo.Put("cmp-x", campaignJSON(t, "something-else", "Round Trip")); err != nil {
		t.Fatal(err)
	}

	got, err := repo.Get("cmp-x")
	if err != nil {
		t.Fatal(err)
	}
	if got.CampaignID != "cmp-x" {
		t.Errorf("expected forced id cmp-x, got %s", got.CampaignID)
	}
	if got.CampaignName != "Round Trip" {
		t.Errorf("expected name preserved, got %s", got.CampaignName)
	}
	if got.Status == "" {
		t.Error("expected derived status attached")
	}
}

func TestGetMissing(t *testing.T) {
	repo, _ := newRepo(t)

	_, err := repo.Get("ghost")
	var notFound *appErrors.CampaignNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected CampaignNotFoundError, got %v", err)
	}
}

func TestRenameTolerance(t *testing.T) {
	repo, ns := newRepo(t)

	if _, err := repo.Put("alpha", campaignJSON(t, "alpha", "Renamed")); err != nil {
		t.Fatal(err)
	}

	// Edit the record's id in storage without renaming the slot; the slot
	// is still alpha.json but the record now claims id "beta".
	if err := ns.Write("alpha.json", campaignJSON(t, "beta", "Renamed")); err != nil {
		t.Fatal(err)
	}

	got, err := repo.Get("beta")
	if err != nil {
		t.Fatalf("fallback scan should find the drifted slot: %v", err)
	}
	if got.CampaignName != "Renamed" {
		t.Errorf("unexpected record: %+v", got)
	}
}

func TestFastPathPrecedence(t *testing.T) {
	repo, ns := newRepo(t)

	// Default-named slot for id "x" plus a second slot whose record also
	// claims id "x". The default name must win.
	if err := ns.Write("x.json", campaignJSON(t, "x", "Default Slot")); err != nil {
		t.Fatal(err)
	}
	if err := ns.Write("other.json", campaignJSON(t, "x", "Impostor Slot")); err != nil {
		t.Fatal(err)
	}

	got, err := repo.Get("x")
	if err != nil {
		t.Fatal(err)
	}
	if got.CampaignName != "Default Slot" {
		t.Errorf("fast path should win, got %s", got.CampaignName)
	}
}

func TestIdempotentOverwrite(t *testing.T) {
	repo, ns := newRepo(t)

	if _, err := repo.Put("x", campaignJSON(t, "x", "First")); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.Put("x", campaignJSON(t, "x", "Second")); err != nil {
		t.Fatal(err)
	}

	names, _ := ns.List()
	if len(names) != 1 {
		t.Fatalf("expected exactly one slot, got %v", names)
	}

	got, err := repo.Get("x")
	if err != nil {
		t.Fatal(err)
	}
	if got.CampaignName != "Second" {
		t.Errorf("expected Second, got %s", got.CampaignName)
	}
}

func TestPutTargetsDriftedSlot(t *testing.T) {
	repo, ns := newRepo(t)

	// A drifted slot: slot name alpha.json, record id beta.
	if err := ns.Write("alpha.json", campaignJSON(t, "beta", "Drifted")); err != nil {
		t.Fatal(err)
	}

	// Writing id beta must overwrite the existing slot, not create beta.json.
	if _, err := repo.Put("beta", campaignJSON(t, "beta", "Updated")); err != nil {
		t.Fatal(err)
	}

	names, _ := ns.List()
	if len(names) != 1 || names[0] != "alpha.json" {
		t.Fatalf("expected the drifted slot to be reused, got %v", names)
	}
}

func TestDeleteThenGet(t *testing.T) {
	repo, _ := newRepo(t)

	if _, err := repo.Put("x", campaignJSON(t, "x", "Doomed")); err != nil {
		t.Fatal(err)
	}
	if err := repo.Delete("x"); err != nil {
		t.Fatal(err)
	}

	_, err := repo.Get("x")
	var notFound *appErrors.CampaignNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}

	// Deleting again reports not-found explicitly.
	err = repo.Delete("x")
	if !errors.As(err, &notFound) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}

func TestCorruptTolerantListing(t *testing.T) {
	repo, ns := newRepo(t)

	if _, err := repo.Put("a", campaignJSON(t, "a", "A")); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.Put("b", campaignJSON(t, "b", "B")); err != nil {
		t.Fatal(err)
	}
	if err := ns.Write("corrupt.json", []byte("{broken")); err != nil {
		t.Fatal(err)
	}

	campaigns, err := repo.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(campaigns) != 2 {
		t.Errorf("expected 2 records, got %d", len(campaigns))
	}
	for _, c := range campaigns {
		if c.Status == "" {
			t.Errorf("expected derived status on %s", c.CampaignID)
		}
	}
}

func TestInvalidSlotReadsAsNotFound(t *testing.T) {
	repo, ns := newRepo(t)

	// Parses as JSON but fails schema validation (hand-edited slot).
	if err := ns.Write("x.json", []byte(`{"campaign_id":"x"}`)); err != nil {
		t.Fatal(err)
	}

	_, err := repo.Get("x")
	var notFound *appErrors.CampaignNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected invalid slot to read as not found, got %v", err)
	}
}

func TestDuplicateIDFirstMatchWins(t *testing.T) {
	repo, ns := newRepo(t)

	// Two slots independently claim id "dup", neither under the default
	// name. The scan returns whichever the namespace enumerates first; the
	// store must tolerate the duplicate without failing.
	if err := ns.Write("one.json", campaignJSON(t, "dup", "One")); err != nil {
		t.Fatal(err)
	}
	if err := ns.Write("two.json", campaignJSON(t, "dup", "Two")); err != nil {
		t.Fatal(err)
	}

	got, err := repo.Get("dup")
	if err != nil {
		t.Fatal(err)
	}
	if got.CampaignName != "One" && got.CampaignName != "Two" {
		t.Errorf("expected one of the duplicates, got %s", got.CampaignName)
	}

	// Both records still appear in the listing (soft invariant).
	campaigns, err := repo.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(campaigns) != 2 {
		t.Errorf("expected both duplicate slots listed, got %d", len(campaigns))
	}
}

func TestUnreachableNamespace(t *testing.T) {
	validator, err := schema.New()
	if err != nil {
		t.Fatal(err)
	}

	// A namespace rooted in a directory that does not exist: the namespace
	// itself is unreachable, which is a different failure class than an
	// individual missing slot.
	ns := &storage.FSNamespace{Dir: filepath.Join(t.TempDir(), "missing")}
	repo := &repository.CampaignRepository{
		NS:       ns,
		Schema:   validator,
		Resolver: &repository.Resolver{NS: ns},
	}

	var unavailable *appErrors.StorageUnavailableError
	var notFound *appErrors.CampaignNotFoundError

	_, err = repo.List()
	if !errors.As(err, &unavailable) {
		t.Fatalf("expected StorageUnavailableError from List, got %v", err)
	}

	_, err = repo.Get("x")
	if !errors.As(err, &unavailable) {
		t.Fatalf("expected StorageUnavailableError from Get, got %v", err)
	}
	if errors.As(err, &notFound) {
		t.Error("an unreachable namespace must not read as not-found")
	}

	err = repo.Delete("x")
	if !errors.As(err, &unavailable) {
		t.Fatalf("expected StorageUnavailableError from Delete, got %v", err)
	}
}

func TestValidationFailureRejectsWrite(t *testing.T) {
	repo, ns := newRepo(t)

	_, err := repo.Put("x", []byte(`{"campaign_id":"x"}`))
	var invalid *appErrors.ValidationError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	// Fail-fast: nothing was written.
	names, _ := ns.List()
	if len(names) != 0 {
		t.Errorf("expected no slots after failed put, got %v", names)
	}
}
