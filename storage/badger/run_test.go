package badger

import (
	"context"
	"errors"
	"testing"

	"github.com/poiesic/demorse/core"
	"github.com/poiesic/demorse/storage"
)

func TestRunBasics(t *testing.T) {
	_, runRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer backend.Close()

	ctx := context.Background()

	run := &core.DecodeRun{
		Bitstream: "111000111",
		Wordlist:  "common",
		Candidates: []core.Candidate{
			{Text: "SOS", Score: 9.7},
			{Text: "EE EE", Score: 8.1},
		},
	}

	added, err := runRepo.AddRuns(ctx, run)
	if err != nil {
		t.Fatalf("Failed to add run: %v", err)
	}

	if len(added) != 1 {
		t.Fatalf("Expected 1 run, got %d", len(added))
	}
	if added[0].Id == 0 {
		t.Fatal("Expected non-zero ID")
	}

	retrieved, err := runRepo.GetRun(ctx, added[0].Id)
	if err != nil {
		t.Fatalf("Failed to get run: %v", err)
	}
	if retrieved.Bitstream != "111000111" {
		t.Fatalf("Expected bitstream '111000111', got '%s'", retrieved.Bitstream)
	}
	if len(retrieved.Candidates) != 2 || retrieved.Candidates[0].Text != "SOS" {
		t.Fatalf("Unexpected candidates: %v", retrieved.Candidates)
	}
}

func TestRunContentID(t *testing.T) {
	_, runRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer backend.Close()

	ctx := context.Background()

	first, err := runRepo.AddRuns(ctx, &core.DecodeRun{
		Bitstream:  "111111",
		Wordlist:   "common",
		Candidates: []core.Candidate{{Text: "HI", Score: 7.9}},
	})
	if err != nil {
		t.Fatalf("Failed to add run: %v", err)
	}

	// Re-decoding the same input against the same wordlist overwrites
	second, err := runRepo.AddRuns(ctx, &core.DecodeRun{
		Bitstream:  "111111",
		Wordlist:   "common",
		Candidates: []core.Candidate{{Text: "HI", Score: 7.9}, {Text: "EEE", Score: 2.4}},
	})
	if err != nil {
		t.Fatalf("Failed to overwrite run: %v", err)
	}

	if first[0].Id != second[0].Id {
		t.Fatalf("Expected stable content ID, got %d and %d", first[0].Id, second[0].Id)
	}
	if !second[0].InsertedAt.Equal(first[0].InsertedAt) {
		t.Fatal("Expected InsertedAt to be preserved on overwrite")
	}

	retrieved, err := runRepo.GetRunByBitstream(ctx, "common", "111111")
	if err != nil {
		t.Fatalf("Failed to get run by bitstream: %v", err)
	}
	if len(retrieved.Candidates) != 2 {
		t.Fatalf("Expected 2 candidates after overwrite, got %d", len(retrieved.Candidates))
	}

	// Same bitstream against a different wordlist is a distinct run
	other, err := runRepo.AddRuns(ctx, &core.DecodeRun{
		Bitstream:  "111111",
		Wordlist:   "nautical",
		Candidates: []core.Candidate{},
	})
	if err != nil {
		t.Fatalf("Failed to add run: %v", err)
	}
	if other[0].Id == second[0].Id {
		t.Fatal("Expected distinct IDs for different wordlists")
	}
}

func TestRunRecency(t *testing.T) {
	_, runRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer backend.Close()

	ctx := context.Background()

	bitstreams := []string{"1", "10", "101", "1010"}
	for _, bs := range bitstreams {
		_, err := runRepo.AddRuns(ctx, &core.DecodeRun{
			Bitstream:  bs,
			Wordlist:   "common",
			Candidates: []core.Candidate{},
		})
		if err != nil {
			t.Fatalf("Failed to add run: %v", err)
		}
	}

	recent, err := runRepo.GetRecentRuns(ctx, 3)
	if err != nil {
		t.Fatalf("Failed to get recent runs: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(recent))
	}
	// Newest first
	for i := 1; i < len(recent); i++ {
		if recent[i].UpdatedAt.After(recent[i-1].UpdatedAt) {
			t.Fatalf("Expected newest-first ordering at index %d", i)
		}
	}

	// Overwriting an old run must not leave a stale index entry
	_, err = runRepo.AddRuns(ctx, &core.DecodeRun{
		Bitstream:  "1",
		Wordlist:   "common",
		Candidates: []core.Candidate{{Text: "E", Score: 1.0}},
	})
	if err != nil {
		t.Fatalf("Failed to overwrite run: %v", err)
	}

	all, err := runRepo.GetRecentRuns(ctx, 10)
	if err != nil {
		t.Fatalf("Failed to get recent runs: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("Expected 4 runs after overwrite, got %d", len(all))
	}
	if all[0].Bitstream != "1" {
		t.Fatalf("Expected overwritten run to be newest, got '%s'", all[0].Bitstream)
	}
}

func TestRunDelete(t *testing.T) {
	_, runRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer backend.Close()

	ctx := context.Background()

	added, err := runRepo.AddRuns(ctx, &core.DecodeRun{
		Bitstream:  "111111",
		Wordlist:   "common",
		Candidates: []core.Candidate{},
	})
	if err != nil {
		t.Fatalf("Failed to add run: %v", err)
	}

	if err := runRepo.DeleteRuns(ctx, added[0].Id); err != nil {
		t.Fatalf("Failed to delete run: %v", err)
	}

	_, err = runRepo.GetRun(ctx, added[0].Id)
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound after delete, got %v", err)
	}

	recent, err := runRepo.GetRecentRuns(ctx, 10)
	if err != nil {
		t.Fatalf("Failed to get recent runs: %v", err)
	}
	if len(recent) != 0 {
		t.Fatalf("Expected no runs after delete, got %d", len(recent))
	}

	if err := runRepo.DeleteRuns(ctx, added[0].Id); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound on double delete, got %v", err)
	}
}

func TestRunValidation(t *testing.T) {
	_, runRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer backend.Close()

	ctx := context.Background()

	_, err = runRepo.AddRuns(ctx, &core.DecodeRun{Bitstream: "", Wordlist: "common"})
	if !errors.Is(err, core.ErrEmptyBitstream) {
		t.Fatalf("Expected ErrEmptyBitstream, got %v", err)
	}
}
