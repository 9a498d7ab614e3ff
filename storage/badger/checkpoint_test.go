package badger

import (
	"context"
	"testing"

	"github.com/poiesic/demorse/core"
)

func TestCheckpointRoundtrip(t *testing.T) {
	backend, err := OpenBackend("", true)
	if err != nil {
		t.Fatalf("Failed to open backend: %v", err)
	}
	defer backend.Close()

	checkpointRepo := NewCheckpointRepository(backend)
	ctx := context.Background()

	// No checkpoint yet
	loaded, err := checkpointRepo.LoadCheckpoint(ctx, "batch-decode")
	if err != nil {
		t.Fatalf("Failed to load checkpoint: %v", err)
	}
	if loaded != nil {
		t.Fatalf("Expected nil checkpoint, got %v", loaded)
	}

	err = checkpointRepo.SaveCheckpoint(ctx, &core.Checkpoint{
		ProcessorType: "batch-decode",
		Position:      42,
	})
	if err != nil {
		t.Fatalf("Failed to save checkpoint: %v", err)
	}

	loaded, err = checkpointRepo.LoadCheckpoint(ctx, "batch-decode")
	if err != nil {
		t.Fatalf("Failed to load checkpoint: %v", err)
	}
	if loaded == nil {
		t.Fatal("Expected checkpoint, got nil")
	}
	if loaded.Position != 42 {
		t.Fatalf("Expected position 42, got %d", loaded.Position)
	}
	if loaded.UpdatedAt.IsZero() {
		t.Fatal("Expected UpdatedAt to be set")
	}

	// Saving again advances the position
	err = checkpointRepo.SaveCheckpoint(ctx, &core.Checkpoint{
		ProcessorType: "batch-decode",
		Position:      100,
	})
	if err != nil {
		t.Fatalf("Failed to save checkpoint: %v", err)
	}

	loaded, err = checkpointRepo.LoadCheckpoint(ctx, "batch-decode")
	if err != nil {
		t.Fatalf("Failed to load checkpoint: %v", err)
	}
	if loaded.Position != 100 {
		t.Fatalf("Expected position 100, got %d", loaded.Position)
	}

	// Checkpoints are independent per processor type
	other, err := checkpointRepo.LoadCheckpoint(ctx, "other-processor")
	if err != nil {
		t.Fatalf("Failed to load checkpoint: %v", err)
	}
	if other != nil {
		t.Fatalf("Expected nil checkpoint for other processor, got %v", other)
	}
}
