package badger

import (
	"context"
	"errors"
	"testing"

	"github.com/poiesic/demorse/core"
	"github.com/poiesic/demorse/storage"
)

func TestWordlistBasics(t *testing.T) {
	wordlistRepo, _, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer backend.Close()

	ctx := context.Background()

	wordlist := &core.Wordlist{
		Name:  "common",
		Words: []string{"HI", "SOS", "HELLO"},
	}

	added, err := wordlistRepo.AddWordlist(ctx, wordlist)
	if err != nil {
		t.Fatalf("Failed to add wordlist: %v", err)
	}

	if added.Id == 0 {
		t.Fatal("Expected non-zero ID")
	}
	if added.InsertedAt.IsZero() {
		t.Fatal("Expected InsertedAt to be set")
	}

	retrieved, err := wordlistRepo.GetWordlist(ctx, "common")
	if err != nil {
		t.Fatalf("Failed to get wordlist: %v", err)
	}

	if retrieved.Id != added.Id {
		t.Fatalf("Expected ID %d, got %d", added.Id, retrieved.Id)
	}
	if len(retrieved.Words) != 3 {
		t.Fatalf("Expected 3 words, got %d", len(retrieved.Words))
	}
	if retrieved.Words[1] != "SOS" {
		t.Fatalf("Expected 'SOS', got '%s'", retrieved.Words[1])
	}
}

func TestWordlistOverwrite(t *testing.T) {
	wordlistRepo, _, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer backend.Close()

	ctx := context.Background()

	first, err := wordlistRepo.AddWordlist(ctx, &core.Wordlist{Name: "common", Words: []string{"HI"}})
	if err != nil {
		t.Fatalf("Failed to add wordlist: %v", err)
	}

	second, err := wordlistRepo.AddWordlist(ctx, &core.Wordlist{Name: "common", Words: []string{"HI", "SOS"}})
	if err != nil {
		t.Fatalf("Failed to overwrite wordlist: %v", err)
	}

	// Same name must map to the same ID
	if first.Id != second.Id {
		t.Fatalf("Expected stable ID, got %d and %d", first.Id, second.Id)
	}

	retrieved, err := wordlistRepo.GetWordlist(ctx, "common")
	if err != nil {
		t.Fatalf("Failed to get wordlist: %v", err)
	}
	if len(retrieved.Words) != 2 {
		t.Fatalf("Expected 2 words after overwrite, got %d", len(retrieved.Words))
	}
}

func TestWordlistNotFound(t *testing.T) {
	wordlistRepo, _, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer backend.Close()

	ctx := context.Background()

	_, err = wordlistRepo.GetWordlist(ctx, "missing")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}

	err = wordlistRepo.DeleteWordlist(ctx, "missing")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound on delete, got %v", err)
	}
}

func TestWordlistListAndDelete(t *testing.T) {
	wordlistRepo, _, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer backend.Close()

	ctx := context.Background()

	for _, name := range []string{"zulu", "alpha", "mike"} {
		_, err := wordlistRepo.AddWordlist(ctx, &core.Wordlist{Name: name, Words: []string{"SOS"}})
		if err != nil {
			t.Fatalf("Failed to add wordlist %s: %v", name, err)
		}
	}

	names, err := wordlistRepo.ListWordlists(ctx)
	if err != nil {
		t.Fatalf("Failed to list wordlists: %v", err)
	}
	if len(names) != 3 {
		t.Fatalf("Expected 3 wordlists, got %d", len(names))
	}
	// Sorted order
	if names[0] != "alpha" || names[1] != "mike" || names[2] != "zulu" {
		t.Fatalf("Expected sorted names, got %v", names)
	}

	if err := wordlistRepo.DeleteWordlist(ctx, "mike"); err != nil {
		t.Fatalf("Failed to delete wordlist: %v", err)
	}

	names, err = wordlistRepo.ListWordlists(ctx)
	if err != nil {
		t.Fatalf("Failed to list wordlists: %v", err)
	}
	if len(names) != 2 {
		t.Fatalf("Expected 2 wordlists after delete, got %d", len(names))
	}
}

func TestWordlistValidation(t *testing.T) {
	wordlistRepo, _, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer backend.Close()

	ctx := context.Background()

	_, err = wordlistRepo.AddWordlist(ctx, &core.Wordlist{Name: "", Words: []string{"HI"}})
	if !errors.Is(err, core.ErrEmptyWordlistName) {
		t.Fatalf("Expected ErrEmptyWordlistName, got %v", err)
	}
}
