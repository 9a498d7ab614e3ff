package storage

import (
	"context"

	"github.com/poiesic/demorse/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// WordlistRepository provides operations for managing named dictionaries.
type WordlistRepository interface {
	Repository
	// AddWordlist stores a wordlist. The ID is derived from the name, so
	// adding a wordlist with an existing name overwrites it. Sets the
	// InsertedAt timestamp and returns the wordlist with ID and timestamps
	// populated.
	AddWordlist(ctx context.Context, wordlist *core.Wordlist) (*core.Wordlist, error)

	// GetWordlist retrieves a wordlist by name.
	// Returns ErrNotFound if it doesn't exist.
	GetWordlist(ctx context.Context, name string) (*core.Wordlist, error)

	// ListWordlists returns the names of all stored wordlists, sorted.
	ListWordlists(ctx context.Context) ([]string, error)

	// DeleteWordlist removes a wordlist by name.
	// Returns ErrNotFound if it doesn't exist.
	DeleteWordlist(ctx context.Context, name string) error
}

// RunRepository provides operations for managing archived decode runs.
type RunRepository interface {
	Repository
	// AddRuns stores one or more decode runs. For runs with ID=0, derives
	// the content ID from (wordlist, bitstream), so re-decoding the same
	// input overwrites the archived result. Sets timestamps and returns the
	// runs with IDs and timestamps populated.
	AddRuns(ctx context.Context, runs ...*core.DecodeRun) ([]*core.DecodeRun, error)

	// GetRun retrieves a single run by ID.
	// Returns ErrNotFound if it doesn't exist.
	GetRun(ctx context.Context, id core.ID) (*core.DecodeRun, error)

	// GetRunByBitstream retrieves the archived run for a bitstream decoded
	// against a wordlist. Returns ErrNotFound if it doesn't exist.
	GetRunByBitstream(ctx context.Context, wordlist, bitstream string) (*core.DecodeRun, error)

	// GetRecentRuns retrieves the N most recently archived runs, newest
	// first. Returns up to limit runs.
	GetRecentRuns(ctx context.Context, limit int) ([]*core.DecodeRun, error)

	// DeleteRuns removes runs by their IDs.
	// Returns ErrNotFound if any run doesn't exist.
	DeleteRuns(ctx context.Context, ids ...core.ID) error
}

// CheckpointRepository provides operations for batch progress checkpoints.
type CheckpointRepository interface {
	// SaveCheckpoint persists a checkpoint for a processor type.
	SaveCheckpoint(ctx context.Context, checkpoint *core.Checkpoint) error

	// LoadCheckpoint retrieves the checkpoint for a processor type.
	// Returns nil, nil if no checkpoint exists.
	LoadCheckpoint(ctx context.Context, processorType string) (*core.Checkpoint, error)
}
