// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package badger

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/poiesic/demorse/core"
	"github.com/poiesic/demorse/storage"
)

// RunRepository implements storage.RunRepository using BadgerDB.
// Runs are keyed by content ID and indexed by update time for recency scans.
type RunRepository struct {
	*Backend
}

var _ storage.RunRepository = (*RunRepository)(nil)

// NewRunRepository creates a new BadgerDB-backed decode run repository.
func NewRunRepository(backend *Backend) *RunRepository {
	return &RunRepository{Backend: backend}
}

// AddRuns stores one or more decode runs. Runs with ID=0 get a content ID
// derived from (wordlist, bitstream), so re-decoding the same input
// overwrites the archived result and refreshes its recency index entry.
func (r *RunRepository) AddRuns(ctx context.Context, runs ...*core.DecodeRun) ([]*core.DecodeRun, error) {
	for _, run := range runs {
		if err := core.ValidateDecodeRun(run); err != nil {
			return nil, err
		}
	}

	// Truncated to the serialized resolution so stamped and reloaded
	// values compare equal.
	now := time.Now().UTC().Truncate(time.Microsecond)

	err := r.WithTx(func(tx *badger.Txn) error {
		for _, run := range runs {
			if run.Id == 0 {
				run.Id = core.IDFromContent(run.Key())
			}

			// An overwrite must drop the old recency index entry,
			// otherwise the run shows up twice in recency scans.
			existing, err := readRun(tx, run.Id)
			if err != nil {
				return err
			}
			if existing != nil {
				run.InsertedAt = existing.InsertedAt
				if err := tx.Delete(makeRunDateKey(existing.UpdatedAt, existing.Id)); err != nil {
					return err
				}
			} else if run.InsertedAt.IsZero() {
				run.InsertedAt = now
			}
			run.UpdatedAt = now

			if err := tx.Set(makeRunKey(run.Id), storage.MarshalDecodeRun(run)); err != nil {
				return err
			}
			if err := tx.Set(makeRunDateKey(run.UpdatedAt, run.Id), storage.MarshalID(run.Id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return nil, fmt.Errorf("failed to store decode runs: %w", err)
	}

	return runs, nil
}

// GetRun retrieves a single run by ID.
func (r *RunRepository) GetRun(ctx context.Context, id core.ID) (*core.DecodeRun, error) {
	var run *core.DecodeRun

	err := r.WithTx(func(tx *badger.Txn) error {
		var err error
		run, err = readRun(tx, id)
		return err
	}, false)
	if err != nil {
		return nil, err
	}
	if run == nil {
		return nil, storage.ErrNotFound
	}

	return run, nil
}

// GetRunByBitstream retrieves the archived run for a bitstream decoded
// against a wordlist.
func (r *RunRepository) GetRunByBitstream(ctx context.Context, wordlist, bitstream string) (*core.DecodeRun, error) {
	probe := core.DecodeRun{Wordlist: wordlist, Bitstream: bitstream}
	return r.GetRun(ctx, core.IDFromContent(probe.Key()))
}

// GetRecentRuns retrieves the N most recently archived runs, newest first.
func (r *RunRepository) GetRecentRuns(ctx context.Context, limit int) ([]*core.DecodeRun, error) {
	if limit <= 0 {
		return []*core.DecodeRun{}, nil
	}

	runs := []*core.DecodeRun{}
	prefix := []byte(runDatePrefix + ":")

	err := r.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true
		it := tx.NewIterator(opts)
		defer it.Close()

		// Seek past the newest possible index key and walk backwards.
		seekKey := makePartialRunDateKey(time.Date(9999, 1, 1, 0, 0, 0, 0, time.UTC))

		for it.Seek(seekKey); it.Valid() && len(runs) < limit; it.Next() {
			item := it.Item()
			if !bytes.HasPrefix(item.Key(), prefix) {
				break
			}

			var id core.ID
			err := item.Value(func(val []byte) error {
				var err error
				id, err = storage.UnmarshalID(val)
				return err
			})
			if err != nil {
				return fmt.Errorf("%w: %v", storage.ErrSerializationFailed, err)
			}

			run, err := readRun(tx, id)
			if err != nil {
				return err
			}
			if run == nil {
				// Dangling index entry, skip it.
				continue
			}
			runs = append(runs, run)
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	return runs, nil
}

// DeleteRuns removes runs and their recency index entries by ID.
func (r *RunRepository) DeleteRuns(ctx context.Context, ids ...core.ID) error {
	return r.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			run, err := readRun(tx, id)
			if err != nil {
				return err
			}
			if run == nil {
				return storage.ErrNotFound
			}
			if err := tx.Delete(makeRunKey(id)); err != nil {
				return err
			}
			if err := tx.Delete(makeRunDateKey(run.UpdatedAt, run.Id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// readRun reads a decode run within a transaction.
// Returns nil, nil if not found.
func readRun(tx *badger.Txn, id core.ID) (*core.DecodeRun, error) {
	item, err := tx.Get(makeRunKey(id))
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var run *core.DecodeRun
	err = item.Value(func(val []byte) error {
		var err error
		run, err = storage.UnmarshalDecodeRun(val)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", storage.ErrSerializationFailed, err)
	}

	return run, nil
}
