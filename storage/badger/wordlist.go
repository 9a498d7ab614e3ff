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
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/poiesic/demorse/core"
	"github.com/poiesic/demorse/storage"
)

// WordlistRepository implements storage.WordlistRepository using BadgerDB.
type WordlistRepository struct {
	*Backend
}

var _ storage.WordlistRepository = (*WordlistRepository)(nil)

// NewWordlistRepository creates a new BadgerDB-backed wordlist repository.
func NewWordlistRepository(backend *Backend) *WordlistRepository {
	return &WordlistRepository{Backend: backend}
}

// AddWordlist stores a wordlist, overwriting any existing wordlist with the
// same name. The ID is derived from the name.
func (r *WordlistRepository) AddWordlist(ctx context.Context, wordlist *core.Wordlist) (*core.Wordlist, error) {
	if err := core.ValidateWordlist(wordlist); err != nil {
		return nil, err
	}

	// Truncated to the serialized resolution so stamped and reloaded
	// values compare equal.
	now := time.Now().UTC().Truncate(time.Microsecond)
	wordlist.Id = core.WordlistID(wordlist.Name)
	if wordlist.InsertedAt.IsZero() {
		wordlist.InsertedAt = now
	}
	wordlist.UpdatedAt = now

	data := storage.MarshalWordlist(wordlist)

	err := r.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set(makeWordlistKey(wordlist.Name), data); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return nil, fmt.Errorf("failed to store wordlist: %w", err)
	}

	return wordlist, nil
}

// GetWordlist retrieves a wordlist by name.
func (r *WordlistRepository) GetWordlist(ctx context.Context, name string) (*core.Wordlist, error) {
	var wordlist *core.Wordlist

	err := r.WithTx(func(tx *badger.Txn) error {
		var err error
		wordlist, err = readWordlist(tx, name)
		return err
	}, false)
	if err != nil {
		return nil, err
	}
	if wordlist == nil {
		return nil, storage.ErrNotFound
	}

	return wordlist, nil
}

// ListWordlists returns the names of all stored wordlists, sorted.
func (r *WordlistRepository) ListWordlists(ctx context.Context) ([]string, error) {
	names := []string{}
	prefix := []byte(wordlistPrefix + ":")

	err := r.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = prefix
		it := tx.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := string(it.Item().Key())
			names = append(names, strings.TrimPrefix(key, string(prefix)))
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	sort.Strings(names)
	return names, nil
}

// DeleteWordlist removes a wordlist by name.
func (r *WordlistRepository) DeleteWordlist(ctx context.Context, name string) error {
	return r.WithTx(func(tx *badger.Txn) error {
		key := makeWordlistKey(name)
		if _, err := tx.Get(key); err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}
		if err := tx.Delete(key); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// readWordlist reads a wordlist within a transaction.
// Returns nil, nil if not found.
func readWordlist(tx *badger.Txn, name string) (*core.Wordlist, error) {
	item, err := tx.Get(makeWordlistKey(name))
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var wordlist *core.Wordlist
	err = item.Value(func(val []byte) error {
		var err error
		wordlist, err = storage.UnmarshalWordlist(val)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", storage.ErrSerializationFailed, err)
	}

	return wordlist, nil
}
