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


// Package demorse decodes continuous Morse code bitstreams into ranked
// candidate sentences. The Database type ties the pieces together: wordlists
// and decode runs persisted in BadgerDB, the beam search decoder, batch
// processing, and optional AI-assisted re-ranking.
package demorse

import (
	"context"
	"io"
	"log/slog"

	"github.com/poiesic/demorse/ai"
	"github.com/poiesic/demorse/ai/openai"
	"github.com/poiesic/demorse/batch"
	"github.com/poiesic/demorse/core"
	"github.com/poiesic/demorse/decode"
	"github.com/poiesic/demorse/lang"
	"github.com/poiesic/demorse/storage"
	"github.com/poiesic/demorse/storage/badger"
)

// Database is the top-level handle for a demorse data directory.
type Database struct {
	backend        *badger.Backend
	wordlistRepo   storage.WordlistRepository
	runRepo        storage.RunRepository
	checkpointRepo storage.CheckpointRepository
	provider       ai.AIProvider
	blendWeight    float64
	logger         *slog.Logger
}

// DatabaseOption configures a Database.
type DatabaseOption func(*databaseOptions)

type databaseOptions struct {
	aiConfig *ai.Config
	provider ai.AIProvider
	inMemory bool
}

// WithAIConfig enables AI-assisted re-ranking of decode results using an
// OpenAI-compatible service. Without it, decodes are ranked by the heuristic
// score alone.
func WithAIConfig(config *ai.Config) DatabaseOption {
	return func(o *databaseOptions) {
		o.aiConfig = config
	}
}

// WithAIProvider enables re-ranking with an already constructed provider.
// Primarily useful for injecting mocks in tests.
func WithAIProvider(provider ai.AIProvider) DatabaseOption {
	return func(o *databaseOptions) {
		o.provider = provider
	}
}

// WithInMemory opens the database in memory, discarding all data on close.
func WithInMemory() DatabaseOption {
	return func(o *databaseOptions) {
		o.inMemory = true
	}
}

// NewDatabase opens (creating if necessary) a demorse database at filePath.
func NewDatabase(filePath string, opts ...DatabaseOption) (*Database, error) {
	options := &databaseOptions{}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	provider := options.provider
	blendWeight := ai.DefaultConfig().BlendWeight
	if provider == nil && options.aiConfig != nil {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			backend.Close()
			return nil, err
		}
		blendWeight = options.aiConfig.BlendWeight
	}

	return &Database{
		backend:        backend,
		wordlistRepo:   badger.NewWordlistRepository(backend),
		runRepo:        badger.NewRunRepository(backend),
		checkpointRepo: badger.NewCheckpointRepository(backend),
		provider:       provider,
		blendWeight:    blendWeight,
		logger:         slog.Default(),
	}, nil
}

// Close releases the AI provider and the storage backend.
func (db *Database) Close() error {
	if db.provider != nil {
		if err := db.provider.Close(); err != nil {
			db.logger.Error("error closing AI provider", "err", err)
		}
	}

	if err := db.backend.Close(); err != nil {
		db.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (db *Database) WordlistRepository() storage.WordlistRepository {
	return db.wordlistRepo
}

func (db *Database) RunRepository() storage.RunRepository {
	return db.runRepo
}

func (db *Database) CheckpointRepository() storage.CheckpointRepository {
	return db.checkpointRepo
}

// ImportWordlist reads a dictionary source (one word per line, lines that are
// not purely alphabetic skipped) and stores it under the given name,
// overwriting any existing wordlist with that name.
func (db *Database) ImportWordlist(ctx context.Context, name string, r io.Reader) (*core.Wordlist, error) {
	dictionary, err := lang.ReadDictionary(r)
	if err != nil {
		return nil, err
	}

	wordlist := &core.Wordlist{
		Name:  name,
		Words: dictionary.Words(),
	}
	stored, err := db.wordlistRepo.AddWordlist(ctx, wordlist)
	if err != nil {
		return nil, err
	}

	db.logger.Info("imported wordlist", "name", name, "words", len(stored.Words))
	return stored, nil
}

// NewDecoder builds a decoder backed by a stored wordlist.
func (db *Database) NewDecoder(ctx context.Context, wordlistName string, config decode.Config) (*decode.Decoder, error) {
	wordlist, err := db.wordlistRepo.GetWordlist(ctx, wordlistName)
	if err != nil {
		return nil, err
	}

	dictionary := lang.NewDictionary(wordlist.Words)
	return decode.NewDecoder(dictionary, config, decode.WithLogger(db.logger))
}

// Decode decodes a bitstream against a stored wordlist, archives the run, and
// returns it. When an AI provider is configured, candidates are re-ranked by
// model plausibility before archiving.
func (db *Database) Decode(ctx context.Context, wordlistName, bitstream string, config decode.Config) (*core.DecodeRun, error) {
	decoder, err := db.NewDecoder(ctx, wordlistName, config)
	if err != nil {
		return nil, err
	}

	candidates := decoder.DecodeBitstream(bitstream)

	if db.provider != nil && len(candidates) > 0 {
		reranked, err := ai.Rerank(ctx, db.provider.SentenceRanker(), db.blendWeight, candidates)
		if err != nil {
			// Heuristic results are still useful when the model is down
			db.logger.Warn("re-ranking failed, keeping heuristic order", "err", err)
		} else {
			candidates = reranked
		}
	}

	run := &core.DecodeRun{
		Bitstream:  bitstream,
		Wordlist:   wordlistName,
		Candidates: candidates,
	}
	stored, err := db.runRepo.AddRuns(ctx, run)
	if err != nil {
		return nil, err
	}

	return stored[0], nil
}

// NewBatchPipeline builds a batch pipeline that decodes bitstream files
// against a stored wordlist. Progress is checkpointed for resume.
func (db *Database) NewBatchPipeline(ctx context.Context, wordlistName string, config decode.Config, opts ...batch.Option) (*batch.Pipeline, error) {
	decoder, err := db.NewDecoder(ctx, wordlistName, config)
	if err != nil {
		return nil, err
	}

	opts = append([]batch.Option{batch.WithCheckpoints(db.checkpointRepo)}, opts...)
	return batch.NewPipeline(db.runRepo, decoder, wordlistName, opts...)
}
