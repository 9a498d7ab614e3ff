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


package batch

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/poiesic/demorse/core"
	"github.com/poiesic/demorse/decode"
	"github.com/poiesic/demorse/storage"
)

// ProcessorType identifies the batch decoder in checkpoint records.
const ProcessorType = "batch-decode"

// defaultChunkSize is the number of lines decoded between checkpoints.
const defaultChunkSize = 64

// Pipeline orchestrates batch decoding of bitstream files.
// It decodes lines concurrently and archives the results per line.
type Pipeline struct {
	runRepository storage.RunRepository
	checkpoints   storage.CheckpointRepository
	decoder       *decode.Decoder
	wordlistName  string
	pool          *ants.Pool
	chunkSize     int
	progress      io.Writer
	logger        *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent decoding.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.pool != nil {
			p.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}

		p.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// WithCheckpoints enables resumable progress tracking.
// Without it, every batch starts from the first line.
func WithCheckpoints(checkpoints storage.CheckpointRepository) Option {
	return func(p *Pipeline) error {
		p.checkpoints = checkpoints
		return nil
	}
}

// WithProgress sets a writer for periodic progress reports.
// Default is no progress output.
func WithProgress(w io.Writer) Option {
	return func(p *Pipeline) error {
		p.progress = w
		return nil
	}
}

// WithChunkSize sets how many lines are decoded between checkpoints and
// progress reports. Default is 64.
func WithChunkSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}
		p.chunkSize = size
		return nil
	}
}

// NewPipeline creates a new batch decoding pipeline. Decoded lines are
// archived as runs against the named wordlist.
func NewPipeline(
	runRepository storage.RunRepository,
	decoder *decode.Decoder,
	wordlistName string,
	opts ...Option,
) (*Pipeline, error) {
	if runRepository == nil {
		return nil, ErrRunRepositoryRequired
	}
	if decoder == nil {
		return nil, ErrDecoderRequired
	}
	if wordlistName == "" {
		return nil, ErrWordlistNameRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		runRepository: runRepository,
		decoder:       decoder,
		wordlistName:  wordlistName,
		pool:          pool,
		chunkSize:     defaultChunkSize,
		logger:        slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// Report summarizes a completed batch.
type Report struct {
	LinesRead int           // Lines consumed from the input
	Skipped   int           // Lines skipped by checkpoint resume
	Decoded   int           // Lines decoded and archived
	Blank     int           // Blank lines ignored
	Elapsed   time.Duration // Wall time for the batch
}

// Process reads bitstreams line by line and decodes them. Blank lines are
// ignored but still advance the checkpoint position. Lines at or below the
// checkpointed position are skipped, so resuming an interrupted batch does
// not repeat completed work.
func (p *Pipeline) Process(ctx context.Context, r io.Reader) (*Report, error) {
	start := time.Now()
	report := &Report{}

	var resumeFrom uint64
	if p.checkpoints != nil {
		checkpoint, err := p.checkpoints.LoadCheckpoint(ctx, ProcessorType)
		if err != nil {
			return nil, err
		}
		if checkpoint != nil {
			resumeFrom = checkpoint.Position
			p.logger.Info("resuming batch from checkpoint", "position", resumeFrom)
		}
	}

	scanner := bufio.NewScanner(r)
	position := uint64(0)
	chunk := make([]string, 0, p.chunkSize)

	flush := func() error {
		if err := p.processChunk(ctx, chunk, report); err != nil {
			return err
		}
		chunk = chunk[:0]

		if p.checkpoints != nil {
			err := p.checkpoints.SaveCheckpoint(ctx, &core.Checkpoint{
				ProcessorType: ProcessorType,
				Position:      position,
			})
			if err != nil {
				return err
			}
		}

		if p.progress != nil {
			fmt.Fprintf(p.progress, "processed %d lines (%d decoded, %d skipped)\n",
				report.LinesRead, report.Decoded, report.Skipped)
		}
		return nil
	}

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		position++
		report.LinesRead++

		if position <= resumeFrom {
			report.Skipped++
			continue
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			report.Blank++
			continue
		}

		chunk = append(chunk, line)
		if len(chunk) >= p.chunkSize {
			if err := flush(); err != nil {
				return nil, err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if err := flush(); err != nil {
		return nil, err
	}

	report.Elapsed = time.Since(start)
	p.logger.Info("batch complete",
		"lines", report.LinesRead,
		"decoded", report.Decoded,
		"skipped", report.Skipped,
		"elapsed", report.Elapsed)

	return report, nil
}

// processChunk decodes a chunk of lines concurrently, then archives the
// results in a single repository call. Archiving from the coordinating
// goroutine keeps writes serial while the search itself runs parallel.
func (p *Pipeline) processChunk(ctx context.Context, lines []string, report *Report) error {
	if len(lines) == 0 {
		return nil
	}

	runs := make([]*core.DecodeRun, len(lines))
	var wg sync.WaitGroup

	for i, line := range lines {
		i, line := i, line
		wg.Add(1)
		err := p.pool.Submit(func() {
			defer wg.Done()
			runs[i] = &core.DecodeRun{
				Bitstream:  line,
				Wordlist:   p.wordlistName,
				Candidates: p.decoder.DecodeBitstream(line),
			}
		})
		if err != nil {
			wg.Done()
			return err
		}
	}

	wg.Wait()

	if _, err := p.runRepository.AddRuns(ctx, runs...); err != nil {
		return err
	}

	report.Decoded += len(runs)
	return nil
}

// ResetCheckpoint discards the saved batch position so the next batch starts
// from the first line.
func (p *Pipeline) ResetCheckpoint(ctx context.Context) error {
	if p.checkpoints == nil {
		return nil
	}
	return p.checkpoints.SaveCheckpoint(ctx, &core.Checkpoint{
		ProcessorType: ProcessorType,
		Position:      0,
	})
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
