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


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/poiesic/demorse"
	"github.com/poiesic/demorse/ai"
	"github.com/poiesic/demorse/batch"
	"github.com/poiesic/demorse/decode"
)

func main() {
	app := &cli.App{
		Name:  "demorse",
		Usage: "Decode continuous Morse code bitstreams into ranked sentences",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before:   setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "import",
				Usage:     "Import a wordlist from a file (one word per line)",
				ArgsUsage: "FILE",
				Action:    importCommand,
				Flags: []cli.Flag{
					dbFlag(),
					&cli.StringFlag{
						Name:     "name",
						Aliases:  []string{"n"},
						Usage:    "Name to store the wordlist under",
						Required: true,
					},
				},
			},
			{
				Name:   "wordlists",
				Usage:  "List stored wordlists",
				Action: wordlistsCommand,
				Flags:  []cli.Flag{dbFlag()},
			},
			{
				Name:      "decode",
				Usage:     "Decode a bitstream and print ranked candidates",
				ArgsUsage: "BITSTREAM",
				Action:    decodeCommand,
				Flags: append([]cli.Flag{
					dbFlag(),
					wordlistFlag(),
					&cli.BoolFlag{
						Name:  "rerank",
						Usage: "Re-rank candidates with an AI plausibility model",
					},
					&cli.StringFlag{
						Name:  "ranker-host",
						Usage: "Ranking service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:  "ranker-model",
						Usage: "Ranking model name",
						Value: "qwen2.5:3b",
					},
					&cli.Float64Flag{
						Name:  "blend-weight",
						Usage: "Score added per plausibility point",
						Value: 0.5,
					},
				}, decodeFlags()...),
			},
			{
				Name:      "batch",
				Usage:     "Decode a file of bitstreams, one per line",
				ArgsUsage: "FILE",
				Action:    batchCommand,
				Flags: append([]cli.Flag{
					dbFlag(),
					wordlistFlag(),
					&cli.IntFlag{
						Name:  "pool-size",
						Usage: "Number of concurrent decode workers",
					},
					&cli.IntFlag{
						Name:  "chunk-size",
						Usage: "Lines decoded between checkpoints",
						Value: 64,
					},
					&cli.BoolFlag{
						Name:  "restart",
						Usage: "Discard the saved checkpoint and start from the first line",
					},
				}, decodeFlags()...),
			},
			{
				Name:   "runs",
				Usage:  "Show recently archived decode runs",
				Action: runsCommand,
				Flags: []cli.Flag{
					dbFlag(),
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of runs to show",
						Value: 10,
					},
					&cli.IntFlag{
						Name:  "candidates",
						Usage: "Candidates to show per run",
						Value: 3,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func dbFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "db",
		Aliases:  []string{"d"},
		Usage:    "Path to BadgerDB database directory",
		Required: true,
	}
}

func wordlistFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "wordlist",
		Aliases:  []string{"w"},
		Usage:    "Name of the stored wordlist to decode against",
		Required: true,
	}
}

func decodeFlags() []cli.Flag {
	defaults := decode.DefaultConfig()
	return []cli.Flag{
		&cli.IntFlag{
			Name:  "beam-width",
			Usage: "Search states kept per generation",
			Value: defaults.BeamWidth,
		},
		&cli.IntFlag{
			Name:  "max-word-len",
			Usage: "Maximum letters per candidate word",
			Value: defaults.MaxWordLen,
		},
		&cli.IntFlag{
			Name:  "max-results",
			Usage: "Maximum candidates returned",
			Value: defaults.MaxResults,
		},
		&cli.BoolFlag{
			Name:  "no-reverse",
			Usage: "Skip the inverted polarity hypothesis",
		},
	}
}

func decodeConfig(c *cli.Context) decode.Config {
	config := decode.DefaultConfig()
	config.BeamWidth = c.Int("beam-width")
	config.MaxWordLen = c.Int("max-word-len")
	config.MaxResults = c.Int("max-results")
	config.ReversePolarity = !c.Bool("no-reverse")
	return config
}

func importCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one wordlist file argument")
	}

	f, err := os.Open(c.Args().First())
	if err != nil {
		return fmt.Errorf("failed to open wordlist file: %w", err)
	}
	defer f.Close()

	db, err := demorse.NewDatabase(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	wordlist, err := db.ImportWordlist(context.Background(), c.String("name"), f)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	fmt.Printf("imported %q: %d words\n", wordlist.Name, len(wordlist.Words))
	return nil
}

func wordlistsCommand(c *cli.Context) error {
	db, err := demorse.NewDatabase(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	ctx := context.Background()
	names, err := db.WordlistRepository().ListWordlists(ctx)
	if err != nil {
		return err
	}

	for _, name := range names {
		wordlist, err := db.WordlistRepository().GetWordlist(ctx, name)
		if err != nil {
			return err
		}
		fmt.Printf("%s\t%d words\tupdated %s\n",
			name, len(wordlist.Words), wordlist.UpdatedAt.Format("2006-01-02 15:04:05"))
	}
	return nil
}

func decodeCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one bitstream argument")
	}
	bitstream := c.Args().First()

	var opts []demorse.DatabaseOption
	if c.Bool("rerank") {
		opts = append(opts, demorse.WithAIConfig(ai.NewConfig(
			ai.WithRankerHost(c.String("ranker-host")),
			ai.WithRankerModel(c.String("ranker-model")),
			ai.WithBlendWeight(c.Float64("blend-weight")),
		)))
	}

	db, err := demorse.NewDatabase(c.String("db"), opts...)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	run, err := db.Decode(context.Background(), c.String("wordlist"), bitstream, decodeConfig(c))
	if err != nil {
		return fmt.Errorf("decode failed: %w", err)
	}

	if len(run.Candidates) == 0 {
		fmt.Println("no candidates")
		return nil
	}
	for i, candidate := range run.Candidates {
		fmt.Printf("%2d. %8.2f  %s\n", i+1, candidate.Score, candidate.Text)
	}
	return nil
}

func batchCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one bitstream file argument")
	}

	f, err := os.Open(c.Args().First())
	if err != nil {
		return fmt.Errorf("failed to open bitstream file: %w", err)
	}
	defer f.Close()

	db, err := demorse.NewDatabase(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	ctx := context.Background()

	opts := []batch.Option{
		batch.WithChunkSize(c.Int("chunk-size")),
		batch.WithProgress(os.Stderr),
	}
	if c.Int("pool-size") > 0 {
		opts = append(opts, batch.WithPoolSize(c.Int("pool-size")))
	}

	pipeline, err := db.NewBatchPipeline(ctx, c.String("wordlist"), decodeConfig(c), opts...)
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}
	defer pipeline.Release()

	if c.Bool("restart") {
		if err := pipeline.ResetCheckpoint(ctx); err != nil {
			return fmt.Errorf("failed to reset checkpoint: %w", err)
		}
	}

	report, err := pipeline.Process(ctx, f)
	if err != nil {
		return fmt.Errorf("batch failed: %w", err)
	}

	fmt.Printf("decoded %d lines (%d skipped, %d blank) in %s\n",
		report.Decoded, report.Skipped, report.Blank, report.Elapsed.Round(1e6))
	return nil
}

func runsCommand(c *cli.Context) error {
	db, err := demorse.NewDatabase(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	runs, err := db.RunRepository().GetRecentRuns(context.Background(), c.Int("limit"))
	if err != nil {
		return err
	}

	show := c.Int("candidates")
	for _, run := range runs {
		fmt.Printf("%s  wordlist=%s  bits=%d\n",
			run.UpdatedAt.Format("2006-01-02 15:04:05"), run.Wordlist, len(run.Bitstream))
		for i, candidate := range run.Candidates {
			if i >= show {
				break
			}
			fmt.Printf("    %8.2f  %s\n", candidate.Score, candidate.Text)
		}
	}
	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
