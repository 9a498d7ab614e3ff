package batch

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/demorse/decode"
	"github.com/poiesic/demorse/lang"
	"github.com/poiesic/demorse/storage/badger"
)

func newTestDecoder(t *testing.T) *decode.Decoder {
	t.Helper()
	dictionary := lang.NewDictionary([]string{"HI", "SOS", "E"})
	config := decode.DefaultConfig()
	config.BeamWidth = 200
	decoder, err := decode.NewDecoder(dictionary, config)
	require.NoError(t, err)
	return decoder
}

func TestNewPipeline(t *testing.T) {
	_, runRepo, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer backend.Close()

	decoder := newTestDecoder(t)

	t.Run("requires run repository", func(t *testing.T) {
		_, err := NewPipeline(nil, decoder, "common")
		assert.ErrorIs(t, err, ErrRunRepositoryRequired)
	})

	t.Run("requires decoder", func(t *testing.T) {
		_, err := NewPipeline(runRepo, nil, "common")
		assert.ErrorIs(t, err, ErrDecoderRequired)
	})

	t.Run("requires wordlist name", func(t *testing.T) {
		_, err := NewPipeline(runRepo, decoder, "")
		assert.ErrorIs(t, err, ErrWordlistNameRequired)
	})

	t.Run("valid", func(t *testing.T) {
		pipeline, err := NewPipeline(runRepo, decoder, "common", WithPoolSize(2))
		require.NoError(t, err)
		pipeline.Release()
	})
}

func TestProcessArchivesRuns(t *testing.T) {
	_, runRepo, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer backend.Close()

	pipeline, err := NewPipeline(runRepo, newTestDecoder(t), "common", WithPoolSize(2))
	require.NoError(t, err)
	defer pipeline.Release()

	input := "111111\n\n111000111\n"
	report, err := pipeline.Process(context.Background(), strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 3, report.LinesRead)
	assert.Equal(t, 2, report.Decoded)
	assert.Equal(t, 1, report.Blank)
	assert.Equal(t, 0, report.Skipped)

	run, err := runRepo.GetRunByBitstream(context.Background(), "common", "111111")
	require.NoError(t, err)
	require.NotEmpty(t, run.Candidates)
	assert.Equal(t, "HI", run.Candidates[0].Text)

	run, err = runRepo.GetRunByBitstream(context.Background(), "common", "111000111")
	require.NoError(t, err)
	require.NotEmpty(t, run.Candidates)
	assert.Equal(t, "SOS", run.Candidates[0].Text)
}

func TestProcessResumesFromCheckpoint(t *testing.T) {
	_, runRepo, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer backend.Close()

	checkpointRepo := badger.NewCheckpointRepository(backend)
	ctx := context.Background()

	pipeline, err := NewPipeline(runRepo, newTestDecoder(t), "common",
		WithPoolSize(2), WithCheckpoints(checkpointRepo))
	require.NoError(t, err)
	defer pipeline.Release()

	report, err := pipeline.Process(ctx, strings.NewReader("111111\n111000111\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, report.Decoded)

	checkpoint, err := checkpointRepo.LoadCheckpoint(ctx, ProcessorType)
	require.NoError(t, err)
	require.NotNil(t, checkpoint)
	assert.Equal(t, uint64(2), checkpoint.Position)

	// Re-running the grown input skips the already-decoded lines
	report, err = pipeline.Process(ctx, strings.NewReader("111111\n111000111\n1\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, report.LinesRead)
	assert.Equal(t, 2, report.Skipped)
	assert.Equal(t, 1, report.Decoded)

	run, err := runRepo.GetRunByBitstream(ctx, "common", "1")
	require.NoError(t, err)
	require.NotEmpty(t, run.Candidates)
	assert.Equal(t, "E", run.Candidates[0].Text)

	// Reset restarts from the first line
	require.NoError(t, pipeline.ResetCheckpoint(ctx))
	report, err = pipeline.Process(ctx, strings.NewReader("111111\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, report.Skipped)
	assert.Equal(t, 1, report.Decoded)
}

func TestProcessReportsProgress(t *testing.T) {
	_, runRepo, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer backend.Close()

	var progress strings.Builder
	pipeline, err := NewPipeline(runRepo, newTestDecoder(t), "common",
		WithPoolSize(1), WithChunkSize(1), WithProgress(&progress))
	require.NoError(t, err)
	defer pipeline.Release()

	_, err = pipeline.Process(context.Background(), strings.NewReader("1\n111\n"))
	require.NoError(t, err)

	assert.Contains(t, progress.String(), "processed 1 lines")
	assert.Contains(t, progress.String(), "processed 2 lines")
}

func TestProcessEmptyInput(t *testing.T) {
	_, runRepo, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer backend.Close()

	pipeline, err := NewPipeline(runRepo, newTestDecoder(t), "common", WithPoolSize(1))
	require.NoError(t, err)
	defer pipeline.Release()

	report, err := pipeline.Process(context.Background(), strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, report.LinesRead)
	assert.Equal(t, 0, report.Decoded)
}
