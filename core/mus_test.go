package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRunMUS_RoundTrip(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)
	run := DecodeRun{
		Id:        IDFromContent("run:english:111111"),
		Bitstream: "111111",
		Wordlist:  "english",
		Candidates: []Candidate{
			{Text: "HI", Score: 7.9},
			{Text: "EH I", Score: 4.1},
		},
		InsertedAt: now,
		UpdatedAt:  now,
	}

	buf := make([]byte, DecodeRunMUS.Size(run))
	n := DecodeRunMUS.Marshal(run, buf)
	require.Equal(t, len(buf), n)

	got, n, err := DecodeRunMUS.Unmarshal(buf)
	require.NoError(t, err)
	assert.Equal(t, len(buf), n)
	assert.Equal(t, run, got)
}

func TestWordlistMUS_RoundTrip(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)
	wordlist := Wordlist{
		Id:         WordlistID("english"),
		Name:       "english",
		Words:      []string{"HI", "SOS", "THE"},
		InsertedAt: now,
		UpdatedAt:  now,
	}

	buf := make([]byte, WordlistMUS.Size(wordlist))
	n := WordlistMUS.Marshal(wordlist, buf)
	require.Equal(t, len(buf), n)

	got, _, err := WordlistMUS.Unmarshal(buf)
	require.NoError(t, err)
	assert.Equal(t, wordlist, got)
}

func TestCheckpointMUS_RoundTrip(t *testing.T) {
	checkpoint := Checkpoint{
		ProcessorType: "batch-decode",
		Position:      42,
		UpdatedAt:     time.Now().UTC().Truncate(time.Microsecond),
	}

	buf := make([]byte, CheckpointMUS.Size(checkpoint))
	CheckpointMUS.Marshal(checkpoint, buf)

	got, _, err := CheckpointMUS.Unmarshal(buf)
	require.NoError(t, err)
	assert.Equal(t, checkpoint, got)
}

func TestDecodeRunMUS_Truncated(t *testing.T) {
	run := DecodeRun{Bitstream: "10", Wordlist: "w"}
	buf := make([]byte, DecodeRunMUS.Size(run))
	DecodeRunMUS.Marshal(run, buf)

	_, _, err := DecodeRunMUS.Unmarshal(buf[:2])
	assert.Error(t, err)
}
