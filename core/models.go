package core

import (
	"encoding/binary"
	"strconv"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated deterministically from entity content.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Candidate is a single ranked decoding of a bitstream: a space-joined
// sentence of dictionary words and its accumulated heuristic score.
type Candidate struct {
	Text  string
	Score float64
}

// Wordlist is a named dictionary stored persistently. Words are uppercase
// alphabetic; membership testing is the only contract the decoder requires
// from it.
type Wordlist struct {
	Id         ID
	Name       string
	Words      []string
	InsertedAt time.Time
	UpdatedAt  time.Time
}

// WordlistID derives the storage ID for a wordlist from its name.
func WordlistID(name string) ID {
	return IDFromContent("wordlist:" + name)
}

// DecodeRun is an archived decode: the input bitstream, the wordlist it was
// decoded against, and the ranked candidates it produced.
type DecodeRun struct {
	Id         ID
	Bitstream  string
	Wordlist   string // name of the wordlist used
	Candidates []Candidate
	InsertedAt time.Time
	UpdatedAt  time.Time
}

// Key returns the content string a run's ID is derived from. Two runs of the
// same bitstream against the same wordlist collide on purpose: re-decoding
// overwrites the archived result.
func (r *DecodeRun) Key() string {
	return "run:" + r.Wordlist + ":" + r.Bitstream
}

// Checkpoint records how far a batch processor has progressed, so an
// interrupted run can resume without repeating work.
type Checkpoint struct {
	ProcessorType string
	Position      uint64
	UpdatedAt     time.Time
}

func (c *Checkpoint) String() string {
	return c.ProcessorType + "@" + strconv.FormatUint(c.Position, 10)
}
