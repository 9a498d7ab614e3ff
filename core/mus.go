package core

import (
	"errors"
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

// Hand-written MUS serializers for the core entities. The structs here are
// small and few, so the serializers are maintained by hand against the
// mus-go primitives instead of being generated.

var errNegativeLength = errors.New("negative length")

// IDMUS serializes ID values.
var IDMUS = idMUS{}

type idMUS struct{}

func (s idMUS) Marshal(v ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(v), bs)
}

func (s idMUS) Unmarshal(bs []byte) (v ID, n int, err error) {
	num, n, err := varint.Uint64.Unmarshal(bs)
	return ID(num), n, err
}

func (s idMUS) Size(v ID) (size int) {
	return varint.Uint64.Size(uint64(v))
}

// timeMUS serializes timestamps as Unix microseconds.
type timeMUS struct{}

func (s timeMUS) Marshal(v time.Time, bs []byte) (n int) {
	return varint.Int64.Marshal(v.UnixMicro(), bs)
}

func (s timeMUS) Unmarshal(bs []byte) (v time.Time, n int, err error) {
	micro, n, err := varint.Int64.Unmarshal(bs)
	if err != nil {
		return time.Time{}, n, err
	}
	return time.UnixMicro(micro).UTC(), n, nil
}

func (s timeMUS) Size(v time.Time) (size int) {
	return varint.Int64.Size(v.UnixMicro())
}

var timeSer = timeMUS{}

// CandidateMUS serializes Candidate values.
var CandidateMUS = candidateMUS{}

type candidateMUS struct{}

func (s candidateMUS) Marshal(v Candidate, bs []byte) (n int) {
	n = ord.String.Marshal(v.Text, bs)
	n += raw.Float64.Marshal(v.Score, bs[n:])
	return n
}

func (s candidateMUS) Unmarshal(bs []byte) (v Candidate, n int, err error) {
	v.Text, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Score, n1, err = raw.Float64.Unmarshal(bs[n:])
	n += n1
	return
}

func (s candidateMUS) Size(v Candidate) (size int) {
	return ord.String.Size(v.Text) + raw.Float64.Size(v.Score)
}

// WordlistMUS serializes Wordlist values.
var WordlistMUS = wordlistMUS{}

type wordlistMUS struct{}

func (s wordlistMUS) Marshal(v Wordlist, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.Name, bs[n:])
	n += varint.Int.Marshal(len(v.Words), bs[n:])
	for _, word := range v.Words {
		n += ord.String.Marshal(word, bs[n:])
	}
	n += timeSer.Marshal(v.InsertedAt, bs[n:])
	n += timeSer.Marshal(v.UpdatedAt, bs[n:])
	return n
}

func (s wordlistMUS) Unmarshal(bs []byte) (v Wordlist, n int, err error) {
	var n1 int
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	v.Name, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	var length int
	length, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	if length < 0 {
		err = errNegativeLength
		return
	}
	v.Words = make([]string, 0, length)
	for i := 0; i < length; i++ {
		var word string
		word, n1, err = ord.String.Unmarshal(bs[n:])
		n += n1
		if err != nil {
			return
		}
		v.Words = append(v.Words, word)
	}
	v.InsertedAt, n1, err = timeSer.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = timeSer.Unmarshal(bs[n:])
	n += n1
	return
}

func (s wordlistMUS) Size(v Wordlist) (size int) {
	size = IDMUS.Size(v.Id)
	size += ord.String.Size(v.Name)
	size += varint.Int.Size(len(v.Words))
	for _, word := range v.Words {
		size += ord.String.Size(word)
	}
	size += timeSer.Size(v.InsertedAt)
	size += timeSer.Size(v.UpdatedAt)
	return size
}

// DecodeRunMUS serializes DecodeRun values.
var DecodeRunMUS = decodeRunMUS{}

type decodeRunMUS struct{}

func (s decodeRunMUS) Marshal(v DecodeRun, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.Bitstream, bs[n:])
	n += ord.String.Marshal(v.Wordlist, bs[n:])
	n += varint.Int.Marshal(len(v.Candidates), bs[n:])
	for _, candidate := range v.Candidates {
		n += CandidateMUS.Marshal(candidate, bs[n:])
	}
	n += timeSer.Marshal(v.InsertedAt, bs[n:])
	n += timeSer.Marshal(v.UpdatedAt, bs[n:])
	return n
}

func (s decodeRunMUS) Unmarshal(bs []byte) (v DecodeRun, n int, err error) {
	var n1 int
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	v.Bitstream, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Wordlist, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	var length int
	length, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	if length < 0 {
		err = errNegativeLength
		return
	}
	v.Candidates = make([]Candidate, 0, length)
	for i := 0; i < length; i++ {
		var candidate Candidate
		candidate, n1, err = CandidateMUS.Unmarshal(bs[n:])
		n += n1
		if err != nil {
			return
		}
		v.Candidates = append(v.Candidates, candidate)
	}
	v.InsertedAt, n1, err = timeSer.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = timeSer.Unmarshal(bs[n:])
	n += n1
	return
}

func (s decodeRunMUS) Size(v DecodeRun) (size int) {
	size = IDMUS.Size(v.Id)
	size += ord.String.Size(v.Bitstream)
	size += ord.String.Size(v.Wordlist)
	size += varint.Int.Size(len(v.Candidates))
	for _, candidate := range v.Candidates {
		size += CandidateMUS.Size(candidate)
	}
	size += timeSer.Size(v.InsertedAt)
	size += timeSer.Size(v.UpdatedAt)
	return size
}

// CheckpointMUS serializes Checkpoint values.
var CheckpointMUS = checkpointMUS{}

type checkpointMUS struct{}

func (s checkpointMUS) Marshal(v Checkpoint, bs []byte) (n int) {
	n = ord.String.Marshal(v.ProcessorType, bs)
	n += varint.Uint64.Marshal(v.Position, bs[n:])
	n += timeSer.Marshal(v.UpdatedAt, bs[n:])
	return n
}

func (s checkpointMUS) Unmarshal(bs []byte) (v Checkpoint, n int, err error) {
	var n1 int
	v.ProcessorType, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	v.Position, n1, err = varint.Uint64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = timeSer.Unmarshal(bs[n:])
	n += n1
	return
}

func (s checkpointMUS) Size(v Checkpoint) (size int) {
	return ord.String.Size(v.ProcessorType) + varint.Uint64.Size(v.Position) +
		timeSer.Size(v.UpdatedAt)
}
