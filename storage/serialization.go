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


package storage

import (
	"github.com/poiesic/demorse/core"
)

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, core.IDMUS.Size(id))
	core.IDMUS.Marshal(id, buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	id, _, err := core.IDMUS.Unmarshal(data)
	return id, err
}

// MarshalWordlist serializes a Wordlist to bytes.
func MarshalWordlist(wordlist *core.Wordlist) []byte {
	buf := make([]byte, core.WordlistMUS.Size(*wordlist))
	core.WordlistMUS.Marshal(*wordlist, buf)
	return buf
}

// UnmarshalWordlist deserializes a Wordlist from bytes.
func UnmarshalWordlist(data []byte) (*core.Wordlist, error) {
	wordlist, _, err := core.WordlistMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &wordlist, nil
}

// MarshalDecodeRun serializes a DecodeRun to bytes.
func MarshalDecodeRun(run *core.DecodeRun) []byte {
	buf := make([]byte, core.DecodeRunMUS.Size(*run))
	core.DecodeRunMUS.Marshal(*run, buf)
	return buf
}

// UnmarshalDecodeRun deserializes a DecodeRun from bytes.
func UnmarshalDecodeRun(data []byte) (*core.DecodeRun, error) {
	run, _, err := core.DecodeRunMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// MarshalCheckpoint serializes a Checkpoint to bytes.
func MarshalCheckpoint(checkpoint *core.Checkpoint) []byte {
	buf := make([]byte, core.CheckpointMUS.Size(*checkpoint))
	core.CheckpointMUS.Marshal(*checkpoint, buf)
	return buf
}

// UnmarshalCheckpoint deserializes a Checkpoint from bytes.
func UnmarshalCheckpoint(data []byte) (*core.Checkpoint, error) {
	checkpoint, _, err := core.CheckpointMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &checkpoint, nil
}
