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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidWordlist indicates a Wordlist failed validation.
	ErrInvalidWordlist = errors.New("invalid wordlist")

	// ErrInvalidRun indicates a DecodeRun failed validation.
	ErrInvalidRun = errors.New("invalid decode run")

	// ErrEmptyWordlistName indicates the wordlist Name field is empty.
	ErrEmptyWordlistName = errors.New("wordlist name cannot be empty")

	// ErrInvalidWord indicates a word is not uppercase alphabetic.
	ErrInvalidWord = errors.New("word must be uppercase alphabetic")

	// ErrEmptyBitstream indicates the Bitstream field is empty.
	ErrEmptyBitstream = errors.New("bitstream cannot be empty")
)
