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

import (
	"fmt"
	"strings"
)

// ValidateWordlist validates a Wordlist according to domain rules.
//
// Validation rules:
//   - Name must not be empty
//   - Every word must be uppercase alphabetic (A-Z only)
//
// NOT validated:
//   - ID (0 is valid before the repository assigns the content ID)
//   - Empty word slices (an empty dictionary is a valid degenerate case)
func ValidateWordlist(wordlist *Wordlist) error {
	if wordlist == nil {
		return fmt.Errorf("%w: wordlist is nil", ErrInvalidWordlist)
	}

	if wordlist.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidWordlist, ErrEmptyWordlistName)
	}

	for _, word := range wordlist.Words {
		if !IsValidWord(word) {
			return fmt.Errorf("%w: %w: %q", ErrInvalidWordlist, ErrInvalidWord, word)
		}
	}

	return nil
}

// ValidateDecodeRun validates a DecodeRun according to domain rules.
//
// Validation rules:
//   - Bitstream must not be empty
//   - Wordlist name must not be empty
//
// NOT validated:
//   - Bitstream characters outside {'0','1'}: the decoder treats them as
//     dead search branches, so they are legal to archive
//   - Candidates (an empty candidate list is a valid decode outcome)
func ValidateDecodeRun(run *DecodeRun) error {
	if run == nil {
		return fmt.Errorf("%w: run is nil", ErrInvalidRun)
	}

	if run.Bitstream == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRun, ErrEmptyBitstream)
	}

	if run.Wordlist == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRun, ErrEmptyWordlistName)
	}

	return nil
}

// IsValidWord reports whether a word is non-empty uppercase alphabetic.
func IsValidWord(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		if word[i] < 'A' || word[i] > 'Z' {
			return false
		}
	}
	return true
}

// NormalizeWord case-folds a raw token to uppercase. It returns the empty
// string for tokens that are not purely alphabetic, matching the dictionary
// source contract: such lines are skipped, not rejected.
func NormalizeWord(token string) string {
	word := strings.ToUpper(strings.TrimSpace(token))
	if !IsValidWord(word) {
		return ""
	}
	return word
}
