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


// Package decode implements the ambiguous-segmentation search that turns a
// continuous Morse bitstream into ranked candidate sentences.
//
// The Decoder explores every way a dot/dash sequence can be partitioned into
// letters and grouped into dictionary words, using a generational beam
// search guided by the Morse trie:
//   - letter extension walks the trie from the root, emitting one successor
//     state per terminal node passed;
//   - word boundaries commit a dictionary word without consuming symbols;
//   - a (position, partial word) memo table discards dominated states;
//   - each generation keeps only the top BeamWidth states by score.
//
// The search is a heuristic approximation, not an exact optimum finder: beam
// truncation and memo dominance can both discard paths whose eventual
// sentence would have scored higher.
//
// A decode call is single-threaded and fully deterministic for fixed inputs
// and configuration. The polarity wrapper runs the search under both dot/dash
// bit assignments and merges the ranked results.
package decode
