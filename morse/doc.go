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


// Package morse defines the International Morse alphabet for the 26 Latin
// letters and a prefix trie over dot/dash sequences.
//
// Morse is not a prefix code: the code for E (".") is a strict prefix of the
// code for A (".-"), so a single walk from the trie root can pass through
// several terminal nodes. The decoder relies on this to enumerate every
// letter a symbol window could spell.
//
// The trie is built once, is immutable, and is safe to share across
// concurrent decodes.
package morse
