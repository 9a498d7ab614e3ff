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


// Package ai provides abstractions for AI-assisted candidate re-ranking.
//
// The heuristic decoder scores candidate sentences by letter frequency and
// dictionary membership, which cannot tell "SOS" from an equally scored
// string of filler words. This package defines a SentenceRanker that asks a
// language model how plausible each candidate is as an actual message, and
// a Rerank function that blends that judgment into the heuristic ranking.
//
// The package defines interfaces only; implementations live in
// sub-packages:
//
//   - ai/openai: production implementation using OpenAI-compatible APIs
//   - ai/mock: test doubles for unit testing without external dependencies
//
// Public constructors in ai/openai return interface types to enforce
// abstraction. Mock constructors return concrete types so tests can inject
// behavior and assert on call counts.
package ai
