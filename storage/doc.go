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


// Package storage provides the storage abstraction layer for demorse.
//
// This package defines repository interfaces that decouple storage
// implementation from the decoding logic. Wordlists (named dictionaries) and
// decode runs (archived results) can be persisted by any backend that
// implements them; BadgerDB is the provided implementation.
//
// # Interface Usage
//
// Backend constructors return concrete repository types; consumers should
// hold the interfaces defined here:
//
//	var repo storage.WordlistRepository = badger.NewWordlistRepository(backend)
//
// This keeps consumers decoupled from BadgerDB specifics and lets tests
// substitute in-memory implementations without modification.
//
// # Thread Safety
//
// All repository implementations must be thread-safe and support concurrent
// access from multiple goroutines: the batch pipeline persists runs from
// pool workers.
//
// # Context Support
//
// All repository methods accept context.Context for cancellation and timeout
// support. Pass context.Background() for operations without specific timeout
// requirements.
package storage
