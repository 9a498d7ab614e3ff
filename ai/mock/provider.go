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


package mock

import "github.com/poiesic/demorse/ai"

// MockProvider is a test double for ai.AIProvider.
type MockProvider struct {
	ranker *MockSentenceRanker
}

// NewMockProvider creates a new mock provider with default mock services.
//
// Returns ai.AIProvider interface for consistency with production constructors.
// Use GetMockRanker() to access the concrete type for test assertions.
func NewMockProvider() ai.AIProvider {
	return &MockProvider{
		ranker: NewMockSentenceRanker(),
	}
}

// NewMockProviderWithRanker creates a mock provider with a custom mock ranker.
// This allows full control over ranking behavior.
func NewMockProviderWithRanker(ranker *MockSentenceRanker) ai.AIProvider {
	return &MockProvider{
		ranker: ranker,
	}
}

// SentenceRanker returns the mock sentence ranker.
func (p *MockProvider) SentenceRanker() ai.SentenceRanker {
	return p.ranker
}

// Close is a no-op for mock provider.
func (p *MockProvider) Close() error {
	return nil
}

// GetMockRanker returns the underlying mock ranker for test assertions.
// This allows tests to check call counts and inject custom behavior.
func (p *MockProvider) GetMockRanker() *MockSentenceRanker {
	return p.ranker
}
