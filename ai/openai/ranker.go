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


package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/poiesic/demorse/ai"
)

// SentenceRanker implements ai.SentenceRanker using OpenAI-compatible chat APIs.
type SentenceRanker struct {
	client llms.Model
	logger *slog.Logger
}

// rating is an internal type used for JSON unmarshaling.
// It matches the structure expected from the LLM.
type rating struct {
	Sentence     string `json:"sentence"`
	Plausibility int    `json:"plausibility"`
}

// assessment is the wrapper structure for the LLM's JSON response.
type assessment struct {
	Ratings []rating `json:"ratings"`
}

// newSentenceRanker is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newSentenceRanker(config *ai.Config) (*SentenceRanker, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Use "none" as token for local OpenAI-compatible services that don't require authentication
	client, err := openai.New(
		openai.WithBaseURL(config.RankerHost),
		openai.WithToken("none"),
		openai.WithModel(config.RankerModel),
	)
	if err != nil {
		return nil, err
	}

	return &SentenceRanker{
		client: client,
		logger: slog.Default().With("component", "openai-ranker"),
	}, nil
}

// NewSentenceRanker creates a new sentence ranker using the provided configuration.
//
// Returns ai.SentenceRanker interface to enforce abstraction.
func NewSentenceRanker(config *ai.Config) (ai.SentenceRanker, error) {
	return newSentenceRanker(config)
}

// RankSentences rates candidate sentences using an LLM. The result preserves
// input order; sentences the model omits from its response get plausibility 0.
func (r *SentenceRanker) RankSentences(ctx context.Context, sentences []string) ([]ai.RankedSentence, error) {
	if len(sentences) == 0 {
		return []ai.RankedSentence{}, nil
	}

	systemPrompt := fmt.Sprintf(rankingPromptTemplate, rankingResponseSchema)
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(systemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(strings.Join(sentences, "\n")),
			},
		},
	}

	// Try up to 3 times in case of malformed JSON
	var result assessment
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		response, err := r.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
		if err != nil {
			r.logger.Error("failed to generate content", "attempt", attempt+1, "err", err)
			return nil, err
		}

		if len(response.Choices) < 1 {
			r.logger.Debug("no choices returned from model")
			return unrated(sentences), nil
		}

		choice := response.Choices[0]

		// Strip markdown code fences if present
		responseText := strings.TrimSpace(choice.Content)
		responseText = strings.TrimPrefix(responseText, "```json")
		responseText = strings.TrimPrefix(responseText, "```")
		responseText = strings.TrimSuffix(responseText, "```")
		responseText = strings.TrimSpace(responseText)

		// Try to repair common JSON issues
		responseText = repairJSON(responseText)

		if err := json.Unmarshal([]byte(responseText), &result); err != nil {
			lastErr = err
			r.logger.Warn("error parsing ranker response",
				"attempt", attempt+1,
				"response", responseText,
				"err", err)
			continue
		}

		// Success
		lastErr = nil
		break
	}

	if lastErr != nil {
		r.logger.Error("failed to parse ranker response after retries", "err", lastErr)
		return nil, lastErr
	}

	// Index the model's ratings, clamping out-of-range scores
	rated := make(map[string]int, len(result.Ratings))
	for _, rt := range result.Ratings {
		plausibility := rt.Plausibility
		if plausibility < 1 {
			plausibility = 1
		}
		if plausibility > 10 {
			plausibility = 10
		}
		rated[strings.TrimSpace(rt.Sentence)] = plausibility
	}

	ranked := make([]ai.RankedSentence, len(sentences))
	missing := 0
	for i, sentence := range sentences {
		plausibility, ok := rated[sentence]
		if !ok {
			missing++
		}
		ranked[i] = ai.RankedSentence{Sentence: sentence, Plausibility: plausibility}
	}

	r.logger.Debug("ranked sentences", "total", len(sentences), "unrated", missing)
	return ranked, nil
}

// unrated builds a zero-plausibility result preserving input order.
func unrated(sentences []string) []ai.RankedSentence {
	ranked := make([]ai.RankedSentence, len(sentences))
	for i, sentence := range sentences {
		ranked[i] = ai.RankedSentence{Sentence: sentence}
	}
	return ranked
}
