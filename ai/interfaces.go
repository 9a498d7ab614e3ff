package ai

import "context"

// SentenceRanker rates the plausibility of candidate sentences.
// Implementations must be thread-safe for concurrent use.
type SentenceRanker interface {
	// RankSentences rates each sentence on a 1-10 plausibility scale, where
	// 10 means the sentence reads as a natural message and 1 means it reads
	// as noise. The returned slice preserves the input order. Sentences the
	// model fails to rate get plausibility 0.
	RankSentences(ctx context.Context, sentences []string) ([]RankedSentence, error)
}

// RankedSentence is a sentence with its model-assigned plausibility.
type RankedSentence struct {
	// Sentence is the candidate text exactly as submitted.
	Sentence string

	// Plausibility is a score from 1-10 indicating how likely the sentence
	// is to be a real message rather than a decoding artifact.
	Plausibility int
}

// AIProvider aggregates AI services for convenient initialization and
// lifecycle management.
type AIProvider interface {
	// SentenceRanker returns the sentence plausibility service.
	// The returned SentenceRanker is safe for concurrent use.
	SentenceRanker() SentenceRanker

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
