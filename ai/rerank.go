package ai

import (
	"context"
	"sort"

	"github.com/poiesic/demorse/core"
)

// Rerank blends model plausibility into heuristically ranked candidates.
// Each candidate's score becomes score + weight * plausibility, and the list
// is re-sorted descending. Candidates the ranker did not rate keep their
// heuristic score. The input slice is not modified.
func Rerank(ctx context.Context, ranker SentenceRanker, weight float64, candidates []core.Candidate) ([]core.Candidate, error) {
	if len(candidates) == 0 {
		return []core.Candidate{}, nil
	}

	sentences := make([]string, len(candidates))
	for i, candidate := range candidates {
		sentences[i] = candidate.Text
	}

	ranked, err := ranker.RankSentences(ctx, sentences)
	if err != nil {
		return nil, err
	}

	plausibility := make(map[string]int, len(ranked))
	for _, r := range ranked {
		plausibility[r.Sentence] = r.Plausibility
	}

	blended := make([]core.Candidate, len(candidates))
	for i, candidate := range candidates {
		blended[i] = core.Candidate{
			Text:  candidate.Text,
			Score: candidate.Score + weight*float64(plausibility[candidate.Text]),
		}
	}

	sort.SliceStable(blended, func(i, j int) bool {
		return blended[i].Score > blended[j].Score
	})

	return blended, nil
}
