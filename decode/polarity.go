package decode

import (
	"sort"

	"github.com/poiesic/demorse/core"
	"github.com/poiesic/demorse/morse"
)

// ApplyPolarity maps a raw bitstream to a symbol sequence. Under the normal
// hypothesis bit '1' is a dot and '0' a dash; under invert the bit values
// are swapped before the same mapping. Characters outside {'0','1'} become
// morse.Invalid, which never matches a trie edge; the branch dies silently
// instead of raising an error. This is documented behavior, not a defect.
func ApplyPolarity(bitstream string, invert bool) []morse.Symbol {
	dot, dash := byte('1'), byte('0')
	if invert {
		dot, dash = dash, dot
	}

	symbols := make([]morse.Symbol, len(bitstream))
	for i := 0; i < len(bitstream); i++ {
		switch bitstream[i] {
		case dot:
			symbols[i] = morse.Dot
		case dash:
			symbols[i] = morse.Dash
		default:
			symbols[i] = morse.Invalid
		}
	}
	return symbols
}

// DecodeBitstream decodes a raw bitstream under the normal polarity
// hypothesis and, when configured, the inverted one, then merges the ranked
// results by sentence text keeping the maximum score.
func (d *Decoder) DecodeBitstream(bitstream string) []core.Candidate {
	results := d.Decode(ApplyPolarity(bitstream, false))
	d.logger.Debug("decoded normal polarity", "bits", len(bitstream), "results", len(results))

	if d.config.ReversePolarity {
		inverted := d.Decode(ApplyPolarity(bitstream, true))
		d.logger.Debug("decoded reverse polarity", "bits", len(bitstream), "results", len(inverted))
		results = MergeCandidates(d.config.MaxResults, results, inverted)
	}

	return results
}

// MergeCandidates merges ranked candidate lists: one entry per distinct
// sentence text with the maximum score across occurrences, sorted descending
// by score (stable on first appearance for equal scores) and truncated to
// limit.
func MergeCandidates(limit int, lists ...[]core.Candidate) []core.Candidate {
	best := make(map[string]float64)
	order := make([]string, 0)
	for _, list := range lists {
		for _, candidate := range list {
			score, seen := best[candidate.Text]
			if !seen {
				order = append(order, candidate.Text)
			}
			if !seen || candidate.Score > score {
				best[candidate.Text] = candidate.Score
			}
		}
	}

	merged := make([]core.Candidate, 0, len(order))
	for _, text := range order {
		merged = append(merged, core.Candidate{Text: text, Score: best[text]})
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Score > merged[j].Score
	})
	if len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}
