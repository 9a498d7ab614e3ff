package decode

import (
	"log/slog"
	"sort"

	"github.com/poiesic/demorse/core"
	"github.com/poiesic/demorse/lang"
	"github.com/poiesic/demorse/morse"
)

// commitPenalty is subtracted at every word boundary to discourage
// gratuitous over-segmentation.
const commitPenalty = 0.2

// morseTrie is built once and shared read-only across all decodes.
var morseTrie = morse.NewTrie()

// Decoder turns a dot/dash symbol sequence into ranked candidate sentences.
// It is safe for concurrent use: the memo table and search frontier are
// scoped to a single Decode call.
type Decoder struct {
	dictionary *lang.Dictionary
	config     Config
	logger     *slog.Logger
}

// Option configures a Decoder.
type Option func(*Decoder) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(d *Decoder) error {
		if logger == nil {
			logger = slog.Default()
		}
		d.logger = logger
		return nil
	}
}

// NewDecoder creates a new decoder over a dictionary.
func NewDecoder(dictionary *lang.Dictionary, config Config, opts ...Option) (*Decoder, error) {
	if dictionary == nil {
		return nil, ErrDictionaryRequired
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	d := &Decoder{
		dictionary: dictionary,
		config:     config,
		logger:     slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// Config returns the decoder's search parameters.
func (d *Decoder) Config() Config {
	return d.config
}

// state is one point in the segmentation search. States are immutable; every
// transition allocates a successor.
type state struct {
	position int
	partial  string
	history  *sentence
	score    float64
}

// memoKey deliberately excludes sentence history: two states that reach the
// same (position, partial word) through different committed sentences are
// collapsed to the higher-scoring one. This is the reference pruning policy,
// a space/quality trade-off, and it is preserved as-is.
type memoKey struct {
	position int
	partial  string
}

// Decode runs the beam search over a symbol sequence and returns up to
// MaxResults candidates, descending by score.
func (d *Decoder) Decode(symbols []morse.Symbol) []core.Candidate {
	return d.DecodeWithMonitor(symbols, nil)
}

// DecodeWithMonitor runs Decode with monitoring. The monitor receives
// callbacks for each generation of the search frontier and for every
// finalized sentence.
func (d *Decoder) DecodeWithMonitor(symbols []morse.Symbol, monitor DecodeMonitor) []core.Candidate {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	n := len(symbols)
	monitor.Start(n)

	states := []state{{}}
	memo := make(map[memoKey]float64)
	results := []core.Candidate{}
	generation := 0

	for len(states) > 0 {
		generation++
		monitor.Generation(generation, len(states))

		var next []state

		for _, st := range states {
			// Dominance check: a prior visit to the same (position,
			// partial word) with at least this score subsumes this state.
			key := memoKey{position: st.position, partial: st.partial}
			if best, seen := memo[key]; seen && best >= st.score {
				monitor.StateDominated(st.position, st.partial)
				continue
			}
			memo[key] = st.score

			// End of sequence: finalize, never expand.
			if st.position == n {
				d.finalize(st, &results, monitor)
				continue
			}

			// Letter extension: walk the trie from the root, consuming
			// symbols while edges match. Every terminal node passed emits a
			// successor, which is how segmentation ambiguity is explored.
			ref := morseTrie.Root()
			for i := st.position; i < n; i++ {
				var ok bool
				ref, ok = morseTrie.Child(ref, symbols[i])
				if !ok {
					break
				}
				if letter, terminal := morseTrie.Letter(ref); terminal && len(st.partial) < d.config.MaxWordLen {
					next = append(next, state{
						position: i + 1,
						partial:  st.partial + string(letter),
						history:  st.history,
						score:    st.score + lang.ScoreLetter(letter),
					})
				}
			}

			// Word boundary: commit the partial word in place, consuming
			// nothing.
			if st.partial != "" && d.dictionary.Contains(st.partial) {
				next = append(next, state{
					position: st.position,
					partial:  "",
					history:  st.history.append(st.partial),
					score:    st.score + lang.ScoreWord(st.partial, d.dictionary) - commitPenalty,
				})
			}
		}

		// Beam pruning. The sort is stable so ties keep generation order and
		// repeated runs stay byte-identical.
		sort.SliceStable(next, func(i, j int) bool {
			return next[i].score > next[j].score
		})
		if len(next) > d.config.BeamWidth {
			next = next[:d.config.BeamWidth]
		}
		states = next
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > d.config.MaxResults {
		results = results[:d.config.MaxResults]
	}
	monitor.Finish(results)

	return results
}

// finalize accepts a state at the end of the symbol sequence. A non-empty
// partial word must be a dictionary member; otherwise the state is silently
// dropped. An empty sentence carries no content and is not emitted.
func (d *Decoder) finalize(st state, results *[]core.Candidate, monitor DecodeMonitor) {
	switch {
	case st.partial == "":
		text := st.history.join("")
		if text == "" {
			return
		}
		*results = append(*results, core.Candidate{Text: text, Score: st.score})
		monitor.Finalized(text, st.score)
	case d.dictionary.Contains(st.partial):
		text := st.history.join(st.partial)
		score := st.score + lang.ScoreWord(st.partial, d.dictionary)
		*results = append(*results, core.Candidate{Text: text, Score: score})
		monitor.Finalized(text, score)
	}
}
