package decode

import "github.com/poiesic/demorse/core"

// DecodeMonitor provides hooks to observe the search process.
// Implement this interface to track the frontier and finalized sentences
// during a decode.
type DecodeMonitor interface {
	Start(symbolCount int)
	Generation(generation, activeStates int)
	StateDominated(position int, partialWord string)
	Finalized(text string, score float64)
	Finish(results []core.Candidate)
}

// noopMonitor is a no-op implementation of DecodeMonitor
type noopMonitor struct{}

var _ DecodeMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ int)                    {}
func (n *noopMonitor) Generation(_, _ int)            {}
func (n *noopMonitor) StateDominated(_ int, _ string) {}
func (n *noopMonitor) Finalized(_ string, _ float64)  {}
func (n *noopMonitor) Finish(_ []core.Candidate)      {}
