package decode

import "fmt"

// Config holds the decoder's search parameters. The zero value is not
// useful; start from DefaultConfig.
type Config struct {
	// BeamWidth bounds the number of search states kept per generation.
	// Zero yields empty output deterministically.
	BeamWidth int

	// MaxWordLen caps the length of an in-progress word.
	MaxWordLen int

	// MaxResults caps both per-call and aggregated output size.
	MaxResults int

	// ReversePolarity enables the additional inverted-polarity hypothesis
	// (1=dash, 0=dot) when decoding a bitstream.
	ReversePolarity bool
}

// DefaultConfig returns the reference search parameters.
func DefaultConfig() Config {
	return Config{
		BeamWidth:       12000,
		MaxWordLen:      15,
		MaxResults:      20,
		ReversePolarity: true,
	}
}

// Validate checks that all numeric parameters are non-negative. Zero values
// are legal and produce empty or minimal output without error.
func (c Config) Validate() error {
	if c.BeamWidth < 0 {
		return fmt.Errorf("%w: beam width %d", ErrInvalidConfig, c.BeamWidth)
	}
	if c.MaxWordLen < 0 {
		return fmt.Errorf("%w: max word length %d", ErrInvalidConfig, c.MaxWordLen)
	}
	if c.MaxResults < 0 {
		return fmt.Errorf("%w: max results %d", ErrInvalidConfig, c.MaxResults)
	}
	return nil
}
