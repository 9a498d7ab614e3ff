package batch

import "errors"

var (
	// ErrRunRepositoryRequired indicates a nil run repository was provided.
	ErrRunRepositoryRequired = errors.New("run repository is required")

	// ErrDecoderRequired indicates a nil decoder was provided.
	ErrDecoderRequired = errors.New("decoder is required")

	// ErrWordlistNameRequired indicates an empty wordlist name was provided.
	ErrWordlistNameRequired = errors.New("wordlist name is required")
)
