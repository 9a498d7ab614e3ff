// Package batch provides pipeline orchestration for decoding bitstream files.
//
// The Pipeline type manages the batch workflow: reading bitstreams line by
// line, decoding them concurrently with a worker pool, and archiving the
// ranked candidates for each line. Progress is checkpointed so an interrupted
// batch can resume where it left off instead of repeating completed work.
//
// Per-line decode failures are logged and counted but do not abort the batch.
package batch
