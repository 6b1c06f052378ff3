// Package corpus loads the source files to benchmark.
// It collects files matching the target extension from a list of input
// paths into in-memory buffers and computes the aggregate statistics
// (file, byte, and line counts) used as the throughput denominator.
package corpus
