// Package executor defines the pluggable parsing backends being
// benchmarked. Each executor wraps one parser implementation behind a
// single Parse operation; executors hold no state between calls, so
// every call pays the full cold, per-file parse cost.
package executor
