// Package main provides the entry point for the parsebench CLI.
//
// parsebench is a benchmarking harness that measures and compares the
// throughput of interchangeable Go parsing backends over a corpus of
// source files.
//
// Usage:
//
//	parsebench bench --parser goparser --parser treesitter ./src
//	parsebench bench -p goparser -n 10 file.go dir/
//
// See --help for all available options.
package main

// main is the entry point for parsebench.
func main() {
	Execute()
}
