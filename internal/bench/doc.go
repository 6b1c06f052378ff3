// Package bench runs one parsing backend over the corpus for a number
// of iterations, accumulating wall-clock and CPU time into a result
// with derived throughput. The run is strictly sequential and
// fail-fast: the first parse error aborts the run and discards any
// partially accumulated totals.
package bench
