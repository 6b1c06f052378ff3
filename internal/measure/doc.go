// Package measure times a unit of work against two clocks: elapsed
// wall-clock time and process CPU time. Throughput reporting is based
// on the CPU clock, so both readings are captured around the same call.
package measure
