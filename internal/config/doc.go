// Package config provides configuration structures and utilities for
// parsebench. It defines the benchmark run options built from CLI
// flags, their validation, and the optional YAML defaults file.
package config
