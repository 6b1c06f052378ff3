package corpus

import (
	"log/slog"
	"os"
	"strings"

	"github.com/karrick/godirwalk"
)

// Collector gathers source files from a list of input paths.
//
// Collection is best-effort: files that cannot be read (permission
// errors, files removed between listing and read) are skipped and logged
// at debug level, never surfaced as errors. A single unreadable file in
// a large corpus must not abort the benchmark.
type Collector struct {
	// extension selects which files are loaded, e.g. ".go".
	extension string

	// logger receives debug messages for skipped entries.
	logger *slog.Logger
}

// CollectorOption configures a Collector.
type CollectorOption func(*Collector)

// WithExtension sets the source file extension to collect.
// The extension must include the leading dot.
func WithExtension(ext string) CollectorOption {
	return func(c *Collector) {
		if ext != "" {
			c.extension = ext
		}
	}
}

// WithCollectorLogger sets a custom logger for the collector.
func WithCollectorLogger(logger *slog.Logger) CollectorOption {
	return func(c *Collector) {
		c.logger = logger
	}
}

// NewCollector creates a Collector with the given options.
// The default extension is ".go".
func NewCollector(opts ...CollectorOption) *Collector {
	c := &Collector{
		extension: ".go",
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = slog.Default()
	}

	return c
}

// Collect walks every input path and loads matching files into buffers.
//
// Directories are walked recursively in lexically sorted order, so the
// result ordering is stable across repeated runs on an unchanged corpus.
// That ordering determines per-iteration work order during benchmarking,
// which matters for reproducibility of timing noise.
//
// A path that is a regular file is loaded directly when its name matches
// the extension; non-matching paths are ignored. Collect never fails:
// unreadable paths are skipped.
func (c *Collector) Collect(paths []string) []*Buffer {
	buffers := make([]*Buffer, 0)

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			c.logger.Debug("skipping unreadable path", "path", path, "error", err)
			continue
		}

		if info.IsDir() {
			buffers = c.collectDir(path, buffers)
			continue
		}

		if buf := c.load(path); buf != nil {
			buffers = append(buffers, buf)
		}
	}

	return buffers
}

// collectDir recursively collects matching files under dir.
func (c *Collector) collectDir(dir string, buffers []*Buffer) []*Buffer {
	err := godirwalk.Walk(dir, &godirwalk.Options{
		// Sorted traversal (godirwalk's default) keeps corpus order
		// stable across runs.
		Callback: func(path string, de *godirwalk.Dirent) error {
			if de.IsDir() {
				return nil
			}
			if buf := c.load(path); buf != nil {
				buffers = append(buffers, buf)
			}
			return nil
		},
		ErrorCallback: func(path string, err error) godirwalk.ErrorAction {
			c.logger.Debug("skipping unreadable entry", "path", path, "error", err)
			return godirwalk.SkipNode
		},
	})
	if err != nil {
		c.logger.Debug("directory walk aborted", "dir", dir, "error", err)
	}
	return buffers
}

// load reads one file into a Buffer if its name matches the extension.
// Returns nil for non-matching or unreadable files.
func (c *Collector) load(path string) *Buffer {
	if !strings.HasSuffix(path, c.extension) {
		return nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // User-provided corpus path is intentional
	if err != nil {
		c.logger.Debug("skipping unreadable file", "path", path, "error", err)
		return nil
	}

	return NewBuffer(path, data)
}
