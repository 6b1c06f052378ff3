package corpus

import "bytes"

// Buffer is one loaded source file held in memory.
// The name is the path the file was loaded from, and the data is treated
// as read-only after construction: buffers are shared by every backend
// invocation and every iteration of a run, and nothing may mutate them.
type Buffer struct {
	// Name identifies the buffer, typically the file path.
	Name string

	// Data is the full file contents. Read-only after construction.
	Data []byte
}

// NewBuffer creates a Buffer for the given name and contents.
func NewBuffer(name string, data []byte) *Buffer {
	return &Buffer{Name: name, Data: data}
}

// Len returns the buffer size in bytes.
func (b *Buffer) Len() int {
	return len(b.Data)
}

// Lines returns the number of newline characters in the buffer.
// This matches how the corpus line count is defined: a trailing line
// without a newline is not counted.
func (b *Buffer) Lines() int {
	return bytes.Count(b.Data, []byte{'\n'})
}
