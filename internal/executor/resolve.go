package executor

import "fmt"

// Names returns the known backend names in display order.
func Names() []string {
	return []string{GoParserName, TreeSitterName}
}

// Resolve maps requested backend names to executors, preserving the
// request order. An unknown name fails resolution with
// ErrUnknownExecutor; the set of backends is fixed at build time.
func Resolve(names []string) ([]Executor, error) {
	executors := make([]Executor, 0, len(names))

	for _, name := range names {
		switch name {
		case GoParserName:
			executors = append(executors, NewGoParser())
		case TreeSitterName:
			executors = append(executors, NewTreeSitter())
		default:
			return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownExecutor, name, Names())
		}
	}

	return executors, nil
}
