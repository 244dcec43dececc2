package unionfind

import "errors"

var (
	// ErrNotFound indicates the identifier was never inserted.
	ErrNotFound = errors.New("unionfind: identifier not found")
	// ErrBadSnapshot indicates a snapshot whose entries do not describe a
	// valid registry: duplicate ids, unknown parent references, ranks < 1,
	// or parent cycles.
	ErrBadSnapshot = errors.New("unionfind: malformed snapshot")
)
