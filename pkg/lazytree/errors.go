package lazytree

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownRow = errors.New("unknown row")
	ErrNoPath     = errors.New("entry has no path")
	ErrNotText    = errors.New("content is not valid UTF-8 text")
	ErrTooLarge   = errors.New("file is too large")
	ErrRootNotDir = errors.New("root is not an existing directory")
)

// ReadError is returned when an activated file can not be shown.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// ListError is returned when a directory can not be enumerated.
type ListError struct {
	Dir string
	Err error
}

func (e *ListError) Error() string {
	return fmt.Sprintf("failed to list %s: %v", e.Dir, e.Err)
}

func (e *ListError) Unwrap() error {
	return e.Err
}
