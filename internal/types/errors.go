package types

import (
	"errors"
	"fmt"
)

// ErrInvalidFile is returned when a tag library rejects an input as
// unreadable or unrecognized.
var ErrInvalidFile = errors.New("invalid file")

// ErrNoAudioProperties is returned when a file carries no computable audio
// properties.
var ErrNoAudioProperties = errors.New("no audio properties")

// InvalidHandleError is returned when an operation targets a handle that is
// not present in the registry (never opened, or already closed).
type InvalidHandleError struct {
	Handle uint32
}

func (e *InvalidHandleError) Error() string {
	return fmt.Sprintf("invalid handle %d", e.Handle)
}

// ImageNotFoundError is returned when a picture index is out of range.
type ImageNotFoundError struct {
	Index int
	Count int
}

func (e *ImageNotFoundError) Error() string {
	return fmt.Sprintf("no image at index %d (file has %d)", e.Index, e.Count)
}

// UnsupportedWriteError indicates a write the classified format cannot
// perform, e.g. raw frame writes on a non-MPEG container.
type UnsupportedWriteError struct {
	Format Format
	Reason string
}

func (e *UnsupportedWriteError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("write not supported for %s: %s", e.Format, e.Reason)
	}
	return fmt.Sprintf("write not supported for %s", e.Format)
}

// SaveError wraps a persistence failure reported by the tag library. The
// in-memory state may already hold the requested changes; the backing store
// does not.
type SaveError struct {
	Op  string
	Err error
}

func (e *SaveError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: save failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: save failed", e.Op)
}

func (e *SaveError) Unwrap() error { return e.Err }
