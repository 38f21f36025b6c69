package tagbridge

import (
	"github.com/deluan/tagbridge/internal/types"
)

// InvalidHandleError is an alias to types.InvalidHandleError.
// Returned by every handle-addressed operation on a handle absent from the
// registry.
type InvalidHandleError = types.InvalidHandleError

// ImageNotFoundError is an alias to types.ImageNotFoundError.
// Returned by ReadImage for an out-of-range index.
type ImageNotFoundError = types.ImageNotFoundError

// UnsupportedWriteError is an alias to types.UnsupportedWriteError.
// Returned when the classified format cannot perform the requested write.
type UnsupportedWriteError = types.UnsupportedWriteError

// SaveError is an alias to types.SaveError.
// Wraps persistence failures reported by the tag library.
type SaveError = types.SaveError

// ErrInvalidFile is returned when the tag library rejects an input as
// unreadable or unrecognized.
var ErrInvalidFile = types.ErrInvalidFile

// ErrNoAudioProperties is returned by ReadProperties when the tag library
// could not compute audio properties for the file.
var ErrNoAudioProperties = types.ErrNoAudioProperties
