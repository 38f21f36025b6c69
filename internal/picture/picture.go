// Package picture implements the embedded-image operations, uniformly for
// every container whose tag library exposes a picture list.
package picture

import (
	"fmt"

	"github.com/deluan/tagbridge/internal/types"
	"github.com/deluan/tagbridge/tagfile"
)

// Describe returns one metadata row per embedded picture, in list order.
// Files without pictures, and files whose picture list cannot be read,
// yield an empty list.
func Describe(f tagfile.File) []types.ImageDesc {
	pics, err := f.Pictures()
	if err != nil || len(pics) == 0 {
		return nil
	}
	descs := make([]types.ImageDesc, len(pics))
	for i, p := range pics {
		descs[i] = types.ImageDesc{
			Type:        p.Type,
			Description: p.Description,
			MIMEType:    p.MIMEType,
		}
	}
	return descs
}

// Fetch returns the raw payload of the picture at index. An out-of-range
// index (negative or at/past the list length) is a defined not-found
// result, never a panic.
func Fetch(f tagfile.File, index int) ([]byte, error) {
	pics, err := f.Pictures()
	if err != nil {
		return nil, fmt.Errorf("read picture list: %w", err)
	}
	if index < 0 || index >= len(pics) {
		return nil, &types.ImageNotFoundError{Index: index, Count: len(pics)}
	}
	return pics[index].Data, nil
}

// Apply mutates the picture list and persists the file.
//
// A zero-length payload deletes the picture at index when the index is in
// range; an out-of-range index is a silent no-op that is still saved. A
// non-zero payload replaces the picture at index when in range, and is
// appended as a new picture otherwise, carrying the given type, description
// and MIME metadata.
//
// Failing to commit the mutated list back to the file object is a hard
// failure, reported distinctly from a failure to persist the file itself.
func Apply(f tagfile.File, data []byte, index int, picType, description, mimeType string) error {
	pics, err := f.Pictures()
	if err != nil {
		return fmt.Errorf("read picture list: %w", err)
	}

	if len(data) == 0 {
		if index >= 0 && index < len(pics) {
			pics = append(pics[:index], pics[index+1:]...)
			if err := f.SetPictures(pics); err != nil {
				return fmt.Errorf("commit picture list: %w", err)
			}
		}
		if err := f.Save(); err != nil {
			return &types.SaveError{Op: "write image", Err: err}
		}
		return nil
	}

	p := tagfile.Picture{
		Type:        picType,
		Description: description,
		MIMEType:    mimeType,
		Data:        data,
	}
	if index >= 0 && index < len(pics) {
		pics[index] = p
	} else {
		pics = append(pics, p)
	}
	if err := f.SetPictures(pics); err != nil {
		return fmt.Errorf("commit picture list: %w", err)
	}
	if err := f.Save(); err != nil {
		return &types.SaveError{Op: "write image", Err: err}
	}
	return nil
}
