package bytesource

import "io"

// readSeekerHost adapts a local io.ReadSeeker to the Host capability, for
// callers that already have an in-process stream. Length is answered by
// seeking to the end and restoring the cursor, mirroring how a remote host
// would implement it.
type readSeekerHost struct {
	r io.ReadSeeker
}

// FromReadSeeker wraps r as a Host. The caller keeps ownership of r and
// must keep it valid for the life of any adapter built on the result.
func FromReadSeeker(r io.ReadSeeker) Host {
	return &readSeekerHost{r: r}
}

func (h *readSeekerHost) Read(p []byte) (int, error) {
	return h.r.Read(p)
}

func (h *readSeekerHost) Seek(offset int64, whence int) error {
	_, err := h.r.Seek(offset, whence)
	return err
}

func (h *readSeekerHost) Tell() (int64, error) {
	return h.r.Seek(0, io.SeekCurrent)
}

func (h *readSeekerHost) Length() (int64, error) {
	cur, err := h.r.Seek(0, io.SeekCurrent)
	if err != nil {
		return -1, err
	}
	end, err := h.r.Seek(0, io.SeekEnd)
	if err != nil {
		return -1, err
	}
	_, err = h.r.Seek(cur, io.SeekStart)
	return end, err
}
