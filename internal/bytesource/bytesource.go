// Package bytesource adapts a host-owned stream capability into the
// synchronous random-access byte source a tag library expects.
//
// The host side of the boundary owns the actual stream (a network body, an
// archive member, an in-memory buffer) and exposes only four operations:
// read, seek, tell and length. Each one is potentially a latency-bearing
// round-trip, so the adapter fronts them with a single fixed-size read-ahead
// window and never issues more than one outstanding host request at a time.
package bytesource

import (
	"fmt"
	"io"
)

// BufferSize is the read-ahead window capacity. Tag parsing alternates
// short reads with backward seeks (header, then footer, then frames), and a
// 32 KiB window keeps the common patterns to a handful of host round-trips.
const BufferSize = 32 * 1024

// Host is the stream capability the embedding host supplies. Read and Seek
// operate on the host's own cursor; Tell and Length report it. All four may
// be remote and slow - the adapter minimizes how often they are hit.
type Host interface {
	// Read reads up to len(p) bytes at the host cursor, advancing it.
	// Returns the number of bytes read; 0 with a nil or io.EOF error
	// means the stream is exhausted at the cursor.
	Read(p []byte) (int, error)

	// Seek repositions the host cursor.
	Seek(offset int64, whence int) error

	// Tell reports the host cursor position.
	Tell() (int64, error)

	// Length reports the total stream length.
	Length() (int64, error)
}

// Buffered is a read-only random-access view over a Host, satisfying
// tagfile.Stream. It keeps a single contiguous window of the stream in
// memory; reads inside the window cost nothing, reads outside it cost
// exactly one host refill.
//
// The stream length is captured once at construction and never re-queried:
// live-growing streams are not supported.
type Buffered struct {
	host   Host
	name   string
	length int64

	pos      int64 // logical read position
	winStart int64 // stream offset of window[0]
	window   []byte
	store    []byte

	refills int // host refill count, for tests and diagnostics
}

// New queries the host's length and returns an adapter positioned at the
// start of the stream. name is the virtual file name reported to the tag
// library.
func New(host Host, name string) (*Buffered, error) {
	length, err := host.Length()
	if err != nil {
		return nil, fmt.Errorf("query stream length: %w", err)
	}
	if length < 0 {
		return nil, fmt.Errorf("host reported negative length %d", length)
	}
	return &Buffered{
		host:   host,
		name:   name,
		length: length,
		store:  make([]byte, BufferSize),
	}, nil
}

// Name returns the virtual file name.
func (b *Buffered) Name() string { return b.name }

// Length returns the total stream length. Pure local state.
func (b *Buffered) Length() int64 { return b.length }

// Tell returns the current read position. Pure local state.
func (b *Buffered) Tell() int64 { return b.pos }

// Refills reports how many host refills have been issued so far.
func (b *Buffered) Refills() int { return b.refills }

// Read reads up to len(p) bytes at the current position. It returns fewer
// bytes at end of stream and io.EOF once the position is at or past the
// end. A request spanning the window boundary is served by repeated window
// refills; each refill is one synchronous host round-trip.
func (b *Buffered) Read(p []byte) (int, error) {
	total := 0
	for total < len(p) && b.pos < b.length {
		if b.pos < b.winStart || b.pos >= b.winStart+int64(len(b.window)) {
			if err := b.fill(b.pos); err != nil {
				if total > 0 {
					return total, nil
				}
				return 0, err
			}
			if len(b.window) == 0 {
				// Host exhausted earlier than its advertised length.
				break
			}
		}
		n := copy(p[total:], b.window[b.pos-b.winStart:])
		total += n
		b.pos += int64(n)
	}
	if total == 0 && len(p) > 0 {
		return 0, io.EOF
	}
	return total, nil
}

// fill seeks the host to off and reads until the window is full or the host
// reports exhaustion. Partial host reads are concatenated; the whole fill is
// one request/response exchange from the adapter's point of view.
func (b *Buffered) fill(off int64) error {
	if err := b.host.Seek(off, io.SeekStart); err != nil {
		return fmt.Errorf("seek host stream to %d: %w", off, err)
	}
	b.refills++

	n := 0
	for n < len(b.store) {
		m, err := b.host.Read(b.store[n:])
		n += m
		if err == io.EOF || (err == nil && m == 0) {
			break
		}
		if err != nil {
			return fmt.Errorf("read host stream at %d: %w", off+int64(n), err)
		}
	}
	b.winStart = off
	b.window = b.store[:n]
	return nil
}

// Seek repositions the read pointer. The resulting position is clamped into
// [0, length]. Seeking touches only local state; no host round-trip happens
// until the next read outside the current window.
func (b *Buffered) Seek(offset int64, whence int) (int64, error) {
	var pos int64
	switch whence {
	case io.SeekStart:
		pos = offset
	case io.SeekCurrent:
		pos = b.pos + offset
	case io.SeekEnd:
		pos = b.length + offset
	default:
		return b.pos, fmt.Errorf("invalid whence %d", whence)
	}
	if pos < 0 {
		pos = 0
	}
	if pos > b.length {
		pos = b.length
	}
	b.pos = pos
	return pos, nil
}

// The write side is unsupported by construction: stream-backed opens exist
// for read-oriented metadata extraction only. Tag libraries probe these
// before attempting in-place rewrites, so they are silent no-ops rather
// than errors.

// WriteBlock is a no-op.
func (b *Buffered) WriteBlock(p []byte) {}

// Insert is a no-op.
func (b *Buffered) Insert(p []byte, start, replace int64) {}

// RemoveBlock is a no-op.
func (b *Buffered) RemoveBlock(start, length int64) {}

// Truncate is a no-op.
func (b *Buffered) Truncate(length int64) {}

// ReadOnly reports true: the adapter never mutates the host stream.
func (b *Buffered) ReadOnly() bool { return true }

// Close releases the adapter. When the host capability is itself closable
// it is closed too; otherwise the host stays owned by the caller.
func (b *Buffered) Close() {
	if c, ok := b.host.(io.Closer); ok {
		_ = c.Close()
	}
	b.window = nil
}
