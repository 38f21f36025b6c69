package tagbridge

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/deluan/tagbridge/internal/bytesource"
	"github.com/deluan/tagbridge/internal/types"
	"github.com/deluan/tagbridge/tagfile"
)

// Handle is an opaque identifier for one open session. Handles are assigned
// monotonically starting at 1 and are never reused for the life of the
// registry; 0 is the invalid sentinel.
type Handle uint32

// InvalidHandle is the zero Handle. It is never present in a registry.
const InvalidHandle Handle = 0

// StreamHost is an alias to the host-stream capability consumed by
// OpenStream: four operations - read, seek, tell, length - over a byte
// source the host owns. Each may be remote and latency-bearing; the
// registry fronts it with a buffered adapter.
type StreamHost = bytesource.Host

// FromReadSeeker wraps an in-process io.ReadSeeker as a StreamHost.
var FromReadSeeker = bytesource.FromReadSeeker

// session is one registry entry. It owns the tag-library file object and,
// for stream-backed opens, the buffered adapter.
type session struct {
	file     tagfile.File
	stream   *bytesource.Buffered // nil for path-backed opens
	format   Format
	readOnly bool
}

// writable returns an UnsupportedWriteError when the session was opened
// read-only. Write operations call it before touching the tag library.
func (s *session) writable() error {
	if s.readOnly {
		return &types.UnsupportedWriteError{Format: s.format, Reason: "handle opened read-only"}
	}
	return nil
}

// Registry maps handles to open tag-library sessions.
//
// A Registry is an explicitly owned object rather than process state:
// create as many as needed, each with its own opener, and tests get
// independent registries for free. All methods are safe for concurrent use
// across different handles; concurrent operations on the same handle are
// not supported.
type Registry struct {
	opener   tagfile.Opener
	style    tagfile.ReadStyle
	log      *slog.Logger
	readOnly bool

	mu       sync.Mutex
	next     uint32
	sessions map[Handle]*session
}

// NewRegistry creates a registry that opens files through opener.
//
// Example:
//
//	reg := tagbridge.NewRegistry(litefile.Opener{},
//	    tagbridge.WithReadStyle(tagbridge.ReadStyleAccurate),
//	)
func NewRegistry(opener tagfile.Opener, opts ...Option) *Registry {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &Registry{
		opener:   opener,
		style:    o.style,
		log:      o.logger,
		readOnly: o.readOnly,
		next:     uint32(InvalidHandle) + 1,
		sessions: make(map[Handle]*session),
	}
}

// openOptions resolves per-call options against the registry defaults.
func (r *Registry) openOptions(opts []Option) *options {
	o := &options{style: r.style, logger: r.log, readOnly: r.readOnly}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Open opens the file at path, classifies its format, and returns a new
// handle for it. The handle stays valid until Close.
func (r *Registry) Open(path string, opts ...Option) (Handle, Format, error) {
	o := r.openOptions(opts)

	f, err := r.opener.Open(path, o.style)
	if err != nil {
		return InvalidHandle, FormatUnknown, fmt.Errorf("open %s: %w", path, err)
	}

	h, format := r.store(f, nil, o.readOnly)
	r.log.Debug("opened file", "handle", uint32(h), "path", path, "format", format.String())
	return h, format, nil
}

// OpenStream opens a file over a host-owned stream.
//
// The host capability is wrapped in a buffered read-only adapter before the
// tag library sees it; name is the virtual file name, used by libraries
// that take extension hints. The returned handle owns the adapter and
// releases it on Close, independently of the file object. If the tag
// library rejects the stream, both are released before returning.
func (r *Registry) OpenStream(host StreamHost, name string, opts ...Option) (Handle, Format, error) {
	o := r.openOptions(opts)

	src, err := bytesource.New(host, name)
	if err != nil {
		return InvalidHandle, FormatUnknown, fmt.Errorf("open stream %s: %w", name, err)
	}

	f, err := r.opener.OpenStream(src, o.style)
	if err != nil {
		src.Close()
		return InvalidHandle, FormatUnknown, fmt.Errorf("open stream %s: %w", name, err)
	}

	h, format := r.store(f, src, o.readOnly)
	r.log.Debug("opened stream", "handle", uint32(h), "name", name, "format", format.String())
	return h, format, nil
}

// store classifies f, assigns the next handle, and inserts the session.
func (r *Registry) store(f tagfile.File, src *bytesource.Buffered, readOnly bool) (Handle, Format) {
	format := types.Classify(f)

	r.mu.Lock()
	h := Handle(r.next)
	r.next++
	r.sessions[h] = &session{file: f, stream: src, format: format, readOnly: readOnly}
	r.mu.Unlock()

	return h, format
}

// Close releases the session behind h: the tag-library file object first,
// then the stream adapter if the handle owns one. Closing an unknown or
// already-closed handle is a silent no-op.
func (r *Registry) Close(h Handle) {
	r.mu.Lock()
	s, ok := r.sessions[h]
	if ok {
		delete(r.sessions, h)
	}
	r.mu.Unlock()

	if !ok {
		return
	}
	_ = s.file.Close()
	if s.stream != nil {
		s.stream.Close()
	}
	r.log.Debug("closed handle", "handle", uint32(h))
}

// CloseAll closes every open handle. Useful at registry teardown.
func (r *Registry) CloseAll() {
	r.mu.Lock()
	sessions := r.sessions
	r.sessions = make(map[Handle]*session)
	r.mu.Unlock()

	for _, s := range sessions {
		_ = s.file.Close()
		if s.stream != nil {
			s.stream.Close()
		}
	}
}

// Len reports the number of open handles.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// lookup returns the session behind h, or a typed error for absent handles.
func (r *Registry) lookup(h Handle) (*session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[h]
	if !ok {
		return nil, &types.InvalidHandleError{Handle: uint32(h)}
	}
	return s, nil
}

// OpenMany opens multiple files concurrently, up to runtime.NumCPU() at a
// time, and returns their handles in input order.
//
// If any open fails, every handle already opened by this call is closed
// and the first error is returned.
func (r *Registry) OpenMany(ctx context.Context, paths ...string) ([]Handle, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	handles := make([]Handle, len(paths))
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			h, _, err := r.Open(path)
			if err != nil {
				return err
			}
			handles[i] = h
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		for _, h := range handles {
			if h != InvalidHandle {
				r.Close(h)
			}
		}
		return nil, err
	}
	return handles, nil
}
