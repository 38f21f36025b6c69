// Package tagbridge exposes audio-file metadata through a narrow,
// handle-oriented boundary suitable for embedding in a host process.
//
// tagbridge does not parse audio containers itself. Byte-level work is
// delegated to a tag library supplied as a [tagfile.Opener]; tagbridge owns
// everything built on top of it: the handle registry, the buffered stream
// adapter for host-owned byte sources, format classification, and the codecs
// that flatten each container's native tag representation into uniform rows.
//
// # Quick Start
//
// Open a file once, issue many operations against its handle, close it:
//
//	reg := tagbridge.NewRegistry(litefile.Opener{})
//
//	h, format, err := reg.Open("song.mp3")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer reg.Close(h)
//
//	rows, err := reg.ReadTags(h)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(format, rows.Map()["ARTIST"])
//
// # Handles
//
// A [Handle] is an opaque integer naming one open session. Handles are
// assigned monotonically and never reused for the life of the registry;
// every operation on a closed or never-opened handle fails cleanly with an
// [InvalidHandleError]. Close is an idempotent no-op on unknown handles.
//
// # Rows
//
// Metadata crosses the boundary as ordered [Rows] of (key, value) string
// pairs. Normalized reads flatten the tag library's property bag; raw reads
// render the container's native representation (ID3v2 frames, MP4 items,
// ASF attributes) with sub-discriminators encoded into the key, such as
// "TXXX:description" or "trkn:num". See [Registry.ReadRawTags].
//
// # Streams
//
// Hosts that own their byte sources (network bodies, archive members) open
// handles through [Registry.OpenStream], supplying a [StreamHost]. The
// registry fronts it with a 32 KiB read-ahead adapter so the tag library's
// seek-heavy access patterns cost a handful of round-trips rather than one
// per read.
//
// # Errors
//
// Every operation returns a well-formed result or an error; no input -
// invalid handle, malformed row, out-of-range picture index - aborts the
// process. Absence is not failure: asking for the raw tags of a container
// that has none yields an empty row sequence.
package tagbridge
