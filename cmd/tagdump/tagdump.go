// Command tagdump prints the metadata tagbridge sees in audio files:
// classified format, technical properties, normalized rows, and optionally
// the container's native tag rows.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/deluan/tagbridge"
	_ "github.com/deluan/tagbridge/litefile"
)

func main() {
	backend := flag.String("backend", "lite", "tag library backend")
	raw := flag.Bool("raw", false, "also dump the container's native tag rows")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: tagdump [-backend name] [-raw] <file>...")
		os.Exit(1)
	}

	opener := tagbridge.Opener(*backend)
	if opener == nil {
		fmt.Fprintf(os.Stderr, "unknown backend %q (registered: %s)\n",
			*backend, strings.Join(tagbridge.Openers(), ", "))
		os.Exit(1)
	}

	reg := tagbridge.NewRegistry(opener)
	defer reg.CloseAll()

	exit := 0
	for _, path := range flag.Args() {
		if err := dump(reg, path, *raw); err != nil {
			fmt.Fprintf(os.Stderr, "tagdump: %v\n", err)
			exit = 1
		}
	}
	os.Exit(exit)
}

func dump(reg *tagbridge.Registry, path string, raw bool) error {
	h, format, err := reg.Open(path)
	if err != nil {
		return err
	}
	defer reg.Close(h)

	fmt.Printf("%s: %s\n", path, format)

	props, err := reg.ReadProperties(h)
	switch {
	case err == nil:
		fmt.Printf("  length=%s channels=%d samplerate=%d bitrate=%dkbps",
			props.Length, props.Channels, props.SampleRate, props.Bitrate)
		if props.Codec != "" {
			fmt.Printf(" codec=%s", props.Codec)
		}
		if len(props.Images) > 0 {
			fmt.Printf(" images=%d", len(props.Images))
		}
		fmt.Println()
	case !errors.Is(err, tagbridge.ErrNoAudioProperties):
		return err
	}

	rows, err := reg.ReadTags(h)
	if err != nil {
		return err
	}
	for _, row := range rows {
		fmt.Printf("  %s=%s\n", row.Key, row.Value)
	}

	if raw {
		rows, err := reg.ReadRawTags(h)
		if err != nil {
			return err
		}
		fmt.Println("  -- raw --")
		for _, row := range rows {
			fmt.Printf("  %s=%q\n", row.Key, row.Value)
		}
	}
	return nil
}
