package tagbridge

import (
	"github.com/deluan/tagbridge/internal/types"
	"github.com/deluan/tagbridge/tagfile"
)

// Format is an alias to types.Format, re-exported as public API.
type Format = types.Format

// Re-export all format constants.
const (
	FormatUnknown   = types.FormatUnknown
	FormatMPEG      = types.FormatMPEG
	FormatMP4       = types.FormatMP4
	FormatFLAC      = types.FormatFLAC
	FormatOggVorbis = types.FormatOggVorbis
	FormatOggOpus   = types.FormatOggOpus
	FormatOggFLAC   = types.FormatOggFLAC
	FormatOggSpeex  = types.FormatOggSpeex
	FormatWAV       = types.FormatWAV
	FormatAIFF      = types.FormatAIFF
	FormatASF       = types.FormatASF
	FormatAPE       = types.FormatAPE
	FormatWavPack   = types.FormatWavPack
	FormatDSF       = types.FormatDSF
	FormatDSDIFF    = types.FormatDSDIFF
	FormatTrueAudio = types.FormatTrueAudio
	FormatMPC       = types.FormatMPC
	FormatShorten   = types.FormatShorten
)

// Classify maps the container type a tag library detected to a Format.
func Classify(f tagfile.File) Format {
	return types.Classify(f)
}
