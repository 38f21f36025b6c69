package types

import (
	"github.com/deluan/tagbridge/tagfile"
)

// Format represents the container format of an open handle.
//
// The format is fixed at open time from the concrete container type the tag
// library detected, and drives dispatch to the raw-tag codecs.
type Format int

const (
	// FormatUnknown represents an unknown or unsupported container.
	FormatUnknown Format = iota
	// FormatMPEG represents MPEG audio (MP3) with ID3 tags.
	FormatMPEG
	// FormatMP4 represents MP4/M4A containers.
	FormatMP4
	// FormatFLAC represents native FLAC files.
	FormatFLAC
	// FormatOggVorbis represents Vorbis in an Ogg container.
	FormatOggVorbis
	// FormatOggOpus represents Opus in an Ogg container.
	FormatOggOpus
	// FormatOggFLAC represents FLAC in an Ogg container.
	FormatOggFLAC
	// FormatOggSpeex represents Speex in an Ogg container.
	FormatOggSpeex
	// FormatWAV represents RIFF WAV files.
	FormatWAV
	// FormatAIFF represents AIFF files.
	FormatAIFF
	// FormatASF represents ASF/WMA files.
	FormatASF
	// FormatAPE represents Monkey's Audio files.
	FormatAPE
	// FormatWavPack represents WavPack files.
	FormatWavPack
	// FormatDSF represents DSD stream files.
	FormatDSF
	// FormatDSDIFF represents DSDIFF files.
	FormatDSDIFF
	// FormatTrueAudio represents TrueAudio files.
	FormatTrueAudio
	// FormatMPC represents Musepack files.
	FormatMPC
	// FormatShorten represents Shorten files.
	FormatShorten
)

// String returns the human-readable format name.
func (f Format) String() string {
	switch f {
	case FormatMPEG:
		return "MPEG"
	case FormatMP4:
		return "MP4"
	case FormatFLAC:
		return "FLAC"
	case FormatOggVorbis:
		return "Ogg Vorbis"
	case FormatOggOpus:
		return "Ogg Opus"
	case FormatOggFLAC:
		return "Ogg FLAC"
	case FormatOggSpeex:
		return "Ogg Speex"
	case FormatWAV:
		return "WAV"
	case FormatAIFF:
		return "AIFF"
	case FormatASF:
		return "ASF"
	case FormatAPE:
		return "APE"
	case FormatWavPack:
		return "WavPack"
	case FormatDSF:
		return "DSF"
	case FormatDSDIFF:
		return "DSDIFF"
	case FormatTrueAudio:
		return "TrueAudio"
	case FormatMPC:
		return "MPC"
	case FormatShorten:
		return "Shorten"
	default:
		return "Unknown"
	}
}

// Classify maps the container type a tag library detected to a Format.
//
// Classification happens exactly once, when a handle is opened. The mapping
// is a closed, deterministic table: container types are mutually exclusive,
// and anything the table does not know collapses to FormatUnknown.
func Classify(f tagfile.File) Format {
	switch f.Container() {
	case tagfile.ContainerMPEG:
		return FormatMPEG
	case tagfile.ContainerMP4:
		return FormatMP4
	case tagfile.ContainerFLAC:
		return FormatFLAC
	case tagfile.ContainerOggVorbis:
		return FormatOggVorbis
	case tagfile.ContainerOggOpus:
		return FormatOggOpus
	case tagfile.ContainerOggFLAC:
		return FormatOggFLAC
	case tagfile.ContainerOggSpeex:
		return FormatOggSpeex
	case tagfile.ContainerWAV:
		return FormatWAV
	case tagfile.ContainerAIFF:
		return FormatAIFF
	case tagfile.ContainerASF:
		return FormatASF
	case tagfile.ContainerAPE:
		return FormatAPE
	case tagfile.ContainerWavPack:
		return FormatWavPack
	case tagfile.ContainerDSF:
		return FormatDSF
	case tagfile.ContainerDSDIFF:
		return FormatDSDIFF
	case tagfile.ContainerTrueAudio:
		return FormatTrueAudio
	case tagfile.ContainerMPC:
		return FormatMPC
	case tagfile.ContainerShorten:
		return FormatShorten
	default:
		return FormatUnknown
	}
}
