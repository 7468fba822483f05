package mdv

import (
	"bytes"
	"fmt"
	"image"

	// Header-only decoders for DecodeConfig. No full decode happens here.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// Format identifies an image container by its signature bytes.
type Format int

const (
	FormatUnknown Format = iota
	FormatPNG
	FormatJPEG
	FormatGIF
)

// String returns the conventional format name.
func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpeg"
	case FormatGIF:
		return "gif"
	default:
		return "unknown"
	}
}

// Dimensions holds an image's native pixel size and detected format.
type Dimensions struct {
	Width  int
	Height int
	Format Format
}

var signatures = []struct {
	prefix []byte
	format Format
}{
	{[]byte("\x89PNG\r\n\x1a\n"), FormatPNG},
	{[]byte("\xff\xd8\xff"), FormatJPEG},
	{[]byte("GIF87a"), FormatGIF},
	{[]byte("GIF89a"), FormatGIF},
}

// DetectFormat classifies data by its magic bytes against the fixed set of
// supported formats.
func DetectFormat(data []byte) Format {
	for _, s := range signatures {
		if bytes.HasPrefix(data, s.prefix) {
			return s.format
		}
	}
	return FormatUnknown
}

// Probe extracts native pixel dimensions from the image header without
// decoding pixel data. Unrecognized signatures fail with
// ErrUnsupportedFormat; recognized formats whose header cannot be parsed
// fail with ErrCorruptHeader.
func Probe(data []byte) (Dimensions, error) {
	format := DetectFormat(data)
	if format == FormatUnknown {
		return Dimensions{}, fmt.Errorf("probe: %w", ErrUnsupportedFormat)
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Dimensions{}, fmt.Errorf("probe %s: %w", format, ErrCorruptHeader)
	}
	return Dimensions{Width: cfg.Width, Height: cfg.Height, Format: format}, nil
}
