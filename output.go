package mdv

// Output is a sealed interface for the per-image pipeline result. Every
// ImageBlock produces exactly one Output: either the encoded escape
// sequence, or a textual fallback when any stage failed.
type Output interface {
	output()
}

// EncodedBlock carries a complete inline-image escape sequence ready to be
// written to the terminal.
type EncodedBlock struct {
	Sequence []byte
}

func (EncodedBlock) output() {}

// FallbackBlock carries the placeholder text shown in place of an image
// that could not be loaded, probed, or encoded.
type FallbackBlock struct {
	Text string
}

func (FallbackBlock) output() {}

// Interface compliance checks.
var (
	_ Output = EncodedBlock{}
	_ Output = FallbackBlock{}
)

// Encoder wraps image bytes in a terminal inline-image protocol envelope.
// The plan's target dimensions are declared in the envelope; encoders may
// resample the pixels to the target when the payload would otherwise
// exceed the protocol's escape-sequence length limit.
type Encoder interface {
	Encode(data []byte, plan Plan) ([]byte, error)
}
