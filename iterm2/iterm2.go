// Package iterm2 encodes images into the iTerm2 inline-image escape
// sequence: an OSC 1337 File control sequence carrying metadata key-value
// pairs and a base64 payload, terminated with BEL.
//
// https://iterm2.com/documentation-images.html
package iterm2

import (
	"bytes"
	"encoding/base64"
	"fmt"

	"github.com/fwojciec/mdv"
)

// Interface compliance check.
var _ mdv.Encoder = (*Encoder)(nil)

const (
	osc = "\x1b]1337;File="
	st  = "\a"

	// DefaultMaxPayload caps the base64 payload of one escape sequence.
	// iTerm2 buffers the whole sequence before drawing, so unbounded
	// payloads can wedge the terminal.
	DefaultMaxPayload = 8 << 20 // 8 MiB
)

// Encoder implements [mdv.Encoder] for the iTerm2 protocol.
//
// Scaling is declarative by default: the envelope's width/height keys are
// pixel hints the terminal applies itself, so the original bytes travel
// unmodified. When the payload would exceed the sequence cap, or when
// resampling is forced, the image is resampled to the plan's target
// dimensions before encoding.
type Encoder struct {
	maxPayload int
	resample   bool
}

// Option configures an [Encoder].
type Option func(*Encoder)

// WithMaxPayload sets the base64 payload cap in bytes.
func WithMaxPayload(n int) Option {
	return func(e *Encoder) { e.maxPayload = n }
}

// WithResample forces client-side resampling whenever the plan scales,
// for terminals that ignore sizing hints.
func WithResample(on bool) Option {
	return func(e *Encoder) { e.resample = on }
}

// New creates an Encoder with the given options.
func New(opts ...Option) *Encoder {
	e := &Encoder{maxPayload: DefaultMaxPayload}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Encode wraps data in the inline-image envelope, declaring the plan's
// target dimensions. The payload base64-decodes to exactly the bytes
// encoded, original or resampled.
func (e *Encoder) Encode(data []byte, plan mdv.Plan) ([]byte, error) {
	payload := data
	resampled := false

	if e.resample && !plan.Fits {
		p, err := resample(data, plan.TargetWidth, plan.TargetHeight)
		if err != nil {
			return nil, fmt.Errorf("iterm2: resample: %v: %w", err, mdv.ErrEncode)
		}
		payload = p
		resampled = true
	}

	if base64.StdEncoding.EncodedLen(len(payload)) > e.maxPayload {
		if resampled || plan.Fits {
			return nil, fmt.Errorf("iterm2: payload over %d bytes: %w", e.maxPayload, mdv.ErrEncode)
		}
		// Declarative hints alone would ship an oversized payload;
		// resample down to the target and retry once.
		p, err := resample(data, plan.TargetWidth, plan.TargetHeight)
		if err != nil {
			return nil, fmt.Errorf("iterm2: resample: %v: %w", err, mdv.ErrEncode)
		}
		payload = p
		if base64.StdEncoding.EncodedLen(len(payload)) > e.maxPayload {
			return nil, fmt.Errorf("iterm2: payload over %d bytes: %w", e.maxPayload, mdv.ErrEncode)
		}
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%sinline=1;size=%d;width=%dpx;height=%dpx;preserveAspectRatio=1:",
		osc, len(payload), plan.TargetWidth, plan.TargetHeight)

	enc := base64.NewEncoder(base64.StdEncoding, &buf)
	if _, err := enc.Write(payload); err != nil {
		return nil, fmt.Errorf("iterm2: %v: %w", err, mdv.ErrEncode)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("iterm2: %v: %w", err, mdv.ErrEncode)
	}

	buf.WriteString(st)
	return buf.Bytes(), nil
}
