// Package mock provides test doubles for mdv interfaces using function fields.
package mock

import (
	"context"

	"github.com/fwojciec/mdv"
)

// Interface compliance checks.
var (
	_ mdv.Renderer = (*Renderer)(nil)
	_ mdv.Loader   = (*Loader)(nil)
	_ mdv.Encoder  = (*Encoder)(nil)
)

// Renderer is a test double for mdv.Renderer.
// Set RenderFn before calling Render.
type Renderer struct {
	RenderFn func(source string, width int) []mdv.Block
}

// Render delegates to RenderFn.
func (r *Renderer) Render(source string, width int) []mdv.Block {
	return r.RenderFn(source, width)
}

// Loader is a test double for mdv.Loader.
// Set LoadFn before calling Load.
type Loader struct {
	LoadFn func(ctx context.Context, src mdv.Source) ([]byte, error)
}

// Load delegates to LoadFn.
func (l *Loader) Load(ctx context.Context, src mdv.Source) ([]byte, error) {
	return l.LoadFn(ctx, src)
}

// Encoder is a test double for mdv.Encoder.
// Set EncodeFn before calling Encode.
type Encoder struct {
	EncodeFn func(data []byte, plan mdv.Plan) ([]byte, error)
}

// Encode delegates to EncodeFn.
func (e *Encoder) Encode(data []byte, plan mdv.Plan) ([]byte, error) {
	return e.EncodeFn(data, plan)
}
