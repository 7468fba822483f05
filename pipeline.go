package mdv

import (
	"context"
	"io"

	"golang.org/x/sync/errgroup"
)

// Pipeline orchestrates one render pass: it walks the renderer's block
// sequence, passes text through, and resolves each image placeholder into
// exactly one output block — the encoded escape sequence on success, a
// textual fallback on any failure. Blocks are emitted in document order.
type Pipeline struct {
	renderer    Renderer
	loader      Loader
	encoder     Encoder
	geo         Geometry
	baseDir     string
	concurrency int
	disabled    bool
	fallback    func(alt, ref string) string
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithBaseDir sets the directory relative image references resolve
// against, typically the markdown file's directory.
func WithBaseDir(dir string) Option {
	return func(p *Pipeline) { p.baseDir = dir }
}

// WithConcurrency sets the number of remote fetches issued in parallel
// ahead of emission. Values below 2 keep the pipeline fully sequential.
func WithConcurrency(n int) Option {
	return func(p *Pipeline) { p.concurrency = n }
}

// WithImagesDisabled forces every image to the fallback path without
// loading anything. Used when the terminal lacks inline-image support.
func WithImagesDisabled() Option {
	return func(p *Pipeline) { p.disabled = true }
}

// WithFallbackFormat sets the formatter for fallback placeholder text.
// The default is "[image: <alt or reference>]".
func WithFallbackFormat(f func(alt, ref string) string) Option {
	return func(p *Pipeline) { p.fallback = f }
}

// New creates a Pipeline bound to one render pass's geometry.
func New(renderer Renderer, loader Loader, encoder Encoder, geo Geometry, opts ...Option) *Pipeline {
	p := &Pipeline{
		renderer:    renderer,
		loader:      loader,
		encoder:     encoder,
		geo:         geo,
		concurrency: 1,
		fallback:    defaultFallback,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func defaultFallback(alt, ref string) string {
	label := alt
	if label == "" {
		label = ref
	}
	return "[image: " + label + "]"
}

// Run renders the markdown source to w. Per-image failures degrade to
// fallback text and never abort the pass; the only errors returned are
// write failures and context cancellation.
func (p *Pipeline) Run(ctx context.Context, source string, w io.Writer) error {
	blocks := p.renderer.Render(source, p.geo.Columns)
	prefetched := p.prefetch(ctx, blocks)

	for i, block := range blocks {
		if err := ctx.Err(); err != nil {
			return err
		}
		switch b := block.(type) {
		case TextBlock:
			if err := writeLine(w, []byte(b.ANSI)); err != nil {
				return err
			}
		case ImageBlock:
			switch out := p.resolveImage(ctx, b, prefetched[i]).(type) {
			case EncodedBlock:
				if err := writeLine(w, out.Sequence); err != nil {
					return err
				}
			case FallbackBlock:
				if err := writeLine(w, []byte(out.Text)); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func writeLine(w io.Writer, b []byte) error {
	if _, err := w.Write(b); err != nil {
		return err
	}
	_, err := w.Write([]byte("\n"))
	return err
}

// resolveImage runs resolve → load → probe → plan → encode for one image
// placeholder. Any stage failure yields the fallback block.
func (p *Pipeline) resolveImage(ctx context.Context, b ImageBlock, pre *fetchResult) Output {
	if p.encoder == nil || p.disabled {
		return FallbackBlock{Text: p.fallback(b.Alt, b.Reference)}
	}

	var data []byte
	var err error
	if pre != nil {
		data, err = pre.data, pre.err
	} else {
		data, err = p.loader.Load(ctx, ResolveSource(b.Reference, p.baseDir))
	}
	if err != nil {
		return FallbackBlock{Text: p.fallback(b.Alt, b.Reference)}
	}

	dims, err := Probe(data)
	if err != nil {
		return FallbackBlock{Text: p.fallback(b.Alt, b.Reference)}
	}

	seq, err := p.encoder.Encode(data, PlanRender(dims.Width, dims.Height, p.geo))
	if err != nil {
		return FallbackBlock{Text: p.fallback(b.Alt, b.Reference)}
	}
	return EncodedBlock{Sequence: seq}
}

type fetchResult struct {
	data []byte
	err  error
}

// prefetch issues remote fetches concurrently ahead of the emission pass,
// keyed by block index so emission stays in document order. Local reads
// are cheap and stay on the sequential path. Individual fetch failures are
// recorded in their slot, never propagated to the group: one bad image
// must not cancel the others.
func (p *Pipeline) prefetch(ctx context.Context, blocks []Block) map[int]*fetchResult {
	if p.concurrency < 2 || p.encoder == nil || p.disabled {
		return nil
	}

	results := make(map[int]*fetchResult)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)

	for i, block := range blocks {
		img, ok := block.(ImageBlock)
		if !ok {
			continue
		}
		src := ResolveSource(img.Reference, p.baseDir)
		if src.Kind != SourceRemote {
			continue
		}
		r := &fetchResult{}
		results[i] = r
		g.Go(func() error {
			r.data, r.err = p.loader.Load(ctx, src)
			return nil
		})
	}

	// Each goroutine writes only its own slot; Wait establishes the
	// happens-before edge for the emission pass.
	_ = g.Wait()
	return results
}
