// Package fetch loads image bytes for resolved sources: local files read
// from disk, remote URLs fetched over HTTP with a bounded timeout and a
// byte-size cap.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"time"

	"github.com/fwojciec/mdv"
)

// Interface compliance check.
var _ mdv.Loader = (*Loader)(nil)

const (
	// DefaultTimeout bounds one remote fetch end to end, body included.
	DefaultTimeout = 10 * time.Second

	// DefaultMaxBytes caps how much image data one fetch may return.
	DefaultMaxBytes = 16 << 20 // 16 MiB

	defaultUserAgent = "mdv/0.2"
)

// Loader implements [mdv.Loader].
type Loader struct {
	httpClient *http.Client
	timeout    time.Duration
	maxBytes   int64
	userAgent  string
}

// Option configures a [Loader].
type Option func(*Loader)

// WithTimeout sets the hard upper bound on one remote fetch.
func WithTimeout(d time.Duration) Option {
	return func(l *Loader) { l.timeout = d }
}

// WithMaxBytes sets the remote image size cap in bytes.
func WithMaxBytes(n int64) Option {
	return func(l *Loader) { l.maxBytes = n }
}

// WithHTTPClient sets a custom HTTP client. Useful for testing with httptest.
func WithHTTPClient(hc *http.Client) Option {
	return func(l *Loader) { l.httpClient = hc }
}

// WithUserAgent sets the User-Agent header sent with remote fetches.
func WithUserAgent(ua string) Option {
	return func(l *Loader) { l.userAgent = ua }
}

// New creates a Loader with the given options.
func New(opts ...Option) *Loader {
	l := &Loader{
		httpClient: http.DefaultClient,
		timeout:    DefaultTimeout,
		maxBytes:   DefaultMaxBytes,
		userAgent:  defaultUserAgent,
	}
	for _, o := range opts {
		o(l)
	}
	return l
}

// Load returns the raw bytes for src. Failures are wrapped sentinel errors
// from the mdv package, classifiable with errors.Is.
func (l *Loader) Load(ctx context.Context, src mdv.Source) ([]byte, error) {
	if src.Kind == mdv.SourceRemote {
		return l.loadRemote(ctx, src)
	}
	return l.loadFile(src)
}

func (l *Loader) loadFile(src mdv.Source) ([]byte, error) {
	data, err := os.ReadFile(src.Path)
	switch {
	case err == nil:
		return data, nil
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("fetch %s: %w", src.Raw, mdv.ErrNotFound)
	default:
		return nil, fmt.Errorf("fetch %s: %v: %w", src.Raw, err, mdv.ErrRead)
	}
}

func (l *Loader) loadRemote(ctx context.Context, src mdv.Source) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.Raw, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %v: %w", src.Raw, err, mdv.ErrNetwork)
	}
	req.Header.Set("User-Agent", l.userAgent)

	resp, err := l.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("fetch %s: %w", src.Raw, mdv.ErrTimeout)
		}
		return nil, fmt.Errorf("fetch %s: %v: %w", src.Raw, err, mdv.ErrNetwork)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: status %s: %w", src.Raw, resp.Status, mdv.ErrNetwork)
	}

	// Read one byte past the cap so exactly-at-cap images pass.
	data, err := io.ReadAll(io.LimitReader(resp.Body, l.maxBytes+1))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("fetch %s: %w", src.Raw, mdv.ErrTimeout)
		}
		return nil, fmt.Errorf("fetch %s: %v: %w", src.Raw, err, mdv.ErrNetwork)
	}
	if int64(len(data)) > l.maxBytes {
		return nil, fmt.Errorf("fetch %s: body over %d bytes: %w", src.Raw, l.maxBytes, mdv.ErrSizeExceeded)
	}
	return data, nil
}
