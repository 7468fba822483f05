package mdv

import "errors"

// Sentinel errors for per-image failure modes. All of them are recoverable:
// the pipeline converts each into a FallbackBlock and keeps rendering.
// Adapters wrap these with %w so callers can classify with errors.Is.
var (
	// ErrNotFound indicates a local image file does not exist.
	ErrNotFound = errors.New("image file not found")

	// ErrRead indicates a local image file exists but could not be read.
	ErrRead = errors.New("image file unreadable")

	// ErrTimeout indicates a remote fetch exceeded its deadline.
	ErrTimeout = errors.New("image fetch timed out")

	// ErrNetwork indicates a remote fetch failed for a non-timeout reason.
	ErrNetwork = errors.New("image fetch failed")

	// ErrSizeExceeded indicates a remote image exceeded the byte cap.
	ErrSizeExceeded = errors.New("image exceeds size limit")

	// ErrUnsupportedFormat indicates an unrecognized image signature.
	ErrUnsupportedFormat = errors.New("unsupported image format")

	// ErrCorruptHeader indicates dimensions could not be parsed from a
	// recognized format's header.
	ErrCorruptHeader = errors.New("corrupt image header")

	// ErrEncode indicates the protocol envelope could not be produced,
	// typically because the payload exceeds the escape-sequence limit.
	ErrEncode = errors.New("image encoding failed")

	// ErrProtocolUnsupported indicates the terminal does not speak an
	// inline-image protocol, so every image degrades to a fallback.
	ErrProtocolUnsupported = errors.New("inline images unsupported by terminal")
)
