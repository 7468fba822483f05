package mdv

import (
	"context"
	"path/filepath"
	"regexp"
)

// SourceKind classifies an image reference.
type SourceKind int

const (
	SourceLocal  SourceKind = iota // filesystem path
	SourceRemote                   // URL with a scheme
)

// String returns the kind name for diagnostics.
func (k SourceKind) String() string {
	if k == SourceRemote {
		return "remote"
	}
	return "local"
}

// Source is a resolved image reference. For local references Path holds the
// reference joined to the document's directory; Raw always holds the text
// as authored.
type Source struct {
	Raw  string
	Kind SourceKind
	Path string
}

var schemeRE = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*://`)

// ResolveSource classifies a raw reference string. Anything starting with a
// URL scheme is remote; everything else is a local path, with relative
// paths resolved against baseDir. Resolution never fails: unclassifiable
// strings become local paths whose load fails cleanly.
func ResolveSource(raw, baseDir string) Source {
	if schemeRE.MatchString(raw) {
		return Source{Raw: raw, Kind: SourceRemote}
	}
	path := raw
	if baseDir != "" && !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}
	return Source{Raw: raw, Kind: SourceLocal, Path: path}
}

// Loader produces raw image bytes for a resolved source. Remote loads are
// bounded by a timeout and a byte cap; cancellation flows through ctx.
type Loader interface {
	Load(ctx context.Context, src Source) ([]byte, error)
}
