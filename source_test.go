package mdv_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fwojciec/mdv"
)

func TestResolveSource(t *testing.T) {
	t.Parallel()

	t.Run("http URL is remote", func(t *testing.T) {
		t.Parallel()
		src := mdv.ResolveSource("http://example.com/a.png", "/docs")
		assert.Equal(t, mdv.SourceRemote, src.Kind)
		assert.Equal(t, "http://example.com/a.png", src.Raw)
	})

	t.Run("https URL is remote", func(t *testing.T) {
		t.Parallel()
		src := mdv.ResolveSource("https://example.com/a.png", "")
		assert.Equal(t, mdv.SourceRemote, src.Kind)
	})

	t.Run("any scheme is remote", func(t *testing.T) {
		t.Parallel()
		src := mdv.ResolveSource("ftp://example.com/a.png", "")
		assert.Equal(t, mdv.SourceRemote, src.Kind)
	})

	t.Run("relative path joins base dir", func(t *testing.T) {
		t.Parallel()
		src := mdv.ResolveSource("images/a.png", "/docs")
		assert.Equal(t, mdv.SourceLocal, src.Kind)
		assert.Equal(t, filepath.Join("/docs", "images", "a.png"), src.Path)
		assert.Equal(t, "images/a.png", src.Raw)
	})

	t.Run("absolute path ignores base dir", func(t *testing.T) {
		t.Parallel()
		abs := filepath.Join(string(filepath.Separator), "tmp", "a.png")
		src := mdv.ResolveSource(abs, "/docs")
		assert.Equal(t, mdv.SourceLocal, src.Kind)
		assert.Equal(t, abs, src.Path)
	})

	t.Run("empty base dir keeps path as-is", func(t *testing.T) {
		t.Parallel()
		src := mdv.ResolveSource("a.png", "")
		assert.Equal(t, "a.png", src.Path)
	})

	t.Run("unclassifiable string defaults to local", func(t *testing.T) {
		t.Parallel()
		src := mdv.ResolveSource("://weird", "")
		assert.Equal(t, mdv.SourceLocal, src.Kind)
	})
}

func TestSourceKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "local", mdv.SourceLocal.String())
	assert.Equal(t, "remote", mdv.SourceRemote.String())
}
