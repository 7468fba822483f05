package fetch_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/mdv"
	"github.com/fwojciec/mdv/fetch"
)

func TestLoader_Local(t *testing.T) {
	t.Parallel()

	t.Run("reads an existing file", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		want := []byte("image bytes")
		require.NoError(t, os.WriteFile(filepath.Join(dir, "a.png"), want, 0o644))

		l := fetch.New()
		got, err := l.Load(context.Background(), mdv.ResolveSource("a.png", dir))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("missing file fails with not found", func(t *testing.T) {
		t.Parallel()
		l := fetch.New()
		_, err := l.Load(context.Background(), mdv.ResolveSource("nope.png", t.TempDir()))
		assert.ErrorIs(t, err, mdv.ErrNotFound)
	})

	t.Run("directory fails with read error", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

		l := fetch.New()
		_, err := l.Load(context.Background(), mdv.ResolveSource("sub", dir))
		assert.ErrorIs(t, err, mdv.ErrRead)
	})
}

func TestLoader_Remote(t *testing.T) {
	t.Parallel()

	t.Run("fetches bytes and sends user agent", func(t *testing.T) {
		t.Parallel()
		var gotUA string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
			_, _ = w.Write([]byte("payload"))
		}))
		defer srv.Close()

		l := fetch.New(fetch.WithUserAgent("mdv/test"))
		got, err := l.Load(context.Background(), mdv.ResolveSource(srv.URL+"/a.png", ""))
		require.NoError(t, err)
		assert.Equal(t, []byte("payload"), got)
		assert.Equal(t, "mdv/test", gotUA)
	})

	t.Run("non-200 status fails with network error", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}))
		defer srv.Close()

		l := fetch.New()
		_, err := l.Load(context.Background(), mdv.ResolveSource(srv.URL+"/a.png", ""))
		assert.ErrorIs(t, err, mdv.ErrNetwork)
	})

	t.Run("slow server fails with timeout", func(t *testing.T) {
		t.Parallel()
		release := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-release
		}))
		defer srv.Close()
		defer close(release)

		l := fetch.New(fetch.WithTimeout(50 * time.Millisecond))
		start := time.Now()
		_, err := l.Load(context.Background(), mdv.ResolveSource(srv.URL+"/a.png", ""))
		assert.ErrorIs(t, err, mdv.ErrTimeout)
		// The fetch must respect its deadline, not hang.
		assert.Less(t, time.Since(start), 2*time.Second)
	})

	t.Run("body over the cap fails with size exceeded", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write(bytes.Repeat([]byte("x"), 2048))
		}))
		defer srv.Close()

		l := fetch.New(fetch.WithMaxBytes(1024))
		_, err := l.Load(context.Background(), mdv.ResolveSource(srv.URL+"/a.png", ""))
		assert.ErrorIs(t, err, mdv.ErrSizeExceeded)
	})

	t.Run("body exactly at the cap passes", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write(bytes.Repeat([]byte("x"), 1024))
		}))
		defer srv.Close()

		l := fetch.New(fetch.WithMaxBytes(1024))
		got, err := l.Load(context.Background(), mdv.ResolveSource(srv.URL+"/a.png", ""))
		require.NoError(t, err)
		assert.Len(t, got, 1024)
	})

	t.Run("unreachable host fails with network error", func(t *testing.T) {
		t.Parallel()
		l := fetch.New(fetch.WithTimeout(2 * time.Second))
		_, err := l.Load(context.Background(), mdv.ResolveSource("http://127.0.0.1:1/a.png", ""))
		assert.ErrorIs(t, err, mdv.ErrNetwork)
	})

	t.Run("cancelled context aborts the fetch", func(t *testing.T) {
		t.Parallel()
		release := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-release
		}))
		defer srv.Close()
		defer close(release)

		ctx, cancel := context.WithCancel(context.Background())
		go func() {
			time.Sleep(20 * time.Millisecond)
			cancel()
		}()

		l := fetch.New()
		start := time.Now()
		_, err := l.Load(ctx, mdv.ResolveSource(srv.URL+"/a.png", ""))
		assert.Error(t, err)
		assert.Less(t, time.Since(start), 2*time.Second)
	})
}
