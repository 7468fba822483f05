package mdv_test

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/mdv"
)

func testImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	return img
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, testImage(w, h)))
	return buf.Bytes()
}

func jpegBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, testImage(w, h), nil))
	return buf.Bytes()
}

func gifBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, gif.Encode(&buf, testImage(w, h), nil))
	return buf.Bytes()
}

func TestProbe(t *testing.T) {
	t.Parallel()

	t.Run("png dimensions", func(t *testing.T) {
		t.Parallel()
		dims, err := mdv.Probe(pngBytes(t, 120, 45))
		require.NoError(t, err)
		assert.Equal(t, 120, dims.Width)
		assert.Equal(t, 45, dims.Height)
		assert.Equal(t, mdv.FormatPNG, dims.Format)
	})

	t.Run("jpeg dimensions", func(t *testing.T) {
		t.Parallel()
		dims, err := mdv.Probe(jpegBytes(t, 64, 32))
		require.NoError(t, err)
		assert.Equal(t, 64, dims.Width)
		assert.Equal(t, 32, dims.Height)
		assert.Equal(t, mdv.FormatJPEG, dims.Format)
	})

	t.Run("gif dimensions", func(t *testing.T) {
		t.Parallel()
		dims, err := mdv.Probe(gifBytes(t, 10, 20))
		require.NoError(t, err)
		assert.Equal(t, 10, dims.Width)
		assert.Equal(t, 20, dims.Height)
		assert.Equal(t, mdv.FormatGIF, dims.Format)
	})

	t.Run("unknown signature", func(t *testing.T) {
		t.Parallel()
		_, err := mdv.Probe([]byte("<html>not an image</html>"))
		assert.ErrorIs(t, err, mdv.ErrUnsupportedFormat)
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()
		_, err := mdv.Probe(nil)
		assert.ErrorIs(t, err, mdv.ErrUnsupportedFormat)
	})

	t.Run("valid signature with truncated header", func(t *testing.T) {
		t.Parallel()
		data := pngBytes(t, 10, 10)[:12]
		_, err := mdv.Probe(data)
		assert.ErrorIs(t, err, mdv.ErrCorruptHeader)
	})
}

func TestDetectFormat(t *testing.T) {
	t.Parallel()

	assert.Equal(t, mdv.FormatPNG, mdv.DetectFormat(pngBytes(t, 1, 1)))
	assert.Equal(t, mdv.FormatJPEG, mdv.DetectFormat(jpegBytes(t, 1, 1)))
	assert.Equal(t, mdv.FormatGIF, mdv.DetectFormat(gifBytes(t, 1, 1)))
	assert.Equal(t, mdv.FormatUnknown, mdv.DetectFormat([]byte("GIF")))
	assert.Equal(t, mdv.FormatUnknown, mdv.DetectFormat(nil))
}

func TestFormat_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "png", mdv.FormatPNG.String())
	assert.Equal(t, "jpeg", mdv.FormatJPEG.String())
	assert.Equal(t, "gif", mdv.FormatGIF.String())
	assert.Equal(t, "unknown", mdv.FormatUnknown.String())
}
