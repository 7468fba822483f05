package iterm2

import (
	"bytes"

	"github.com/disintegration/imaging"
)

// resample decodes data, resizes it to width x height with Lanczos
// filtering, and re-encodes it as PNG. The plan already preserved aspect
// ratio, so both dimensions are passed through as-is.
func resample(data []byte, width, height int) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	img = imaging.Resize(img, width, height, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
