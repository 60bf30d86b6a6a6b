package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 40, B: 40, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestProcessDownscales(t *testing.T) {
	p := New(100)
	out, err := p.Process("wallet.png", pngBytes(t, 400, 200))
	require.NoError(t, err)

	assert.Equal(t, MIMEJPEG, out.MIME)
	assert.Equal(t, "wallet.jpg", out.Filename)
	assert.Equal(t, 100, out.Width)
	assert.Equal(t, 50, out.Height)

	cfg, format, err := image.DecodeConfig(bytes.NewReader(out.Data))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 100, cfg.Width)
}

func TestProcessKeepsSmallImages(t *testing.T) {
	out, err := New(0).Process("", pngBytes(t, 30, 60))
	require.NoError(t, err)
	assert.Equal(t, 30, out.Width)
	assert.Equal(t, 60, out.Height)
	assert.Equal(t, "photo.jpg", out.Filename)
}

func TestProcessRejectsOtherFormats(t *testing.T) {
	_, err := New(0).Process("notes.txt", []byte("just some text"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
