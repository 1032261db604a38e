package pdfs

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitBox(t *testing.T) {
	// already inside the box: untouched
	w, h := FitBox(100, 40, 150, 54)
	assert.Equal(t, 100.0, w)
	assert.Equal(t, 40.0, h)

	// wide image pinned by width
	w, h = FitBox(300, 60, 150, 54)
	assert.Equal(t, 150.0, w)
	assert.Equal(t, 30.0, h)

	// tall image pinned by height
	w, h = FitBox(60, 300, 150, 54)
	assert.InDelta(t, 10.8, w, 0.001)
	assert.Equal(t, 54.0, h)

	// degenerate input collapses to zero
	w, h = FitBox(0, 300, 150, 54)
	assert.Equal(t, 0.0, w)
	assert.Equal(t, 0.0, h)
}

func encodePNG(t *testing.T, w int, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestNormalizeLogoKeepsSmallImage(t *testing.T) {
	raw := encodePNG(t, 120, 48)
	out, w, h, err := normalizeLogo(raw)
	require.NoError(t, err)
	assert.Equal(t, 120, w)
	assert.Equal(t, 48, h)
	assert.NotEmpty(t, out)
}

func TestNormalizeLogoDownscalesWideImage(t *testing.T) {
	raw := encodePNG(t, 1800, 600)
	_, w, h, err := normalizeLogo(raw)
	require.NoError(t, err)
	assert.Equal(t, 900, w)
	assert.Equal(t, 300, h)
}

func TestNormalizeLogoRejectsGarbage(t *testing.T) {
	_, _, _, err := normalizeLogo([]byte("definitely not an image"))
	require.Error(t, err)
}
