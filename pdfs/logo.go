package pdfs

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/webp"

	_ "image/gif"
	_ "image/jpeg"
)

// Logo display box on the page, pt. The image shrinks to fit whichever
// dimension is tighter, aspect ratio preserved, at a fixed top-left offset.
const (
	LogoMaxWidth  = 150.0
	LogoMaxHeight = 54.0
	LogoLeft      = 40.0
	LogoTop       = 32.0
)

// logo pixel cap before embedding. uploads can be huge; anything wider gets
// downscaled so documents stay small
const logoMaxPixelWidth = 900

// FitBox scales (w, h) down to fit within (maxW, maxH) preserving aspect
// ratio. Dimensions already inside the box are returned unchanged.
func FitBox(w float64, h float64, maxW float64, maxH float64) (float64, float64) {
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	scale := 1.0
	if w > maxW {
		scale = maxW / w
	}
	if h*scale > maxH {
		scale = maxH / h
	}
	return w * scale, h * scale
}

// normalizeLogo decodes uploaded logo bytes (png, jpeg, gif or webp),
// downscales oversized images and re-encodes to PNG for embedding.
func normalizeLogo(raw []byte) ([]byte, int, int, error) {
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		// stdlib decoders don't know webp
		img, err = webp.Decode(bytes.NewReader(raw))
		if err != nil {
			return nil, 0, 0, fmt.Errorf("decode logo: %w", err)
		}
	}
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return nil, 0, 0, fmt.Errorf("decode logo: empty image")
	}
	if w > logoMaxPixelWidth {
		scaledH := h * logoMaxPixelWidth / w
		if scaledH < 1 {
			scaledH = 1
		}
		dst := image.NewRGBA(image.Rect(0, 0, logoMaxPixelWidth, scaledH))
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, xdraw.Over, nil)
		img = dst
		w, h = logoMaxPixelWidth, scaledH
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, 0, 0, fmt.Errorf("encode logo: %w", err)
	}
	return buf.Bytes(), w, h, nil
}
