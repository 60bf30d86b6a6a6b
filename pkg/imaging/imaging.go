package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"net/http"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"
)

const (
	DefaultMaxDimension = 1280
	DefaultQuality      = 85
	MIMEJPEG            = "image/jpeg"
)

var ErrUnsupportedFormat = errors.New("unsupported image format")

var accepted = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

// Processor prepares user photos for upload: the format is sniffed from the bytes,
// large images are scaled down and everything is re-encoded as JPEG.
type Processor struct {
	maxDimension int
	quality      int
}

func New(maxDimension int) *Processor {
	if maxDimension <= 0 {
		maxDimension = DefaultMaxDimension
	}
	return &Processor{maxDimension: maxDimension, quality: DefaultQuality}
}

// Image is an encoded image ready to be sent.
type Image struct {
	Filename string
	Data     []byte
	MIME     string
	Width    int
	Height   int
}

func (p *Processor) Process(filename string, data []byte) (Image, error) {
	detected := http.DetectContentType(data)
	if !accepted[detected] {
		return Image{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, detected)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Image{}, fmt.Errorf("decode image: %w", err)
	}
	img = fit(img, p.maxDimension)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: p.quality}); err != nil {
		return Image{}, fmt.Errorf("encode jpeg: %w", err)
	}

	b := img.Bounds()
	return Image{
		Filename: jpegName(filename),
		Data:     buf.Bytes(),
		MIME:     MIMEJPEG,
		Width:    b.Dx(),
		Height:   b.Dy(),
	}, nil
}

// fit scales img down so that its longer side is at most max, keeping the aspect ratio.
func fit(img image.Image, max int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= max && h <= max {
		return img
	}

	nw, nh := max, max
	if w > h {
		nh = h * max / w
	} else {
		nw = w * max / h
	}
	nw, nh = atLeastOne(nw), atLeastOne(nh)

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}

func atLeastOne(v int) int {
	if v < 1 {
		return 1
	}
	return v
}

func jpegName(name string) string {
	base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	if base == "" || base == "." || base == string(filepath.Separator) {
		base = "photo"
	}
	return base + ".jpg"
}
