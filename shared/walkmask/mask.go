// Package walkmask turns a rendered "walkable zones" image into a grid of
// walkable cells. It is pure data: no ebitengine, donburi, or resolv.
//
// The asset contract is fixed: a pixel is walkable only when it is fully
// opaque pure white (RGBA 255,255,255,255). Any other value, partially
// transparent white included, is a wall.
package walkmask

import (
	"errors"
	"fmt"
	"image"
	"image/draw"

	"github.com/automoto/walkabout/shared/gamemath"
)

var (
	// ErrDimensions is returned for non-positive mask sizes.
	ErrDimensions = errors.New("walkmask: width and height must be positive")
	// ErrBufferSize is returned when the pixel buffer is not width*height*4 bytes.
	ErrBufferSize = errors.New("walkmask: pixel buffer size mismatch")
)

// Mask is an immutable width*height grid of walkable flags, indexed y*width+x.
// It is safe for concurrent reads.
type Mask struct {
	width, height int
	data          []bool
}

// New builds a mask from an RGBA pixel buffer (4 bytes per pixel, row-major,
// no row padding).
func New(width, height int, pix []byte) (*Mask, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrDimensions, width, height)
	}
	if len(pix) != width*height*4 {
		return nil, fmt.Errorf("%w: %dx%d needs %d bytes, got %d",
			ErrBufferSize, width, height, width*height*4, len(pix))
	}

	m := &Mask{
		width:  width,
		height: height,
		data:   make([]bool, width*height),
	}
	for i := range m.data {
		p := pix[i*4 : i*4+4]
		m.data[i] = p[0] == 0xff && p[1] == 0xff && p[2] == 0xff && p[3] == 0xff
	}
	return m, nil
}

// FromImage builds a mask from any decoded image. The image is copied into
// a tightly packed RGBA buffer first, so sub-images and paletted PNGs work.
func FromImage(img image.Image) (*Mask, error) {
	b := img.Bounds()
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) && rgba.Stride == 4*b.Dx() {
		return New(b.Dx(), b.Dy(), rgba.Pix)
	}

	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return New(b.Dx(), b.Dy(), rgba.Pix)
}

func (m *Mask) Width() int  { return m.width }
func (m *Mask) Height() int { return m.height }

// InBounds reports whether the cell containing p lies inside the mask.
func (m *Mask) InBounds(p gamemath.Vec) bool {
	x, y := p.Floor()
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// Walkable reports whether the cell containing p is walkable. Points outside
// the mask are never walkable.
func (m *Mask) Walkable(p gamemath.Vec) bool {
	if !m.InBounds(p) {
		return false
	}
	x, y := p.Floor()
	return m.data[y*m.width+x]
}

// Ratio returns the fraction of walkable cells.
func (m *Mask) Ratio() float64 {
	n := 0
	for _, ok := range m.data {
		if ok {
			n++
		}
	}
	return float64(n) / float64(len(m.data))
}
