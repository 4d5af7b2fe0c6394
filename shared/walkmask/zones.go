package walkmask

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/automoto/walkabout/shared/gamemath"
	"golang.org/x/image/vector"
)

// Zone is a closed walkable polygon in world pixels. Rectangles are four
// point zones, see RectZone.
type Zone struct {
	Points []gamemath.Vec
}

// RectZone returns the zone covering the axis-aligned rectangle at (x, y).
func RectZone(x, y, w, h float64) Zone {
	return Zone{Points: []gamemath.Vec{
		{X: x, Y: y},
		{X: x + w, Y: y},
		{X: x + w, Y: y + h},
		{X: x, Y: y + h},
	}}
}

// RenderZones paints zones opaque white onto a transparent width x height
// image, producing the same kind of image an artist would export as a
// walkable layer. Anti-aliased edges come out partially transparent and so
// count as walls.
func RenderZones(width, height int, zones []Zone) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	if len(zones) == 0 {
		return dst
	}

	white := image.NewUniform(color.White)
	z := vector.NewRasterizer(width, height)
	// One pass per zone: overlapping zones with opposite winding would
	// otherwise cancel out inside a single path.
	for _, zone := range zones {
		if len(zone.Points) < 3 {
			continue
		}
		z.Reset(width, height)
		z.DrawOp = draw.Over
		z.MoveTo(float32(zone.Points[0].X), float32(zone.Points[0].Y))
		for _, p := range zone.Points[1:] {
			z.LineTo(float32(p.X), float32(p.Y))
		}
		z.ClosePath()
		z.Draw(dst, dst.Bounds(), white, image.Point{})
	}
	return dst
}

// FromZones is RenderZones followed by FromImage.
func FromZones(width, height int, zones []Zone) (*Mask, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrDimensions
	}
	return FromImage(RenderZones(width, height, zones))
}
