package gamemath

import "math"

// TracePath returns the grid points a straight segment from start to end
// passes through, using a DDA walk. The first point is start itself, every
// later point is rounded to the grid and the last one is end rounded.
// Consecutive points never differ by more than 1 on either axis.
func TracePath(start, end Vec) []Vec {
	return AppendTracePath(nil, start, end)
}

// AppendTracePath is TracePath appending into dst, so callers on the tick
// path can reuse a buffer.
func AppendTracePath(dst []Vec, start, end Vec) []Vec {
	d := end.Sub(start)
	steps := int(math.Ceil(math.Max(math.Abs(d.X), math.Abs(d.Y))))
	dst = append(dst, start)
	if steps == 0 {
		return dst
	}

	inc := d.Scale(1 / float64(steps))
	for i := 1; i < steps; i++ {
		dst = append(dst, start.Add(inc.Scale(float64(i))).Round())
	}
	// Computed from end directly so float drift can't move the last sample.
	return append(dst, end.Round())
}
