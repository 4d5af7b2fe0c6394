package movement

import "github.com/automoto/walkabout/shared/gamemath"

// Port connects the resolver to the rest of the game: movement requests come
// in from the input/physics side, corrected positions go out to whatever
// repositions the camera and sprites. The emitted position is expected to be
// fed back as the next request's Previous.
type Port interface {
	OnMovementRequested(handler func(Request))
	EmitResolvedPosition(position gamemath.Vec, wasBlocked bool)
}

// Bind resolves every request arriving on port against mask and emits the
// result back through the same port.
func Bind(port Port, mask Walkability, r *Resolver) {
	port.OnMovementRequested(func(req Request) {
		res := r.Resolve(mask, req)
		port.EmitResolvedPosition(res.Position, res.WasBlocked)
	})
}
