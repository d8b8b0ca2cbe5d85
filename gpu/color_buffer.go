package gpu

import "github.com/stephaneworkspace/R3D3/types"

// ColorBuffer holds the clear state of the default framebuffer.
type ColorBuffer struct {
	color types.Vec3
	depth bool
}

// Create a color buffer with the given clear color. When depth is set, the
// depth buffer is cleared along with the color buffer and the depth test is
// enabled by SetUsed.
func NewColorBuffer(color types.Vec3, depth bool) (*ColorBuffer, error) {
	if !validColor(color) {
		return nil, ErrInvalidColor
	}
	return &ColorBuffer{color: color, depth: depth}, nil
}

// Change the clear color. It takes effect on the next call to SetUsed.
func (cb *ColorBuffer) SetClearColor(color types.Vec3) error {
	if !validColor(color) {
		return ErrInvalidColor
	}
	cb.color = color
	return nil
}

// Get the clear color.
func (cb *ColorBuffer) ClearColor() types.Vec3 {
	return cb.color
}

// Returns true if the depth buffer is managed alongside the color buffer.
func (cb *ColorBuffer) HasDepth() bool {
	return cb.depth
}

// Apply the clear color and depth test state to the context.
func (cb *ColorBuffer) SetUsed(ctx Context) {
	ctx.ClearColor(cb.color[0], cb.color[1], cb.color[2], 1.0)
	ctx.SetCapability(DepthTest, cb.depth)
}

// Clear the color and, if enabled, the depth buffer.
func (cb *ColorBuffer) Clear(ctx Context) {
	mask := ColorBit
	if cb.depth {
		mask |= DepthBit
	}
	ctx.Clear(mask)
}

func validColor(c types.Vec3) bool {
	for _, v := range c {
		if !(v >= 0 && v <= 1) {
			return false
		}
	}
	return true
}
