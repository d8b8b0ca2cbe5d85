package gpu

// Viewport tracks the window dimensions in pixels.
type Viewport struct {
	Width  int32
	Height int32
}

// Create a viewport for a window of the given size.
func NewViewportForWindow(width, height int32) (*Viewport, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidViewport
	}
	return &Viewport{Width: width, Height: height}, nil
}

// Replace the stored dimensions. The new size takes effect on the next
// call to SetUsed. Non-positive dimensions are ignored.
func (v *Viewport) UpdateSize(width, height int32) {
	if width <= 0 || height <= 0 {
		return
	}
	v.Width = width
	v.Height = height
}

// Get the width/height ratio.
func (v *Viewport) Aspect() float32 {
	return float32(v.Width) / float32(v.Height)
}

// Apply the viewport dimensions to the context.
func (v *Viewport) SetUsed(ctx Context) {
	ctx.Viewport(0, 0, v.Width, v.Height)
}
