package renderer

import "github.com/stephaneworkspace/R3D3/log"

var logger = log.New("renderer")

type Renderer interface {
	// Run the frame loop until the window is closed.
	Render() error

	// Release all GPU resources and destroy the window.
	Close()

	// Get frame statistics.
	Stats() FrameStats
}
