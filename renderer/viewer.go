package renderer

import (
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stephaneworkspace/R3D3/asset"
)

// Frame times above this are clamped so a stalled frame does not fling
// the camera across the scene.
const maxFrameDelta = 0.25

// Viewer is an interactive window showing a cube and debug lines through a
// target camera.
type Viewer struct {
	window *window
	scene  *viewerScene
	input  *inputHandler

	stats    FrameStats
	lastTime float64
}

var _ Renderer = (*Viewer)(nil)

// Create a viewer. Shader sources are loaded before the window is opened so
// that a bad path fails fast. Must be called from the main thread.
func NewViewer(opts Options) (*Viewer, error) {
	if opts.FrameW == 0 || opts.FrameH == 0 {
		return nil, ErrInvalidFrameSize
	}

	sources, err := asset.LoadShaderSources(opts.VertexShader, opts.FragmentShader)
	if err != nil {
		return nil, err
	}

	win, err := openWindow(opts.Title, int(opts.FrameW), int(opts.FrameH), true, opts.VSync)
	if err != nil {
		return nil, err
	}

	fbW, fbH := win.framebufferSize()
	sc, err := newViewerScene(win.ctx, opts, sources, fbW, fbH)
	if err != nil {
		win.close()
		return nil, err
	}

	v := &Viewer{
		window: win,
		scene:  sc,
	}
	v.input = newInputHandler(sc.camera, win.requestClose)
	win.bind(v.input)

	logger.Noticef("viewer ready: %s", sc.camera)
	return v, nil
}

// Run the frame loop until the window is closed. Each frame polls events,
// applies resizes, updates the camera, draws and presents.
func (v *Viewer) Render() error {
	v.lastTime = glfw.GetTime()
	for !v.window.shouldClose() {
		glfw.PollEvents()

		now := glfw.GetTime()
		frameTime, dt := frameDelta(v.lastTime, now)
		v.lastTime = now

		if w, h, resized := v.input.takeResize(); resized {
			v.scene.resize(w, h)
		}

		v.scene.update(dt)
		v.scene.render(v.window.ctx)
		v.window.swapBuffers()

		v.stats.Record(frameTime)
	}

	logger.Infof("frame loop exited after %d frames", v.stats.Frames)
	return nil
}

// Get the measured time between two frames and the simulation step derived
// from it. Only the step is clamped.
func frameDelta(last, now float64) (time.Duration, float32) {
	elapsed := now - last
	if elapsed < 0 {
		elapsed = 0
	}
	step := elapsed
	if step > maxFrameDelta {
		step = maxFrameDelta
	}
	return time.Duration(elapsed * float64(time.Second)), float32(step)
}

// Release GPU resources and destroy the window. Safe to call more than once.
func (v *Viewer) Close() {
	if v.scene != nil {
		v.scene.release(v.window.ctx)
		v.scene = nil
	}
	if v.window != nil {
		v.window.close()
	}
}

func (v *Viewer) Stats() FrameStats {
	return v.stats
}
