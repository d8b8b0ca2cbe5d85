package renderer

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stephaneworkspace/R3D3/gpu"
)

// A glfw window with a current OpenGL 4.1 core context.
type window struct {
	handle *glfw.Window
	ctx    *gpu.GLContext
}

// Initialize glfw and open a window. glfw is terminated again if any step
// fails. Must be called from the main thread.
func openWindow(title string, width, height int, visible, vsync bool) (*window, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidFrameSize
	}

	if err := glfw.Init(); err != nil {
		return nil, &ContextInitError{Stage: "glfw init", Err: err}
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	if visible {
		glfw.WindowHint(glfw.Visible, glfw.True)
	} else {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	handle, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, &ContextInitError{Stage: "window creation", Err: err}
	}
	handle.MakeContextCurrent()

	ctx, err := gpu.NewGLContext()
	if err != nil {
		handle.Destroy()
		glfw.Terminate()
		return nil, &ContextInitError{Stage: "opengl init", Err: err}
	}

	if vsync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	logger.Infof("created %dx%d window with opengl %s", width, height, ctx.Version())
	return &window{handle: handle, ctx: ctx}, nil
}

// Get the framebuffer size in pixels. On high-DPI displays this differs
// from the window size.
func (w *window) framebufferSize() (int32, int32) {
	fbW, fbH := w.handle.GetFramebufferSize()
	return int32(fbW), int32(fbH)
}

// Route window events to an input handler.
func (w *window) bind(h *inputHandler) {
	w.handle.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	w.handle.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		h.onKey(key, action)
	})
	w.handle.SetMouseButtonCallback(func(win *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		xPos, yPos := win.GetCursorPos()
		h.onMouseButton(button, action, xPos, yPos)
	})
	w.handle.SetCursorPosCallback(func(_ *glfw.Window, xPos, yPos float64) {
		h.onCursorPos(xPos, yPos)
	})
	w.handle.SetScrollCallback(func(_ *glfw.Window, _, yOff float64) {
		h.onScroll(yOff)
	})
	w.handle.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		h.onFramebufferSize(width, height)
	})
}

func (w *window) shouldClose() bool {
	return w.handle.ShouldClose()
}

func (w *window) requestClose() {
	w.handle.SetShouldClose(true)
}

func (w *window) swapBuffers() {
	w.handle.SwapBuffers()
}

// Destroy the window and terminate glfw.
func (w *window) close() {
	if w.handle == nil {
		return
	}
	w.handle.Destroy()
	w.handle = nil
	glfw.Terminate()
}
