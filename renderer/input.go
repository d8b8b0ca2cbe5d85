package renderer

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stephaneworkspace/R3D3/scene"
	"github.com/stephaneworkspace/R3D3/types"
)

var movementKeys = map[glfw.Key]scene.CameraDirection{
	glfw.KeyW:           scene.Forward,
	glfw.KeyUp:          scene.Forward,
	glfw.KeyS:           scene.Backward,
	glfw.KeyDown:        scene.Backward,
	glfw.KeyA:           scene.Left,
	glfw.KeyLeft:        scene.Left,
	glfw.KeyD:           scene.Right,
	glfw.KeyRight:       scene.Right,
	glfw.KeySpace:       scene.Up,
	glfw.KeyE:           scene.Up,
	glfw.KeyQ:           scene.Down,
	glfw.KeyLeftControl: scene.Down,
	glfw.KeyLeftShift:   scene.Faster,
	glfw.KeyRightShift:  scene.Faster,
}

const (
	toggleCameraKey = glfw.KeyC
	resetCameraKey  = glfw.KeyR
	quitKey         = glfw.KeyEscape
)

// inputHandler translates window events into camera mutations. It keeps
// no reference to the window so it can be driven directly.
type inputHandler struct {
	camera *scene.TargetCamera
	quit   func()

	// Camera control can be toggled off; events are then ignored.
	enabled bool

	// Rotation is only applied while the right mouse button is held.
	rotating   bool
	lastCursor types.Vec2

	// Latest framebuffer size reported by the window.
	resizePending bool
	width, height int32
}

func newInputHandler(camera *scene.TargetCamera, quit func()) *inputHandler {
	return &inputHandler{
		camera:  camera,
		quit:    quit,
		enabled: true,
	}
}

func (h *inputHandler) onKey(key glfw.Key, action glfw.Action) {
	if action == glfw.Repeat {
		return
	}
	pressed := action == glfw.Press

	switch key {
	case quitKey:
		if pressed && h.quit != nil {
			h.quit()
		}
		return
	case toggleCameraKey:
		if pressed {
			h.setEnabled(!h.enabled)
		}
		return
	case resetCameraKey:
		if pressed && h.enabled {
			h.camera.Reset()
			logger.Debug("camera reset")
		}
		return
	}

	if dir, found := movementKeys[key]; found && h.enabled {
		h.camera.SetMovement(dir, pressed)
	}
}

func (h *inputHandler) onMouseButton(button glfw.MouseButton, action glfw.Action, xPos, yPos float64) {
	if button != glfw.MouseButtonRight {
		return
	}

	h.rotating = h.enabled && action == glfw.Press
	if h.rotating {
		h.lastCursor = types.XY(float32(xPos), float32(yPos))
	}
}

func (h *inputHandler) onCursorPos(xPos, yPos float64) {
	newPos := types.XY(float32(xPos), float32(yPos))
	delta := h.lastCursor.Sub(newPos)
	h.lastCursor = newPos

	if !h.rotating {
		return
	}
	h.camera.Rotate(delta)
}

func (h *inputHandler) onScroll(yOffset float64) {
	if !h.enabled {
		return
	}
	h.camera.Zoom(float32(yOffset))
}

func (h *inputHandler) onFramebufferSize(width, height int) {
	// Minimized windows report a 0x0 framebuffer
	if width <= 0 || height <= 0 {
		return
	}
	h.resizePending = true
	h.width, h.height = int32(width), int32(height)
}

// Get the pending framebuffer size, if any, and clear it.
func (h *inputHandler) takeResize() (int32, int32, bool) {
	if !h.resizePending {
		return 0, 0, false
	}
	h.resizePending = false
	return h.width, h.height, true
}

func (h *inputHandler) setEnabled(enabled bool) {
	h.enabled = enabled
	if !enabled {
		h.camera.ClearMovement()
		h.rotating = false
	}
	logger.Infof("camera control enabled: %t", enabled)
}
