package renderer

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stephaneworkspace/R3D3/scene"
	"github.com/stephaneworkspace/R3D3/types"
)

func setupInput(t *testing.T) (*inputHandler, *scene.TargetCamera, *int) {
	cam, err := testOptions().Camera.NewCamera(4.0 / 3.0)
	if err != nil {
		t.Fatal(err)
	}
	quitCalls := 0
	return newInputHandler(cam, func() { quitCalls++ }), cam, &quitCalls
}

func TestMovementKeys(t *testing.T) {
	h, cam, _ := setupInput(t)

	specs := []struct {
		key glfw.Key
		dir scene.CameraDirection
	}{
		{glfw.KeyW, scene.Forward},
		{glfw.KeyUp, scene.Forward},
		{glfw.KeyS, scene.Backward},
		{glfw.KeyA, scene.Left},
		{glfw.KeyRight, scene.Right},
		{glfw.KeySpace, scene.Up},
		{glfw.KeyQ, scene.Down},
		{glfw.KeyLeftShift, scene.Faster},
	}

	for index, spec := range specs {
		h.onKey(spec.key, glfw.Press)
		if !cam.Moving(spec.dir) {
			t.Fatalf("[spec %d] expected %s intent after pressing key %d", index, spec.dir, spec.key)
		}
		h.onKey(spec.key, glfw.Repeat)
		if !cam.Moving(spec.dir) {
			t.Fatalf("[spec %d] expected repeat events to be ignored", index)
		}
		h.onKey(spec.key, glfw.Release)
		if cam.Moving(spec.dir) {
			t.Fatalf("[spec %d] expected %s intent to clear on release", index, spec.dir)
		}
	}
}

func TestToggleCameraControl(t *testing.T) {
	h, cam, _ := setupInput(t)

	h.onKey(glfw.KeyW, glfw.Press)
	h.onKey(toggleCameraKey, glfw.Press)
	if cam.Moving(scene.Forward) {
		t.Fatal("expected disabling camera control to clear movement intents")
	}

	h.onKey(glfw.KeyD, glfw.Press)
	if cam.Moving(scene.Right) {
		t.Fatal("expected movement keys to be ignored while camera control is disabled")
	}

	distance := cam.Distance()
	h.onScroll(1)
	cam.Update(0.1)
	if cam.Distance() != distance {
		t.Fatal("expected scroll to be ignored while camera control is disabled")
	}

	h.onKey(toggleCameraKey, glfw.Release)
	h.onKey(toggleCameraKey, glfw.Press)
	h.onKey(glfw.KeyD, glfw.Press)
	if !cam.Moving(scene.Right) {
		t.Fatal("expected movement keys to work after re-enabling camera control")
	}
}

func TestRotationRequiresRightButton(t *testing.T) {
	h, cam, _ := setupInput(t)

	h.onCursorPos(100, 100)
	h.onCursorPos(50, 80)
	cam.Update(0.016)
	if cam.Yaw() != 0 {
		t.Fatalf("expected cursor movement without the right button to be ignored; got yaw %f", cam.Yaw())
	}

	h.onMouseButton(glfw.MouseButtonLeft, glfw.Press, 50, 80)
	h.onCursorPos(40, 80)
	cam.Update(0.016)
	if cam.Yaw() != 0 {
		t.Fatal("expected left button not to enable rotation")
	}

	h.onMouseButton(glfw.MouseButtonRight, glfw.Press, 40, 80)
	h.onCursorPos(30, 80)
	cam.Update(0.016)
	expYaw := float32(10) * cam.RotateSensitivity
	if !approx(cam.Yaw(), expYaw) {
		t.Fatalf("expected yaw %f; got %f", expYaw, cam.Yaw())
	}

	h.onMouseButton(glfw.MouseButtonRight, glfw.Release, 30, 80)
	h.onCursorPos(0, 0)
	cam.Update(0.016)
	if !approx(cam.Yaw(), expYaw) {
		t.Fatal("expected rotation to stop after releasing the right button")
	}
}

func TestScrollZooms(t *testing.T) {
	h, cam, _ := setupInput(t)
	h.onScroll(2)
	cam.Update(0.016)

	if exp := float32(2 - 2*0.25); !approx(cam.Distance(), exp) {
		t.Fatalf("expected distance %f; got %f", exp, cam.Distance())
	}
}

func TestResetAndQuit(t *testing.T) {
	h, cam, quitCalls := setupInput(t)

	cam.SetMovement(scene.Forward, true)
	cam.Update(1)
	h.onKey(resetCameraKey, glfw.Press)
	if cam.Target != (types.Vec3{}) {
		t.Fatalf("expected reset to restore the target; got %v", cam.Target)
	}

	h.onKey(quitKey, glfw.Release)
	if *quitCalls != 0 {
		t.Fatal("expected quit to trigger on press only")
	}
	h.onKey(quitKey, glfw.Press)
	if *quitCalls != 1 {
		t.Fatalf("expected quit callback to be called once; got %d", *quitCalls)
	}
}

func TestFramebufferResize(t *testing.T) {
	h, _, _ := setupInput(t)

	if _, _, resized := h.takeResize(); resized {
		t.Fatal("expected no pending resize")
	}

	h.onFramebufferSize(1024, 768)
	h.onFramebufferSize(0, 0)
	w, hgt, resized := h.takeResize()
	if !resized || w != 1024 || hgt != 768 {
		t.Fatalf("expected pending resize to 1024x768; got %dx%d (%t)", w, hgt, resized)
	}
	if _, _, resized = h.takeResize(); resized {
		t.Fatal("expected resize to be consumed")
	}
}

func approx(a, b float32) bool {
	d := a - b
	return d < 1e-5 && d > -1e-5
}
