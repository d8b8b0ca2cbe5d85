package renderer

import (
	"github.com/stephaneworkspace/R3D3/scene"
	"github.com/stephaneworkspace/R3D3/types"
)

type Options struct {
	// Window settings.
	Title  string
	FrameW uint32
	FrameH uint32
	VSync  bool

	// Clear color for the default framebuffer.
	ClearColor types.Vec3

	// Shader source locations; empty values select the embedded shaders.
	VertexShader   string
	FragmentShader string

	// Debug geometry.
	MarkerSize float32
	ShowAxes   bool

	Camera CameraOptions
}

// CameraOptions holds the camera setup. Angles are in radians.
type CameraOptions struct {
	FOV      float32
	Near     float32
	Far      float32
	Yaw      float32
	Pitch    float32
	Distance float32

	MinDistance       float32
	MaxDistance       float32
	MoveSpeed         float32
	FasterMultiplier  float32
	RotateSensitivity float32
	ZoomSensitivity   float32
}

// Create a target camera orbiting the origin.
func (o CameraOptions) NewCamera(aspect float32) (*scene.TargetCamera, error) {
	cam := scene.NewTargetCamera(aspect, o.FOV, o.Near, o.Far, o.Pitch, o.Distance)
	if err := cam.SetDistanceLimits(o.MinDistance, o.MaxDistance); err != nil {
		return nil, err
	}
	cam.MoveSpeed = o.MoveSpeed
	cam.FasterMultiplier = o.FasterMultiplier
	cam.RotateSensitivity = o.RotateSensitivity
	cam.ZoomSensitivity = o.ZoomSensitivity
	cam.SetOrbit(types.Vec3{}, o.Yaw, o.Pitch, o.Distance)
	return cam, nil
}
