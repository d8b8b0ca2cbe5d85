package scene

import (
	"fmt"
	"math"

	"github.com/stephaneworkspace/R3D3/types"
)

// Movement intents that can be toggled on a TargetCamera.
type CameraDirection uint8

const (
	Forward CameraDirection = iota
	Backward
	Left
	Right
	Up
	Down
	Faster
	numDirections
)

func (d CameraDirection) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	case Faster:
		return "faster"
	}
	return "unknown"
}

// Default camera tuning.
const (
	DefaultMinDistance       float32 = 0.1
	DefaultMaxDistance       float32 = 100
	DefaultMoveSpeed         float32 = 1.0
	DefaultFasterMultiplier  float32 = 4.0
	DefaultRotateSensitivity float32 = 0.005
	DefaultZoomSensitivity   float32 = 0.25

	// Pitch is kept this far away from the poles so the view direction
	// never becomes parallel to the world up vector.
	PitchEpsilon float32 = 0.01

	// Movement vectors shorter than this are treated as zero.
	moveEpsilon float32 = 1e-6

	// The camera never gets closer to the target than this multiple of
	// the near plane distance.
	nearClearance float32 = 1.01
)

// Pitch limits, strictly inside (PitchEpsilon, pi-PitchEpsilon).
var (
	minPitch = math.Nextafter32(PitchEpsilon, math.Pi/2)
	maxPitch = math.Nextafter32(math.Pi-PitchEpsilon, math.Pi/2)
)

var worldUp = types.XYZ(0, 0, 1)

// TargetCamera orbits a target point. Its position is derived from the
// target and a spherical offset.
//
// The world is Z-up. Yaw rotates around +Z starting at +Y and moving
// towards +X; pitch is the polar angle measured from +Z. The offset from
// the target to the camera is therefore:
//
//	distance * (sin(pitch)*sin(yaw), sin(pitch)*cos(yaw), cos(pitch))
type TargetCamera struct {
	Target types.Vec3

	yaw      float32
	pitch    float32
	distance float32

	// Projection parameters; FOV is in radians.
	FOV    float32
	aspect float32
	Near   float32
	Far    float32

	// Tuning.
	MinDistance       float32
	MaxDistance       float32
	MoveSpeed         float32
	FasterMultiplier  float32
	RotateSensitivity float32
	ZoomSensitivity   float32

	movement        [numDirections]bool
	pendingRotation types.Vec2
	pendingZoom     float32

	position types.Vec3

	// Construction-time state restored by Reset.
	initialTarget   types.Vec3
	initialYaw      float32
	initialPitch    float32
	initialDistance float32
}

// Create a camera orbiting the origin. Angles are in radians. The initial
// pitch and distance are clamped into their valid ranges. The default
// minimum distance is raised above the near plane when needed.
func NewTargetCamera(aspect, fov, near, far, pitch, distance float32) *TargetCamera {
	if aspect <= 0 {
		aspect = 1
	}
	minDist := DefaultMinDistance
	if n := near * nearClearance; n > minDist {
		minDist = n
	}
	maxDist := DefaultMaxDistance
	if maxDist < minDist {
		maxDist = minDist
	}

	c := &TargetCamera{
		FOV:               fov,
		aspect:            aspect,
		Near:              near,
		Far:               far,
		MinDistance:       minDist,
		MaxDistance:       maxDist,
		MoveSpeed:         DefaultMoveSpeed,
		FasterMultiplier:  DefaultFasterMultiplier,
		RotateSensitivity: DefaultRotateSensitivity,
		ZoomSensitivity:   DefaultZoomSensitivity,
	}
	c.pitch = clampPitch(pitch)
	c.distance = c.clampDistance(distance)
	c.saveInitialState()
	c.updatePosition()
	return c
}

// Place the camera on a new orbit and make it the state restored by Reset.
// Pitch and distance are clamped into their valid ranges.
func (c *TargetCamera) SetOrbit(target types.Vec3, yaw, pitch, distance float32) {
	c.Target = target
	c.yaw = wrapAngle(yaw)
	c.pitch = clampPitch(pitch)
	c.distance = c.clampDistance(distance)
	c.saveInitialState()
	c.updatePosition()
}

// Set the allowed distance range and re-clamp the current distance. The
// minimum must lie beyond the near plane so the target is never clipped.
func (c *TargetCamera) SetDistanceLimits(minDist, maxDist float32) error {
	if minDist <= 0 || maxDist < minDist {
		return fmt.Errorf("camera: invalid distance limits [%f, %f]", minDist, maxDist)
	}
	if minDist <= c.Near {
		return fmt.Errorf("camera: minimum distance %f must be greater than near plane %f", minDist, c.Near)
	}
	c.MinDistance = minDist
	c.MaxDistance = maxDist
	c.distance = c.clampDistance(c.distance)
	c.updatePosition()
	return nil
}

// Toggle a movement intent.
func (c *TargetCamera) SetMovement(dir CameraDirection, active bool) {
	if dir < numDirections {
		c.movement[dir] = active
	}
}

// Returns true if a movement intent is active.
func (c *TargetCamera) Moving(dir CameraDirection) bool {
	return dir < numDirections && c.movement[dir]
}

// Clear all movement intents.
func (c *TargetCamera) ClearMovement() {
	c.movement = [numDirections]bool{}
}

// Queue a rotation. The delta is expressed in input units (e.g. pixels) and
// is scaled by RotateSensitivity. It is applied by the next Update call.
func (c *TargetCamera) Rotate(delta types.Vec2) {
	c.pendingRotation = c.pendingRotation.Add(delta)
}

// Queue a zoom step. Positive values move the camera towards the target.
// It is applied by the next Update call.
func (c *TargetCamera) Zoom(delta float32) {
	c.pendingZoom += delta
}

// Replace the aspect ratio used by the projection. Non-positive values are
// ignored.
func (c *TargetCamera) UpdateAspect(aspect float32) {
	if aspect > 0 {
		c.aspect = aspect
	}
}

// Restore the construction-time target and offset and drop any pending input.
func (c *TargetCamera) Reset() {
	c.Target = c.initialTarget
	c.yaw = c.initialYaw
	c.pitch = c.initialPitch
	c.distance = c.initialDistance
	c.pendingRotation = types.Vec2{}
	c.pendingZoom = 0
	c.ClearMovement()
	c.updatePosition()
}

// Integrate movement intents over dt seconds, apply pending rotation and
// zoom and recompute the camera position. Returns true if the target moved.
func (c *TargetCamera) Update(dt float32) bool {
	moved := false
	if dt > 0 {
		if move := c.movementVector(); move != (types.Vec3{}) {
			speed := c.MoveSpeed
			if c.movement[Faster] {
				speed *= c.FasterMultiplier
			}
			c.Target = c.Target.Add(move.Mul(speed * dt))
			moved = true
		}
	}

	if c.pendingRotation != (types.Vec2{}) {
		c.yaw = wrapAngle(c.yaw + c.pendingRotation[0]*c.RotateSensitivity)
		c.pitch = clampPitch(c.pitch + c.pendingRotation[1]*c.RotateSensitivity)
		c.pendingRotation = types.Vec2{}
	}

	if c.pendingZoom != 0 {
		c.distance = c.clampDistance(c.distance - c.pendingZoom*c.ZoomSensitivity)
		c.pendingZoom = 0
	}

	c.updatePosition()
	return moved
}

// Get the camera position.
func (c *TargetCamera) Position() types.Vec3 {
	return c.position
}

// Get the yaw angle in radians.
func (c *TargetCamera) Yaw() float32 {
	return c.yaw
}

// Get the pitch (polar) angle in radians.
func (c *TargetCamera) Pitch() float32 {
	return c.pitch
}

// Get the distance between the camera and its target.
func (c *TargetCamera) Distance() float32 {
	return c.distance
}

// Get the projection aspect ratio.
func (c *TargetCamera) Aspect() float32 {
	return c.aspect
}

// Get the unit vector pointing from the target towards the camera.
func (c *TargetCamera) Direction() types.Vec3 {
	return sphericalDirection(c.yaw, c.pitch)
}

// Get the view-space forward axis projected on the ground plane.
func (c *TargetCamera) ForwardAxis() types.Vec3 {
	sinYaw, cosYaw := math.Sincos(float64(c.yaw))
	return types.XYZ(-float32(sinYaw), -float32(cosYaw), 0)
}

// Get the view-space right axis projected on the ground plane.
func (c *TargetCamera) RightAxis() types.Vec3 {
	return c.ForwardAxis().Cross(worldUp)
}

// Get the view matrix.
func (c *TargetCamera) ViewMatrix() types.Mat4 {
	return types.LookAtV(c.position, c.Target, worldUp)
}

// Get the projection matrix.
func (c *TargetCamera) ProjectionMatrix() types.Mat4 {
	return types.Perspective4(c.FOV, c.aspect, c.Near, c.Far)
}

// Get the combined view-projection matrix for the current state.
func (c *TargetCamera) VPMatrix() types.Mat4 {
	return c.ProjectionMatrix().Mul4(c.ViewMatrix())
}

func (c *TargetCamera) String() string {
	return fmt.Sprintf(
		"target (%3.3f, %3.3f, %3.3f) yaw %3.3f pitch %3.3f distance %3.3f",
		c.Target[0], c.Target[1], c.Target[2], c.yaw, c.pitch, c.distance,
	)
}

func (c *TargetCamera) movementVector() types.Vec3 {
	var move types.Vec3
	forward := c.ForwardAxis()
	right := c.RightAxis()

	if c.movement[Forward] {
		move = move.Add(forward)
	}
	if c.movement[Backward] {
		move = move.Sub(forward)
	}
	if c.movement[Right] {
		move = move.Add(right)
	}
	if c.movement[Left] {
		move = move.Sub(right)
	}
	if c.movement[Up] {
		move = move.Add(worldUp)
	}
	if c.movement[Down] {
		move = move.Sub(worldUp)
	}

	if move.Len() < moveEpsilon {
		return types.Vec3{}
	}
	return move.Normalize()
}

func (c *TargetCamera) updatePosition() {
	c.position = c.Target.Add(sphericalDirection(c.yaw, c.pitch).Mul(c.distance))
}

func (c *TargetCamera) saveInitialState() {
	c.initialTarget = c.Target
	c.initialYaw = c.yaw
	c.initialPitch = c.pitch
	c.initialDistance = c.distance
}

// Clamp d into the distance limits. The lower limit never drops below the
// near plane. NaN keeps the current distance.
func (c *TargetCamera) clampDistance(d float32) float32 {
	lower := c.MinDistance
	if n := c.Near * nearClearance; n > lower {
		lower = n
	}
	upper := c.MaxDistance
	if upper < lower {
		upper = lower
	}

	if math.IsNaN(float64(d)) {
		d = c.distance
		if math.IsNaN(float64(d)) || d == 0 {
			d = lower
		}
	}
	if d < lower {
		return lower
	}
	if d > upper {
		return upper
	}
	return d
}

func sphericalDirection(yaw, pitch float32) types.Vec3 {
	sinYaw, cosYaw := math.Sincos(float64(yaw))
	sinPitch, cosPitch := math.Sincos(float64(pitch))
	return types.XYZ(
		float32(sinPitch*sinYaw),
		float32(sinPitch*cosYaw),
		float32(cosPitch),
	)
}

func clampPitch(p float32) float32 {
	if math.IsNaN(float64(p)) {
		return math.Pi / 2
	}
	if p < minPitch {
		return minPitch
	}
	if p > maxPitch {
		return maxPitch
	}
	return p
}

// Keep yaw within (-pi, pi] so it does not lose precision over long sessions.
func wrapAngle(a float32) float32 {
	wrapped := math.Remainder(float64(a), 2*math.Pi)
	if math.IsNaN(wrapped) {
		return 0
	}
	return float32(wrapped)
}
