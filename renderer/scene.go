package renderer

import (
	"github.com/stephaneworkspace/R3D3/asset"
	"github.com/stephaneworkspace/R3D3/gpu"
	"github.com/stephaneworkspace/R3D3/scene"
	"github.com/stephaneworkspace/R3D3/types"
)

const (
	cubeSize float32 = 1.0
	axisLen  float32 = 2.0
)

// viewerScene owns the GPU objects drawn every frame together with the
// camera. All GPU calls go through the context passed to each method.
type viewerScene struct {
	viewport    *gpu.Viewport
	colorBuffer *gpu.ColorBuffer
	program     *gpu.Program
	cube        *gpu.Mesh
	lines       *gpu.DebugLineSet

	targetMarker gpu.MarkerHandle
	camera       *scene.TargetCamera
}

// Build the scene for a framebuffer of the given size. On error, every
// GPU object created so far is released.
func newViewerScene(ctx gpu.Context, opts Options, sources *asset.ShaderSources, width, height int32) (*viewerScene, error) {
	viewport, err := gpu.NewViewportForWindow(width, height)
	if err != nil {
		return nil, err
	}

	colorBuffer, err := gpu.NewColorBuffer(opts.ClearColor, true)
	if err != nil {
		return nil, err
	}

	camera, err := opts.Camera.NewCamera(viewport.Aspect())
	if err != nil {
		return nil, err
	}

	program, err := gpu.NewProgramFromSources(ctx, sources.Vertex, sources.Fragment)
	if err != nil {
		return nil, err
	}
	logger.Infof("linked %s from %s and %s", program, sources.VertexPath, sources.FragmentPath)

	s := &viewerScene{
		viewport:    viewport,
		colorBuffer: colorBuffer,
		program:     program,
		camera:      camera,
	}

	s.cube = gpu.NewMesh(ctx, scene.CubeVertices(types.Vec3{}, cubeSize), gpu.Triangles)
	s.lines = gpu.NewDebugLineSet(ctx, program)
	if opts.ShowAxes {
		s.lines.Line(types.Vec3{}, types.XYZ(axisLen, 0, 0), types.XYZW(1, 0, 0, 1))
		s.lines.Line(types.Vec3{}, types.XYZ(0, axisLen, 0), types.XYZW(0, 1, 0, 1))
		s.lines.Line(types.Vec3{}, types.XYZ(0, 0, axisLen), types.XYZW(0, 0, 1, 1))
	}
	s.targetMarker = s.lines.Marker(camera.Target, opts.MarkerSize)

	return s, nil
}

// Apply a new framebuffer size.
func (s *viewerScene) resize(width, height int32) {
	s.viewport.UpdateSize(width, height)
	s.camera.UpdateAspect(s.viewport.Aspect())
	logger.Debugf("framebuffer resized to %dx%d", width, height)
}

// Advance the simulation by dt seconds and keep the target marker on the
// camera target.
func (s *viewerScene) update(dt float32) {
	s.camera.Update(dt)
	if s.targetMarker.Position() != s.camera.Target {
		s.targetMarker.UpdatePosition(s.camera.Target)
	}
}

// Draw a frame.
func (s *viewerScene) render(ctx gpu.Context) {
	vp := s.camera.VPMatrix()

	s.viewport.SetUsed(ctx)
	s.colorBuffer.SetUsed(ctx)
	s.colorBuffer.Clear(ctx)
	s.cube.Render(ctx, s.program, vp)
	s.lines.Render(ctx, s.colorBuffer, vp)
}

// Free all GPU objects.
func (s *viewerScene) release(ctx gpu.Context) {
	if s.lines != nil {
		s.lines.Release(ctx)
	}
	if s.cube != nil {
		s.cube.Release(ctx)
	}
	s.program.Release(ctx)
}
