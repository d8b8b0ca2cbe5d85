package gpu

import "github.com/stephaneworkspace/R3D3/types"

const (
	// Name of the view-projection matrix uniform expected by the shaders.
	ViewProjectionUniform = "ViewProjection"

	// Interleaved position (xyz) and color (rgba).
	floatsPerVertex = 7

	// A marker is drawn as a 3-axis cross.
	verticesPerMarker = 6
)

var (
	colorLayout = []VertexAttrib{
		{Location: 0, Components: 3, Offset: 0, Stride: floatsPerVertex},
		{Location: 1, Components: 4, Offset: 3, Stride: floatsPerVertex},
	}

	markerAxisColors = [3]types.Vec4{
		{1, 0, 0, 1},
		{0, 1, 0, 1},
		{0, 0, 1, 1},
	}
)

// DebugLineSet is a growable buffer of line segments used to draw debug
// markers. Vertex data is re-uploaded lazily by Render whenever it changes.
type DebugLineSet struct {
	program *Program

	vertices []float32
	markers  []marker

	vbo      uint32
	vao      uint32
	capacity int

	// Range of floats modified since the last upload; empty when dirtyTo <= dirtyFrom.
	dirtyFrom int
	dirtyTo   int

	uploads int
}

type marker struct {
	offset   int
	position types.Vec3
	size     float32
}

// MarkerHandle refers to a marker inside a DebugLineSet. It remains valid
// for the lifetime of the set.
type MarkerHandle struct {
	set   *DebugLineSet
	index int
}

// Create an empty line set drawn with the given program. The program is
// shared and is not released by the line set.
func NewDebugLineSet(ctx Context, program *Program) *DebugLineSet {
	d := &DebugLineSet{program: program}
	d.vbo = ctx.CreateBuffer()
	d.vao = ctx.CreateVertexArray(d.vbo, colorLayout)
	return d
}

// Append a static line segment.
func (d *DebugLineSet) Line(from, to types.Vec3, color types.Vec4) {
	offset := len(d.vertices)
	d.vertices = appendVertex(d.vertices, from, color)
	d.vertices = appendVertex(d.vertices, to, color)
	d.markDirty(offset, len(d.vertices))
}

// Append a marker centered at position. The marker spans size units along
// each axis.
func (d *DebugLineSet) Marker(position types.Vec3, size float32) MarkerHandle {
	m := marker{
		offset:   len(d.vertices),
		position: position,
		size:     size,
	}
	d.vertices = append(d.vertices, make([]float32, verticesPerMarker*floatsPerVertex)...)
	d.markers = append(d.markers, m)
	d.writeMarker(m)

	return MarkerHandle{set: d, index: len(d.markers) - 1}
}

// Get the number of markers in the set.
func (d *DebugLineSet) MarkerCount() int {
	return len(d.markers)
}

// Get the number of vertices in the set.
func (d *DebugLineSet) VertexCount() int {
	return len(d.vertices) / floatsPerVertex
}

// Get a copy of the CPU-side vertex data.
func (d *DebugLineSet) Vertices() []float32 {
	out := make([]float32, len(d.vertices))
	copy(out, d.vertices)
	return out
}

// Returns true if the vertex data has changed since the last upload.
func (d *DebugLineSet) Dirty() bool {
	return d.dirtyTo > d.dirtyFrom
}

// Get the number of buffer uploads issued so far.
func (d *DebugLineSet) Uploads() int {
	return d.uploads
}

// Upload any pending changes and draw all segments using vp as the
// view-projection matrix. If target clears depth, lines are drawn on top
// of the scene geometry.
func (d *DebugLineSet) Render(ctx Context, target *ColorBuffer, vp types.Mat4) {
	d.flush(ctx)
	if len(d.vertices) == 0 {
		return
	}

	d.program.SetUsed(ctx)
	d.program.SetUniformMat4(ctx, ViewProjectionUniform, vp)

	overlay := target != nil && target.HasDepth()
	if overlay {
		ctx.SetCapability(DepthTest, false)
	}
	ctx.DrawArrays(d.vao, Lines, 0, int32(d.VertexCount()))
	if overlay {
		ctx.SetCapability(DepthTest, true)
	}
}

// Free the GPU buffers.
func (d *DebugLineSet) Release(ctx Context) {
	if d.vao != 0 {
		ctx.DeleteVertexArray(d.vao)
		d.vao = 0
	}
	if d.vbo != 0 {
		ctx.DeleteBuffer(d.vbo)
		d.vbo = 0
	}
	d.capacity = 0
}

// Send modified vertex data to the GPU. Growing the set re-sends the
// whole buffer; in-place edits only send the modified range.
func (d *DebugLineSet) flush(ctx Context) {
	if !d.Dirty() {
		return
	}

	if len(d.vertices) > d.capacity {
		ctx.BufferData(d.vbo, d.vertices, DynamicDraw)
		d.capacity = len(d.vertices)
	} else {
		ctx.BufferSubData(d.vbo, d.dirtyFrom, d.vertices[d.dirtyFrom:d.dirtyTo])
	}

	d.uploads++
	d.dirtyFrom, d.dirtyTo = 0, 0
}

func (d *DebugLineSet) markDirty(from, to int) {
	if !d.Dirty() {
		d.dirtyFrom, d.dirtyTo = from, to
		return
	}
	if from < d.dirtyFrom {
		d.dirtyFrom = from
	}
	if to > d.dirtyTo {
		d.dirtyTo = to
	}
}

func (d *DebugLineSet) writeMarker(m marker) {
	half := m.size * 0.5
	block := d.vertices[m.offset:m.offset]
	for axis := 0; axis < 3; axis++ {
		var delta types.Vec3
		delta[axis] = half
		block = appendVertex(block, m.position.Sub(delta), markerAxisColors[axis])
		block = appendVertex(block, m.position.Add(delta), markerAxisColors[axis])
	}
	d.markDirty(m.offset, m.offset+verticesPerMarker*floatsPerVertex)
}

// Move the marker to a new position. The change becomes visible on the
// next Render call.
func (h MarkerHandle) UpdatePosition(position types.Vec3) {
	m := &h.set.markers[h.index]
	m.position = position
	h.set.writeMarker(*m)
}

// Get the marker position.
func (h MarkerHandle) Position() types.Vec3 {
	return h.set.markers[h.index].position
}

func appendVertex(buf []float32, pos types.Vec3, color types.Vec4) []float32 {
	return append(buf, pos[0], pos[1], pos[2], color[0], color[1], color[2], color[3])
}
