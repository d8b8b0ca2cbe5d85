package gpu

import "github.com/stephaneworkspace/R3D3/types"

// Mesh is an immutable vertex buffer with interleaved position and color
// attributes.
type Mesh struct {
	vbo       uint32
	vao       uint32
	primitive Primitive
	count     int32
}

// Upload interleaved position (xyz) and color (rgba) vertex data.
func NewMesh(ctx Context, vertices []float32, primitive Primitive) *Mesh {
	m := &Mesh{
		primitive: primitive,
		count:     int32(len(vertices) / floatsPerVertex),
	}
	m.vbo = ctx.CreateBuffer()
	if len(vertices) != 0 {
		ctx.BufferData(m.vbo, vertices, StaticDraw)
	}
	m.vao = ctx.CreateVertexArray(m.vbo, colorLayout)
	return m
}

// Get the number of vertices.
func (m *Mesh) VertexCount() int32 {
	return m.count
}

// Draw the mesh using program; vp is uploaded as the view-projection matrix.
func (m *Mesh) Render(ctx Context, program *Program, vp types.Mat4) {
	if m.count == 0 {
		return
	}
	program.SetUsed(ctx)
	program.SetUniformMat4(ctx, ViewProjectionUniform, vp)
	ctx.DrawArrays(m.vao, m.primitive, 0, m.count)
}

// Free the GPU buffers.
func (m *Mesh) Release(ctx Context) {
	if m.vao != 0 {
		ctx.DeleteVertexArray(m.vao)
		m.vao = 0
	}
	if m.vbo != 0 {
		ctx.DeleteBuffer(m.vbo)
		m.vbo = 0
	}
}
