package gpu

import "github.com/stephaneworkspace/R3D3/types"

// Supported shader stages.
type ShaderKind uint8

const (
	VertexShader ShaderKind = iota
	FragmentShader
	GeometryShader
)

func (k ShaderKind) String() string {
	switch k {
	case VertexShader:
		return "vertex"
	case FragmentShader:
		return "fragment"
	case GeometryShader:
		return "geometry"
	}
	return "unknown"
}

// Primitive types accepted by DrawArrays.
type Primitive uint8

const (
	Triangles Primitive = iota
	Lines
	Points
)

// Buffers that can be cleared.
type ClearMask uint8

const (
	ColorBit ClearMask = 1 << iota
	DepthBit
)

// Context capabilities that can be toggled.
type Capability uint8

const (
	DepthTest Capability = iota
)

// Buffer usage hints.
type BufferUsage uint8

const (
	StaticDraw BufferUsage = iota
	DynamicDraw
)

// Describes a float vertex attribute inside an interleaved vertex buffer.
// Offset and Stride are expressed in floats.
type VertexAttrib struct {
	Location   uint32
	Components int32
	Offset     int32
	Stride     int32
}

// Context wraps the graphics context. It is passed explicitly to every
// call that reads or writes context state such as the active program
// binding. Handles are plain ids; 0 is never a valid handle.
type Context interface {
	// Shaders. CompileShader returns the raw info log of the compiler.
	CreateShader(kind ShaderKind) uint32
	CompileShader(shader uint32, source string) (ok bool, infoLog string)
	DeleteShader(shader uint32)

	// Programs. LinkProgram attaches the shaders, links and detaches them
	// again, returning the raw link log.
	CreateProgram() uint32
	LinkProgram(program uint32, shaders []uint32) (ok bool, infoLog string)
	DeleteProgram(program uint32)
	UseProgram(program uint32)
	ActiveProgram() uint32
	UniformLocation(program uint32, name string) int32
	UniformMatrix4(location int32, m types.Mat4)

	// Framebuffer state.
	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	Clear(mask ClearMask)
	SetCapability(c Capability, enabled bool)

	// Vertex data. Offsets passed to BufferSubData are expressed in floats.
	CreateBuffer() uint32
	DeleteBuffer(buffer uint32)
	BufferData(buffer uint32, data []float32, usage BufferUsage)
	BufferSubData(buffer uint32, offset int, data []float32)
	CreateVertexArray(buffer uint32, layout []VertexAttrib) uint32
	DeleteVertexArray(vao uint32)
	DrawArrays(vao uint32, mode Primitive, first, count int32)
}
