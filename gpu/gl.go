package gpu

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/stephaneworkspace/R3D3/types"
)

// GLContext implements Context on top of an OpenGL 4.1 core context. The
// caller must make the window context current on the calling thread before
// creating it and must issue all calls from that thread.
type GLContext struct {
	activeProgram uint32
}

var _ Context = (*GLContext)(nil)

// Load the OpenGL function pointers for the current context.
func NewGLContext() (*GLContext, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gpu: could not init opengl: %s", err.Error())
	}
	return &GLContext{}, nil
}

// Get the version string reported by the driver.
func (c *GLContext) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

func (c *GLContext) CreateShader(kind ShaderKind) uint32 {
	switch kind {
	case VertexShader:
		return gl.CreateShader(gl.VERTEX_SHADER)
	case FragmentShader:
		return gl.CreateShader(gl.FRAGMENT_SHADER)
	case GeometryShader:
		return gl.CreateShader(gl.GEOMETRY_SHADER)
	}
	return 0
}

func (c *GLContext) CompileShader(shader uint32, source string) (bool, string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.TRUE {
		return true, ""
	}

	var logLen int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
	infoLog := strings.Repeat("\x00", int(logLen+1))
	gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(infoLog))
	return false, strings.TrimRight(infoLog, "\x00")
}

func (c *GLContext) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (c *GLContext) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (c *GLContext) LinkProgram(program uint32, shaders []uint32) (bool, string) {
	for _, s := range shaders {
		gl.AttachShader(program, s)
	}
	gl.LinkProgram(program)
	for _, s := range shaders {
		gl.DetachShader(program, s)
	}

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.TRUE {
		return true, ""
	}

	var logLen int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
	infoLog := strings.Repeat("\x00", int(logLen+1))
	gl.GetProgramInfoLog(program, logLen, nil, gl.Str(infoLog))
	return false, strings.TrimRight(infoLog, "\x00")
}

func (c *GLContext) DeleteProgram(program uint32) {
	if c.activeProgram == program {
		c.activeProgram = 0
	}
	gl.DeleteProgram(program)
}

func (c *GLContext) UseProgram(program uint32) {
	gl.UseProgram(program)
	c.activeProgram = program
}

func (c *GLContext) ActiveProgram() uint32 {
	return c.activeProgram
}

func (c *GLContext) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (c *GLContext) UniformMatrix4(location int32, m types.Mat4) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}

func (c *GLContext) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (c *GLContext) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (c *GLContext) Clear(mask ClearMask) {
	var bits uint32
	if mask&ColorBit != 0 {
		bits |= gl.COLOR_BUFFER_BIT
	}
	if mask&DepthBit != 0 {
		bits |= gl.DEPTH_BUFFER_BIT
	}
	gl.Clear(bits)
}

func (c *GLContext) SetCapability(capability Capability, enabled bool) {
	var glCap uint32
	switch capability {
	case DepthTest:
		glCap = gl.DEPTH_TEST
	default:
		return
	}

	if enabled {
		gl.Enable(glCap)
	} else {
		gl.Disable(glCap)
	}
}

func (c *GLContext) CreateBuffer() uint32 {
	var buffer uint32
	gl.GenBuffers(1, &buffer)
	return buffer
}

func (c *GLContext) DeleteBuffer(buffer uint32) {
	gl.DeleteBuffers(1, &buffer)
}

func (c *GLContext) BufferData(buffer uint32, data []float32, usage BufferUsage) {
	glUsage := uint32(gl.STATIC_DRAW)
	if usage == DynamicDraw {
		glUsage = gl.DYNAMIC_DRAW
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, buffer)
	if len(data) == 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, glUsage)
	} else {
		gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), glUsage)
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

func (c *GLContext) BufferSubData(buffer uint32, offset int, data []float32) {
	if len(data) == 0 {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, buffer)
	gl.BufferSubData(gl.ARRAY_BUFFER, offset*4, len(data)*4, gl.Ptr(data))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

func (c *GLContext) CreateVertexArray(buffer uint32, layout []VertexAttrib) uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, buffer)
	for _, attr := range layout {
		gl.EnableVertexAttribArray(attr.Location)
		gl.VertexAttribPointer(attr.Location, attr.Components, gl.FLOAT, false, attr.Stride*4, gl.PtrOffset(int(attr.Offset)*4))
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return vao
}

func (c *GLContext) DeleteVertexArray(vao uint32) {
	gl.DeleteVertexArrays(1, &vao)
}

func (c *GLContext) DrawArrays(vao uint32, mode Primitive, first, count int32) {
	var glMode uint32
	switch mode {
	case Triangles:
		glMode = gl.TRIANGLES
	case Lines:
		glMode = gl.LINES
	case Points:
		glMode = gl.POINTS
	}

	gl.BindVertexArray(vao)
	gl.DrawArrays(glMode, first, count)
	gl.BindVertexArray(0)
}
