// Package gputest provides a recording gpu.Context for tests that need to
// run without a window or a GPU driver.
package gputest

import (
	"strings"

	"github.com/stephaneworkspace/R3D3/gpu"
	"github.com/stephaneworkspace/R3D3/types"
)

// The info log reported for sources that do not define a main function.
const MissingMainLog = "ERROR: 0:1: 'main' : function not defined\n"

// A single recorded draw call.
type Draw struct {
	VAO       uint32
	Mode      gpu.Primitive
	First     int32
	Count     int32
	Program   uint32
	DepthTest bool
}

// Context is an in-memory gpu.Context. Shader sources compile successfully
// as long as they contain a main function unless CompileFunc says
// otherwise; links succeed unless LinkFunc says otherwise.
type Context struct {
	// Optional hooks overriding the default compile and link behavior.
	CompileFunc func(kind gpu.ShaderKind, source string) (bool, string)
	LinkFunc    func(shaders []uint32) (bool, string)

	nextHandle uint32
	shaders    map[uint32]gpu.ShaderKind
	programs   map[uint32]bool
	buffers    map[uint32][]float32
	vaos       map[uint32]uint32
	uniforms   map[int32]types.Mat4

	activeProgram uint32
	depthTest     bool

	// Recorded state.
	ViewportW, ViewportH int32
	ClearRGBA            [4]float32
	Clears               []gpu.ClearMask
	Draws                []Draw
	FullUploads          int
	PartialUploads       int
	ProgramBinds         int
}

var _ gpu.Context = (*Context)(nil)

// Create a new fake context.
func New() *Context {
	return &Context{
		shaders:  make(map[uint32]gpu.ShaderKind),
		programs: make(map[uint32]bool),
		buffers:  make(map[uint32][]float32),
		vaos:     make(map[uint32]uint32),
		uniforms: make(map[int32]types.Mat4),
	}
}

func (c *Context) handle() uint32 {
	c.nextHandle++
	return c.nextHandle
}

func (c *Context) CreateShader(kind gpu.ShaderKind) uint32 {
	h := c.handle()
	c.shaders[h] = kind
	return h
}

func (c *Context) CompileShader(shader uint32, source string) (bool, string) {
	if c.CompileFunc != nil {
		return c.CompileFunc(c.shaders[shader], source)
	}
	if !strings.Contains(source, "void main") {
		return false, MissingMainLog
	}
	return true, ""
}

func (c *Context) DeleteShader(shader uint32) {
	delete(c.shaders, shader)
}

func (c *Context) CreateProgram() uint32 {
	h := c.handle()
	c.programs[h] = true
	return h
}

func (c *Context) LinkProgram(program uint32, shaders []uint32) (bool, string) {
	for _, s := range shaders {
		if _, live := c.shaders[s]; !live {
			return false, "error: attached shader object is not valid\n"
		}
	}
	if c.LinkFunc != nil {
		return c.LinkFunc(shaders)
	}
	return true, ""
}

func (c *Context) DeleteProgram(program uint32) {
	if c.activeProgram == program {
		c.activeProgram = 0
	}
	delete(c.programs, program)
}

func (c *Context) UseProgram(program uint32) {
	c.activeProgram = program
	c.ProgramBinds++
}

func (c *Context) ActiveProgram() uint32 {
	return c.activeProgram
}

// Uniform locations are derived from the program handle and the name; a
// name starting with "missing" reports an unknown uniform.
func (c *Context) UniformLocation(program uint32, name string) int32 {
	if strings.HasPrefix(name, "missing") {
		return -1
	}
	return int32(program)*100 + int32(len(name))
}

func (c *Context) UniformMatrix4(location int32, m types.Mat4) {
	c.uniforms[location] = m
}

// Get the last matrix uploaded to the named uniform of program.
func (c *Context) Uniform(program uint32, name string) (types.Mat4, bool) {
	m, found := c.uniforms[c.UniformLocation(program, name)]
	return m, found
}

func (c *Context) Viewport(x, y, width, height int32) {
	c.ViewportW, c.ViewportH = width, height
}

func (c *Context) ClearColor(r, g, b, a float32) {
	c.ClearRGBA = [4]float32{r, g, b, a}
}

func (c *Context) Clear(mask gpu.ClearMask) {
	c.Clears = append(c.Clears, mask)
}

func (c *Context) SetCapability(capability gpu.Capability, enabled bool) {
	if capability == gpu.DepthTest {
		c.depthTest = enabled
	}
}

// Returns true if the depth test is currently enabled.
func (c *Context) DepthTestEnabled() bool {
	return c.depthTest
}

func (c *Context) CreateBuffer() uint32 {
	h := c.handle()
	c.buffers[h] = nil
	return h
}

func (c *Context) DeleteBuffer(buffer uint32) {
	delete(c.buffers, buffer)
}

func (c *Context) BufferData(buffer uint32, data []float32, usage gpu.BufferUsage) {
	c.buffers[buffer] = append([]float32(nil), data...)
	c.FullUploads++
}

func (c *Context) BufferSubData(buffer uint32, offset int, data []float32) {
	copy(c.buffers[buffer][offset:], data)
	c.PartialUploads++
}

// Get a copy of the data stored in a buffer.
func (c *Context) BufferContents(buffer uint32) []float32 {
	return append([]float32(nil), c.buffers[buffer]...)
}

func (c *Context) CreateVertexArray(buffer uint32, layout []gpu.VertexAttrib) uint32 {
	h := c.handle()
	c.vaos[h] = buffer
	return h
}

// Get the buffer a vertex array was created for.
func (c *Context) VertexArrayBuffer(vao uint32) uint32 {
	return c.vaos[vao]
}

func (c *Context) DeleteVertexArray(vao uint32) {
	delete(c.vaos, vao)
}

func (c *Context) DrawArrays(vao uint32, mode gpu.Primitive, first, count int32) {
	c.Draws = append(c.Draws, Draw{
		VAO:       vao,
		Mode:      mode,
		First:     first,
		Count:     count,
		Program:   c.activeProgram,
		DepthTest: c.depthTest,
	})
}

// Get the total number of buffer uploads.
func (c *Context) Uploads() int {
	return c.FullUploads + c.PartialUploads
}

// Get the number of objects that have been created but not yet deleted.
func (c *Context) LiveShaders() int  { return len(c.shaders) }
func (c *Context) LivePrograms() int { return len(c.programs) }
func (c *Context) LiveBuffers() int  { return len(c.buffers) + len(c.vaos) }
