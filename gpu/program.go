package gpu

import (
	"fmt"
	"strings"

	"github.com/stephaneworkspace/R3D3/types"
)

// A linked shader program.
type Program struct {
	handle   uint32
	uniforms map[string]int32
}

// Link a program from a set of compiled shaders. The set must contain at
// least one vertex and one fragment stage. The shaders remain owned by the
// caller and may be released as soon as this call returns.
func NewProgram(ctx Context, shaders ...*Shader) (*Program, error) {
	if len(shaders) == 0 {
		return nil, ErrNoShaders
	}

	var hasVertex, hasFragment bool
	handles := make([]uint32, 0, len(shaders))
	for _, s := range shaders {
		if s == nil || s.handle == 0 {
			return nil, ErrShaderReleased
		}
		switch s.kind {
		case VertexShader:
			hasVertex = true
		case FragmentShader:
			hasFragment = true
		}
		handles = append(handles, s.handle)
	}

	if !hasVertex {
		return nil, &LinkError{Log: "program has no vertex shader stage"}
	}
	if !hasFragment {
		return nil, &LinkError{Log: "program has no fragment shader stage"}
	}

	handle := ctx.CreateProgram()
	if handle == 0 {
		return nil, ErrCreateProgram
	}

	ok, infoLog := ctx.LinkProgram(handle, handles)
	if !ok {
		ctx.DeleteProgram(handle)
		if strings.TrimSpace(infoLog) == "" {
			infoLog = EmptyLinkLog
		}
		return nil, &LinkError{Log: infoLog}
	}

	return &Program{
		handle:   handle,
		uniforms: make(map[string]int32),
	}, nil
}

// Compile a vertex and a fragment stage and link them into a program. The
// intermediate shader objects are released on every return path.
func NewProgramFromSources(ctx Context, vertexSrc, fragmentSrc string) (*Program, error) {
	vert, err := NewVertexShader(ctx, vertexSrc)
	if err != nil {
		return nil, err
	}
	defer vert.Release(ctx)

	frag, err := NewFragmentShader(ctx, fragmentSrc)
	if err != nil {
		return nil, err
	}
	defer frag.Release(ctx)

	return NewProgram(ctx, vert, frag)
}

// Get the native program handle; returns 0 after the program has been released.
func (p *Program) Handle() uint32 {
	return p.handle
}

// Bind this program as the single active program of the context.
func (p *Program) SetUsed(ctx Context) {
	ctx.UseProgram(p.handle)
}

// Returns true if this program is the one currently bound to the context.
func (p *Program) IsUsed(ctx Context) bool {
	return p.handle != 0 && ctx.ActiveProgram() == p.handle
}

// Upload a matrix uniform. The program must be the active one. Uniforms
// that do not exist in the program are silently ignored.
func (p *Program) SetUniformMat4(ctx Context, name string, m types.Mat4) {
	loc, found := p.uniforms[name]
	if !found {
		loc = ctx.UniformLocation(p.handle, name)
		p.uniforms[name] = loc
	}
	if loc < 0 {
		return
	}
	ctx.UniformMatrix4(loc, m)
}

// Free the program. If it is the active program the binding is reset first.
func (p *Program) Release(ctx Context) {
	if p == nil || p.handle == 0 {
		return
	}
	if p.IsUsed(ctx) {
		ctx.UseProgram(0)
	}
	ctx.DeleteProgram(p.handle)
	p.handle = 0
	p.uniforms = nil
}

func (p *Program) String() string {
	return fmt.Sprintf("program #%d", p.handle)
}
