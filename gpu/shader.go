package gpu

import "strings"

// A compiled shader stage. The handle is only populated after a
// successful compilation.
type Shader struct {
	handle uint32
	kind   ShaderKind
}

// Compile a shader stage from source. On failure the shader object is
// deleted before returning a *CompileError carrying the raw compiler log.
func NewShader(ctx Context, source string, kind ShaderKind) (*Shader, error) {
	handle := ctx.CreateShader(kind)
	if handle == 0 {
		return nil, ErrCreateShader
	}

	ok, infoLog := ctx.CompileShader(handle, source)
	if !ok {
		ctx.DeleteShader(handle)
		if strings.TrimSpace(infoLog) == "" {
			infoLog = EmptyCompileLog
		}
		return nil, &CompileError{Kind: kind, Log: infoLog}
	}

	return &Shader{
		handle: handle,
		kind:   kind,
	}, nil
}

// Compile a vertex shader.
func NewVertexShader(ctx Context, source string) (*Shader, error) {
	return NewShader(ctx, source, VertexShader)
}

// Compile a fragment shader.
func NewFragmentShader(ctx Context, source string) (*Shader, error) {
	return NewShader(ctx, source, FragmentShader)
}

// Get the shader stage.
func (s *Shader) Kind() ShaderKind {
	return s.kind
}

// Get the native shader handle; returns 0 after the shader has been released.
func (s *Shader) Handle() uint32 {
	return s.handle
}

// Free the shader object. Programs linked from this shader stay valid.
func (s *Shader) Release(ctx Context) {
	if s != nil && s.handle != 0 {
		ctx.DeleteShader(s.handle)
		s.handle = 0
	}
}
