package gpu

import (
	"errors"
	"fmt"
)

var (
	ErrNoShaders       = errors.New("gpu: no shaders supplied for linking")
	ErrShaderReleased  = errors.New("gpu: shader has already been released")
	ErrCreateShader    = errors.New("gpu: could not allocate shader object")
	ErrCreateProgram   = errors.New("gpu: could not allocate program object")
	ErrInvalidViewport = errors.New("gpu: viewport dimensions must be positive")
	ErrInvalidColor    = errors.New("gpu: color components must be in the [0, 1] range")
)

// Diagnostics used when the driver reports a failure with an empty log.
const (
	EmptyCompileLog = "compilation failed with no info log"
	EmptyLinkLog    = "linking failed with no info log"
)

// CompileError is returned when a shader stage fails to compile. Log holds
// the compiler diagnostic exactly as reported by the driver, or
// EmptyCompileLog if the driver reported nothing.
type CompileError struct {
	Kind ShaderKind
	Log  string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("gpu: could not compile %s shader:\n%s", e.Kind, e.Log)
}

// LinkError is returned when a program fails to link. Log holds the linker
// diagnostic exactly as reported by the driver, or EmptyLinkLog if the
// driver reported nothing.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("gpu: could not link program:\n%s", e.Log)
}
