package renderer

import (
	"github.com/stephaneworkspace/R3D3/asset"
	"github.com/stephaneworkspace/R3D3/gpu"
)

// ShaderReport describes a successful shader check.
type ShaderReport struct {
	VertexPath   string
	FragmentPath string
	GLVersion    string
}

// Compile and link a shader pair in a hidden window. Compile and link
// failures are returned as *gpu.CompileError and *gpu.LinkError.
func CheckShaders(vertexPath, fragmentPath string) (*ShaderReport, error) {
	sources, err := asset.LoadShaderSources(vertexPath, fragmentPath)
	if err != nil {
		return nil, err
	}

	win, err := openWindow("shader check", 64, 64, false, false)
	if err != nil {
		return nil, err
	}
	defer win.close()

	report, err := checkSources(win.ctx, sources)
	if err != nil {
		return nil, err
	}
	report.GLVersion = win.ctx.Version()
	return report, nil
}

func checkSources(ctx gpu.Context, sources *asset.ShaderSources) (*ShaderReport, error) {
	program, err := gpu.NewProgramFromSources(ctx, sources.Vertex, sources.Fragment)
	if err != nil {
		return nil, err
	}
	program.Release(ctx)

	return &ShaderReport{
		VertexPath:   sources.VertexPath,
		FragmentPath: sources.FragmentPath,
	}, nil
}
