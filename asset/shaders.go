package asset

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/stephaneworkspace/R3D3/log"
)

var logger = log.New("asset")

var (
	//go:embed shaders/colored.vert
	defaultVertexShader string

	//go:embed shaders/colored.frag
	defaultFragmentShader string
)

// Display path for the embedded default shaders.
const embeddedPath = "embedded"

var ErrEmptySource = errors.New("resource: empty shader source")

// ResourceLoadError is returned when an asset cannot be located or read.
type ResourceLoadError struct {
	Path string
	Err  error
}

func (e *ResourceLoadError) Error() string {
	return fmt.Sprintf("resource: could not load '%s': %s", e.Path, e.Err)
}

func (e *ResourceLoadError) Unwrap() error {
	return e.Err
}

// The sources of a vertex/fragment shader pair.
type ShaderSources struct {
	VertexPath   string
	Vertex       string
	FragmentPath string
	Fragment     string
}

// Load a vertex/fragment shader pair. Each path may point to a local file
// or an http(s) URL; an empty path selects the embedded default for that
// stage. A fragment path that is a bare file name is looked up next to the
// vertex shader.
func LoadShaderSources(vertexPath, fragmentPath string) (*ShaderSources, error) {
	vertRes, vert, err := loadText(vertexPath, defaultVertexShader, nil)
	if err != nil {
		return nil, err
	}

	var relTo *Resource
	if vertexPath != "" && isBareName(fragmentPath) {
		relTo = vertRes
	}
	fragRes, frag, err := loadText(fragmentPath, defaultFragmentShader, relTo)
	if err != nil {
		return nil, err
	}

	return &ShaderSources{
		VertexPath:   vertRes.Path(),
		Vertex:       vert,
		FragmentPath: fragRes.Path(),
		Fragment:     frag,
	}, nil
}

func loadText(path, fallback string, relTo *Resource) (*Resource, string, error) {
	var res *Resource
	if path == "" {
		res = NewResourceFromStream(embeddedPath, strings.NewReader(fallback))
	} else {
		var err error
		if res, err = NewResource(path, relTo); err != nil {
			return nil, "", &ResourceLoadError{Path: path, Err: err}
		}
	}
	if res.IsRemote() {
		logger.Infof("fetching shader source from %s", res.Path())
	}

	data, err := res.ReadAllAndClose()
	if err != nil {
		return nil, "", &ResourceLoadError{Path: res.Path(), Err: err}
	}
	if strings.TrimSpace(string(data)) == "" {
		return nil, "", &ResourceLoadError{Path: res.Path(), Err: ErrEmptySource}
	}
	return res, string(data), nil
}

// Returns true for paths without a directory component or URL scheme.
func isBareName(path string) bool {
	return path != "" && !strings.ContainsAny(path, `/\:`)
}
