package renderer

import (
	"errors"
	"testing"

	"github.com/stephaneworkspace/R3D3/asset"
	"github.com/stephaneworkspace/R3D3/gpu"
	"github.com/stephaneworkspace/R3D3/gpu/gputest"
)

func TestCheckSources(t *testing.T) {
	sources, err := asset.LoadShaderSources("", "")
	if err != nil {
		t.Fatal(err)
	}

	ctx := gputest.New()
	report, err := checkSources(ctx, sources)
	if err != nil {
		t.Fatal(err)
	}
	if report.VertexPath != "embedded" || report.FragmentPath != "embedded" {
		t.Fatalf("expected embedded source paths; got %+v", report)
	}
	if ctx.LivePrograms() != 0 || ctx.LiveShaders() != 0 {
		t.Fatal("expected check to release the program and its shaders")
	}
}

func TestCheckSourcesLinkFailure(t *testing.T) {
	sources, _ := asset.LoadShaderSources("", "")

	ctx := gputest.New()
	ctx.LinkFunc = func(_ []uint32) (bool, string) {
		return false, "error: varying 'Color' not written"
	}

	_, err := checkSources(ctx, sources)
	var linkErr *gpu.LinkError
	if !errors.As(err, &linkErr) {
		t.Fatalf("expected a link error; got %v", err)
	}
	if linkErr.Log != "error: varying 'Color' not written" {
		t.Fatalf("expected raw link log; got %q", linkErr.Log)
	}
}
