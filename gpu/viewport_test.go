package gpu_test

import (
	"math"
	"testing"

	"github.com/stephaneworkspace/R3D3/gpu"
	"github.com/stephaneworkspace/R3D3/gpu/gputest"
	"github.com/stephaneworkspace/R3D3/types"
)

func TestViewport(t *testing.T) {
	if _, err := gpu.NewViewportForWindow(0, 600); err != gpu.ErrInvalidViewport {
		t.Fatalf("expected to get %v; got %v", gpu.ErrInvalidViewport, err)
	}

	ctx := gputest.New()
	vp, err := gpu.NewViewportForWindow(800, 600)
	if err != nil {
		t.Fatal(err)
	}

	vp.UpdateSize(1024, 512)
	if ctx.ViewportW != 0 {
		t.Fatal("expected UpdateSize not to touch the context")
	}

	vp.UpdateSize(-1, 0)
	vp.SetUsed(ctx)
	if ctx.ViewportW != 1024 || ctx.ViewportH != 512 {
		t.Fatalf("expected viewport 1024x512; got %dx%d", ctx.ViewportW, ctx.ViewportH)
	}
	if vp.Aspect() != 2 {
		t.Fatalf("expected aspect 2; got %f", vp.Aspect())
	}
}

func TestColorBuffer(t *testing.T) {
	for _, c := range []types.Vec3{
		types.XYZ(1.5, 0, 0),
		types.XYZ(float32(math.NaN()), 0, 0),
	} {
		if _, err := gpu.NewColorBuffer(c, false); err != gpu.ErrInvalidColor {
			t.Fatalf("expected to get %v for %v; got %v", gpu.ErrInvalidColor, c, err)
		}
	}

	ctx := gputest.New()
	cb, err := gpu.NewColorBuffer(types.XYZ(0.3, 0.3, 0.5), false)
	if err != nil {
		t.Fatal(err)
	}
	cb.SetUsed(ctx)
	cb.Clear(ctx)

	if ctx.ClearRGBA != [4]float32{0.3, 0.3, 0.5, 1} {
		t.Fatalf("expected clear color (0.3, 0.3, 0.5, 1); got %v", ctx.ClearRGBA)
	}
	if ctx.Clears[0] != gpu.ColorBit {
		t.Fatalf("expected color-only clear; got %d", ctx.Clears[0])
	}

	if err = cb.SetClearColor(types.XYZ(0, 0, -1)); err != gpu.ErrInvalidColor {
		t.Fatalf("expected to get %v; got %v", gpu.ErrInvalidColor, err)
	}
	if err = cb.SetClearColor(types.XYZ(0, 1, 0)); err != nil {
		t.Fatal(err)
	}
	if ctx.ClearRGBA[1] != 0.3 {
		t.Fatal("expected new clear color to be deferred until SetUsed")
	}
	cb.SetUsed(ctx)
	if ctx.ClearRGBA != [4]float32{0, 1, 0, 1} {
		t.Fatalf("expected clear color (0, 1, 0, 1); got %v", ctx.ClearRGBA)
	}
}

func TestColorBufferWithDepth(t *testing.T) {
	ctx := gputest.New()
	cb, _ := gpu.NewColorBuffer(types.XYZ(0, 0, 0), true)
	cb.SetUsed(ctx)
	cb.Clear(ctx)

	if !ctx.DepthTestEnabled() {
		t.Fatal("expected depth test to be enabled")
	}
	if ctx.Clears[0] != gpu.ColorBit|gpu.DepthBit {
		t.Fatalf("expected color and depth clear; got %d", ctx.Clears[0])
	}
}

func TestMesh(t *testing.T) {
	ctx := gputest.New()
	prog, _ := gpu.NewProgramFromSources(ctx, vertSrc, fragSrc)
	verts := make([]float32, 3*7)
	m := gpu.NewMesh(ctx, verts, gpu.Triangles)
	m.Render(ctx, prog, types.Ident4())

	if m.VertexCount() != 3 {
		t.Fatalf("expected 3 vertices; got %d", m.VertexCount())
	}
	if len(ctx.Draws) != 1 || ctx.Draws[0].Count != 3 || ctx.Draws[0].Mode != gpu.Triangles {
		t.Fatalf("expected one triangle draw call; got %+v", ctx.Draws)
	}

	m.Release(ctx)
	if ctx.LiveBuffers() != 0 {
		t.Fatalf("expected mesh buffers to be released; got %d", ctx.LiveBuffers())
	}
}
