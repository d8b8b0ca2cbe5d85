package gpu_test

import (
	"reflect"
	"testing"

	"github.com/stephaneworkspace/R3D3/gpu"
	"github.com/stephaneworkspace/R3D3/gpu/gputest"
	"github.com/stephaneworkspace/R3D3/types"
)

func setupLines(t *testing.T) (*gputest.Context, *gpu.Program, *gpu.DebugLineSet) {
	ctx := gputest.New()
	prog, err := gpu.NewProgramFromSources(ctx, vertSrc, fragSrc)
	if err != nil {
		t.Fatal(err)
	}
	return ctx, prog, gpu.NewDebugLineSet(ctx, prog)
}

func TestEmptyLineSetRender(t *testing.T) {
	ctx, _, lines := setupLines(t)
	lines.Render(ctx, nil, types.Ident4())

	if lines.Uploads() != 0 || ctx.Uploads() != 0 {
		t.Fatalf("expected no uploads for an empty set; got %d", lines.Uploads())
	}
	if len(ctx.Draws) != 0 {
		t.Fatalf("expected no draw calls; got %d", len(ctx.Draws))
	}
}

func TestMarkerGeometry(t *testing.T) {
	_, _, lines := setupLines(t)
	lines.Marker(types.XYZ(1, 2, 3), 2)

	if lines.VertexCount() != 6 {
		t.Fatalf("expected marker to have 6 vertices; got %d", lines.VertexCount())
	}

	v := lines.Vertices()
	expEnds := []types.Vec3{
		{0, 2, 3}, {2, 2, 3},
		{1, 1, 3}, {1, 3, 3},
		{1, 2, 2}, {1, 2, 4},
	}
	for i, exp := range expEnds {
		got := types.XYZ(v[i*7], v[i*7+1], v[i*7+2])
		if got != exp {
			t.Fatalf("expected vertex %d to be %v; got %v", i, exp, got)
		}
	}
}

func TestMarkerUpdateOnlyTouchesOwnBlock(t *testing.T) {
	ctx, _, lines := setupLines(t)
	lines.Marker(types.XYZ(0, 0, 0), 1)
	target := lines.Marker(types.XYZ(1, 1, 1), 1)
	lines.Marker(types.XYZ(2, 2, 2), 1)
	lines.Render(ctx, nil, types.Ident4())

	if ctx.FullUploads != 1 {
		t.Fatalf("expected a single full upload after adding markers; got %d", ctx.FullUploads)
	}

	before := lines.Vertices()
	target.UpdatePosition(types.XYZ(5, 5, 5))
	target.UpdatePosition(types.XYZ(7, 8, 9))
	after := lines.Vertices()

	blockLen := 6 * 7
	for block := 0; block < 3; block++ {
		b0 := before[block*blockLen : (block+1)*blockLen]
		b1 := after[block*blockLen : (block+1)*blockLen]
		changed := !reflect.DeepEqual(b0, b1)
		if block == 1 && !changed {
			t.Fatal("expected updated marker geometry to change")
		}
		if block != 1 && changed {
			t.Fatalf("expected marker %d to remain unchanged", block)
		}
	}
	if target.Position() != types.XYZ(7, 8, 9) {
		t.Fatalf("expected marker position to be (7, 8, 9); got %v", target.Position())
	}

	if !lines.Dirty() {
		t.Fatal("expected line set to be dirty after a marker update")
	}
	lines.Render(ctx, nil, types.Ident4())
	if ctx.PartialUploads != 1 || ctx.FullUploads != 1 {
		t.Fatalf("expected a single partial upload; got %d partial and %d full", ctx.PartialUploads, ctx.FullUploads)
	}

	draw := ctx.Draws[len(ctx.Draws)-1]
	gpuData := ctx.BufferContents(ctx.VertexArrayBuffer(draw.VAO))
	if !reflect.DeepEqual(gpuData, after) {
		t.Fatal("expected GPU buffer to match the CPU-side vertex data")
	}
}

func TestRenderWithoutChangesDoesNotUpload(t *testing.T) {
	ctx, _, lines := setupLines(t)
	lines.Marker(types.XYZ(0, 0, 0), 1)
	lines.Render(ctx, nil, types.Ident4())
	uploads := lines.Uploads()

	lines.Render(ctx, nil, types.Ident4())
	lines.Render(ctx, nil, types.Ident4())
	if lines.Uploads() != uploads || ctx.Uploads() != uploads {
		t.Fatalf("expected %d uploads; got %d", uploads, lines.Uploads())
	}
	if len(ctx.Draws) != 3 {
		t.Fatalf("expected 3 draw calls; got %d", len(ctx.Draws))
	}
}

func TestGrowingSetReuploadsEverything(t *testing.T) {
	ctx, _, lines := setupLines(t)
	lines.Marker(types.XYZ(0, 0, 0), 1)
	lines.Render(ctx, nil, types.Ident4())

	lines.Line(types.XYZ(0, 0, 0), types.XYZ(1, 0, 0), types.XYZW(1, 1, 1, 1))
	lines.Render(ctx, nil, types.Ident4())

	if ctx.FullUploads != 2 {
		t.Fatalf("expected growth to trigger a full upload; got %d", ctx.FullUploads)
	}
	draw := ctx.Draws[len(ctx.Draws)-1]
	if draw.Count != 8 || draw.Mode != gpu.Lines {
		t.Fatalf("expected 8 line vertices to be drawn; got %d (mode %d)", draw.Count, draw.Mode)
	}
}

func TestRenderUsesProgramAndMatrix(t *testing.T) {
	ctx, prog, lines := setupLines(t)
	lines.Marker(types.XYZ(0, 0, 0), 1)

	vp := types.Perspective4(1, 1.5, 0.1, 100)
	cb, _ := gpu.NewColorBuffer(types.XYZ(0, 0, 0), true)
	cb.SetUsed(ctx)
	lines.Render(ctx, cb, vp)

	draw := ctx.Draws[0]
	if draw.Program != prog.Handle() {
		t.Fatalf("expected draw with program %d; got %d", prog.Handle(), draw.Program)
	}
	if draw.DepthTest {
		t.Fatal("expected lines to be drawn with depth test disabled")
	}
	if !ctx.DepthTestEnabled() {
		t.Fatal("expected depth test to be restored after drawing lines")
	}
	if got, _ := ctx.Uniform(prog.Handle(), gpu.ViewProjectionUniform); got != vp {
		t.Fatalf("expected view-projection uniform %v; got %v", vp, got)
	}
}

func TestLineSetRelease(t *testing.T) {
	ctx, prog, lines := setupLines(t)
	lines.Marker(types.XYZ(0, 0, 0), 1)
	lines.Render(ctx, nil, types.Ident4())

	lines.Release(ctx)
	lines.Release(ctx)
	prog.Release(ctx)
	if ctx.LiveBuffers() != 0 || ctx.LivePrograms() != 0 {
		t.Fatalf("expected all objects to be released; got %d buffers and %d programs", ctx.LiveBuffers(), ctx.LivePrograms())
	}
}
