package types

import "testing"

func TestNormalizeZeroVector(t *testing.T) {
	v := Vec3{}.Normalize()
	if v != (Vec3{}) {
		t.Fatalf("expected zero vector; got %v", v)
	}
}

func TestNormalize(t *testing.T) {
	v := XYZ(3, 0, 4).Normalize()
	if !v.ApproxEqual(XYZ(0.6, 0, 0.8), 1e-6) {
		t.Fatalf("expected (0.6, 0, 0.8); got %v", v)
	}
	if l := v.Len(); abs(l-1) > 1e-6 {
		t.Fatalf("expected unit length; got %f", l)
	}
}

func TestCross(t *testing.T) {
	x := XYZ(1, 0, 0)
	y := XYZ(0, 1, 0)
	if z := x.Cross(y); z != XYZ(0, 0, 1) {
		t.Fatalf("expected x cross y to be +Z; got %v", z)
	}
}

func TestLookAtMapsTargetOntoViewAxis(t *testing.T) {
	eye := XYZ(0, 5, 0)
	view := LookAtV(eye, Vec3{}, XYZ(0, 0, 1))

	// The target sits in front of the camera, along -Z in view space.
	p := view.TransformPoint(Vec3{})
	if !p.ApproxEqual(XYZ(0, 0, -5), 1e-5) {
		t.Fatalf("expected target at (0, 0, -5) in view space; got %v", p)
	}
}

func TestMatrixMultiplyIdentity(t *testing.T) {
	proj := Perspective4(1.2, 1.5, 0.1, 100)
	if !proj.Mul4(Ident4()).ApproxEqual(proj, 1e-6) {
		t.Fatal("expected multiplying by identity to leave matrix unchanged")
	}
}
