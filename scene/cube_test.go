package scene

import (
	"testing"

	"github.com/stephaneworkspace/R3D3/types"
)

func TestCubeVertices(t *testing.T) {
	center := types.XYZ(1, 1, 1)
	verts := CubeVertices(center, 2)

	expLen := 36 * 7
	if len(verts) != expLen {
		t.Fatalf("expected %d floats; got %d", expLen, len(verts))
	}

	for i := 0; i < len(verts); i += 7 {
		p := types.XYZ(verts[i], verts[i+1], verts[i+2])
		for axis := 0; axis < 3; axis++ {
			if p[axis] != 0 && p[axis] != 2 {
				t.Fatalf("expected vertex %d to lie on a cube corner; got %v", i/7, p)
			}
		}
		if verts[i+6] != 1 {
			t.Fatalf("expected opaque vertex color; got alpha %f", verts[i+6])
		}
	}
}
