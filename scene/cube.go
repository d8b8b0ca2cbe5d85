package scene

import "github.com/stephaneworkspace/R3D3/types"

// Face colors for the +X, -X, +Y, -Y, +Z, -Z sides.
var cubeFaceColors = [6]types.Vec4{
	{0.9, 0.3, 0.3, 1},
	{0.5, 0.1, 0.1, 1},
	{0.3, 0.9, 0.3, 1},
	{0.1, 0.5, 0.1, 1},
	{0.3, 0.3, 0.9, 1},
	{0.1, 0.1, 0.5, 1},
}

// Generate the triangle list for an axis-aligned cube centered at center.
// Each vertex is laid out as position (xyz) followed by color (rgba).
func CubeVertices(center types.Vec3, size float32) []float32 {
	h := size * 0.5

	// Counter-clockwise quads when viewed from outside the cube.
	faces := [6][4]types.Vec3{
		{{h, -h, -h}, {h, h, -h}, {h, h, h}, {h, -h, h}},
		{{-h, h, -h}, {-h, -h, -h}, {-h, -h, h}, {-h, h, h}},
		{{h, h, -h}, {-h, h, -h}, {-h, h, h}, {h, h, h}},
		{{-h, -h, -h}, {h, -h, -h}, {h, -h, h}, {-h, -h, h}},
		{{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h}},
		{{-h, h, -h}, {h, h, -h}, {h, -h, -h}, {-h, -h, -h}},
	}

	out := make([]float32, 0, 6*6*7)
	for faceIndex, quad := range faces {
		color := cubeFaceColors[faceIndex]
		for _, corner := range [6]int{0, 1, 2, 0, 2, 3} {
			p := center.Add(quad[corner])
			out = append(out, p[0], p[1], p[2], color[0], color[1], color[2], color[3])
		}
	}
	return out
}
