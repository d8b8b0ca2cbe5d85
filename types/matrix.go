package types

import "github.com/go-gl/mathgl/mgl32"

const floatCmpEpsilon = 1e-6

// A column-major 4x4 matrix.
type Mat4 mgl32.Mat4

// Create identity matrix.
func Ident4() Mat4 {
	return Mat4(mgl32.Ident4())
}

// Create a perspective projection matrix. The fovy argument is specified in radians.
func Perspective4(fovy, aspect, near, far float32) Mat4 {
	return Mat4(mgl32.Perspective(fovy, aspect, near, far))
}

// Create a view matrix for an eye located at eye, looking at center with
// the given up vector.
func LookAtV(eye, center, up Vec3) Mat4 {
	return Mat4(mgl32.LookAtV(mgl32.Vec3(eye), mgl32.Vec3(center), mgl32.Vec3(up)))
}

// Multiply two 4x4 matrices.
func (m Mat4) Mul4(m2 Mat4) Mat4 {
	return Mat4(mgl32.Mat4(m).Mul4(mgl32.Mat4(m2)))
}

// Multiply matrix with a 4 component column vector.
func (m Mat4) Mul4x1(v Vec4) Vec4 {
	return Vec4(mgl32.Mat4(m).Mul4x1(mgl32.Vec4(v)))
}

// Check whether two matrices are equal within the given tolerance.
func (m Mat4) ApproxEqual(m2 Mat4, eps float32) bool {
	return mgl32.Mat4(m).ApproxEqualThreshold(mgl32.Mat4(m2), eps)
}

// Transform a point by this matrix and apply the perspective divide.
func (m Mat4) TransformPoint(v Vec3) Vec3 {
	out := m.Mul4x1(v.Vec4(1))
	if abs(out[3]) < floatCmpEpsilon {
		return out.Vec3()
	}
	return out.Mul(1.0 / out[3]).Vec3()
}
