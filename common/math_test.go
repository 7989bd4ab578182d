package common

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// mulVec4 applies a column-major 4x4 matrix to a 4-component vector.
func mulVec4(m []float32, v [4]float32) [4]float32 {
	var out [4]float32
	for row := range 4 {
		out[row] = m[row]*v[0] + m[4+row]*v[1] + m[8+row]*v[2] + m[12+row]*v[3]
	}
	return out
}

func TestIdentity(t *testing.T) {
	m := make([]float32, 16)
	for i := range m {
		m[i] = float32(i)
	}
	Identity(m)

	want := []float32{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}
	assert.Equal(t, want, m)
}

func TestMul4Identity(t *testing.T) {
	ident := make([]float32, 16)
	Identity(ident)

	m := []float32{2, 0, 0, 0, 0, 3, 0, 0, 0, 0, 4, 0, 5, 6, 7, 1}
	out := make([]float32, 16)

	Mul4(out, ident, m)
	assert.Equal(t, m, out)

	Mul4(out, m, ident)
	assert.Equal(t, m, out)
}

func TestMul4ComposesTranslations(t *testing.T) {
	a := make([]float32, 16)
	b := make([]float32, 16)
	Identity(a)
	Identity(b)
	a[12], a[13], a[14] = 1, 2, 3
	b[12], b[13], b[14] = 10, 20, 30

	out := make([]float32, 16)
	Mul4(out, a, b)

	assert.InDelta(t, 11, out[12], 1e-6)
	assert.InDelta(t, 22, out[13], 1e-6)
	assert.InDelta(t, 33, out[14], 1e-6)
}

func TestMul4AliasSafe(t *testing.T) {
	a := []float32{2, 0, 0, 0, 0, 2, 0, 0, 0, 0, 2, 0, 1, 1, 1, 1}
	want := make([]float32, 16)
	Mul4(want, a, a)

	// Writing the result over an input must not corrupt the product.
	got := make([]float32, 16)
	copy(got, a)
	Mul4(got, got, a)
	assert.Equal(t, want, got)
}

func TestTransformPoint(t *testing.T) {
	m := make([]float32, 16)
	Identity(m)
	m[12], m[13], m[14] = 5, -2, 7

	x, y, z := TransformPoint(m, 1, 2, 3)
	assert.InDelta(t, 6, x, 1e-6)
	assert.InDelta(t, 0, y, 1e-6)
	assert.InDelta(t, 10, z, 1e-6)
}

func TestNormalize3(t *testing.T) {
	v := [3]float32{3, 0, 4}
	assert.True(t, Normalize3(&v))
	assert.InDelta(t, 0.6, v[0], 1e-6)
	assert.InDelta(t, 0, v[1], 1e-6)
	assert.InDelta(t, 0.8, v[2], 1e-6)

	zero := [3]float32{}
	assert.False(t, Normalize3(&zero))
	assert.Equal(t, [3]float32{}, zero)
}

func TestPerspectiveDepthRange(t *testing.T) {
	out := make([]float32, 16)
	near, far := float32(0.1), float32(500)
	Perspective(out, math.Pi/3, 16.0/9.0, near, far)

	assert.InDelta(t, -1, out[11], 1e-6)
	assert.InDelta(t, 0, out[15], 1e-6)

	// A point on the near plane projects to depth 0, on the far plane to 1.
	atNear := mulVec4(out, [4]float32{0, 0, -near, 1})
	assert.InDelta(t, 0, atNear[2]/atNear[3], 1e-5)

	atFar := mulVec4(out, [4]float32{0, 0, -far, 1})
	assert.InDelta(t, 1, atFar[2]/atFar[3], 1e-4)
}

func TestLookAtMapsEyeToOrigin(t *testing.T) {
	out := make([]float32, 16)
	eye := [3]float32{10, 8, 10}
	target := [3]float32{0, 0, 0}
	LookAt(out, eye[0], eye[1], eye[2], target[0], target[1], target[2], 0, 1, 0)

	v := mulVec4(out, [4]float32{eye[0], eye[1], eye[2], 1})
	assert.InDelta(t, 0, v[0], 1e-4)
	assert.InDelta(t, 0, v[1], 1e-4)
	assert.InDelta(t, 0, v[2], 1e-4)

	// The target lands on the negative Z axis at the eye-target distance.
	dist := float32(math.Sqrt(float64(eye[0]*eye[0] + eye[1]*eye[1] + eye[2]*eye[2])))
	tv := mulVec4(out, [4]float32{target[0], target[1], target[2], 1})
	assert.InDelta(t, 0, tv[0], 1e-4)
	assert.InDelta(t, 0, tv[1], 1e-4)
	assert.InDelta(t, -dist, tv[2], 1e-3)
}

func TestBuildModelMatrixNoRotation(t *testing.T) {
	out := make([]float32, 16)
	BuildModelMatrix(out, 5, 6, 7, 0, 0, 0, 2, 3, 4)

	x, y, z := TransformPoint(out, 1, 1, 1)
	assert.InDelta(t, 7, x, 1e-6)
	assert.InDelta(t, 9, y, 1e-6)
	assert.InDelta(t, 11, z, 1e-6)
}

func TestSliceToBytes(t *testing.T) {
	data := []float32{1, 2, 3}
	buf := SliceToBytes(data)
	assert.Len(t, buf, 12)

	assert.Nil(t, SliceToBytes([]float32{}))
}

func TestCoalesce(t *testing.T) {
	assert.Equal(t, 5, Coalesce(0, 5))
	assert.Equal(t, 3, Coalesce(3, 5))
	assert.Equal(t, "fallback", Coalesce("", "fallback"))
}
