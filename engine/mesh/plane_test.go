package mesh

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlaneCounts(t *testing.T) {
	tests := []struct {
		name       string
		size       float32
		resolution int
		wantVerts  int
		wantIdx    int
	}{
		{name: "single quad", size: 2, resolution: 1, wantVerts: 4, wantIdx: 6},
		{name: "small grid", size: 10, resolution: 4, wantVerts: 25, wantIdx: 96},
		{name: "default grid", size: 64, resolution: 256, wantVerts: 257 * 257, wantIdx: 256 * 256 * 6},
		{name: "resolution clamps to one", size: 2, resolution: 0, wantVerts: 4, wantIdx: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Plane(tt.size, tt.resolution)
			assert.Len(t, m.Vertices, tt.wantVerts)
			assert.Len(t, m.Indices, tt.wantIdx)
		})
	}
}

func TestPlaneGeometry(t *testing.T) {
	size := float32(8)
	m := Plane(size, 4)
	half := size / 2

	for i, v := range m.Vertices {
		assert.Zero(t, v.Position[1], "vertex %d sits on the plane", i)
		assert.Equal(t, [3]float32{0, 1, 0}, v.Normal, "vertex %d normal", i)
		assert.GreaterOrEqual(t, v.Position[0], -half)
		assert.LessOrEqual(t, v.Position[0], half)
		assert.GreaterOrEqual(t, v.Position[2], -half)
		assert.LessOrEqual(t, v.Position[2], half)
		assert.GreaterOrEqual(t, v.TexCoord[0], float32(0))
		assert.LessOrEqual(t, v.TexCoord[0], float32(1))
	}

	// Corners: first vertex at (-half, -half) with uv (0, 0), last at
	// (half, half) with uv (1, 1).
	first := m.Vertices[0]
	assert.Equal(t, [3]float32{-half, 0, -half}, first.Position)
	assert.Equal(t, [2]float32{0, 0}, first.TexCoord)

	last := m.Vertices[len(m.Vertices)-1]
	assert.Equal(t, [3]float32{half, 0, half}, last.Position)
	assert.Equal(t, [2]float32{1, 1}, last.TexCoord)
}

func TestPlaneWindingIsCounterClockwiseFromAbove(t *testing.T) {
	m := Plane(4, 3)

	for i := 0; i+2 < len(m.Indices); i += 3 {
		a := m.Vertices[m.Indices[i]].Position
		b := m.Vertices[m.Indices[i+1]].Position
		c := m.Vertices[m.Indices[i+2]].Position

		e1 := [3]float32{b[0] - a[0], b[1] - a[1], b[2] - a[2]}
		e2 := [3]float32{c[0] - a[0], c[1] - a[1], c[2] - a[2]}
		crossY := e1[2]*e2[0] - e1[0]*e2[2]

		assert.Positive(t, crossY, "triangle %d faces up", i/3)
	}
}

func TestPlaneIndicesInRange(t *testing.T) {
	m := Plane(4, 5)
	for i, idx := range m.Indices {
		assert.Less(t, int(idx), len(m.Vertices), "index %d", i)
	}
}

func TestMeshByteBuffers(t *testing.T) {
	m := Plane(2, 2)

	vb := m.VertexBytes()
	assert.Len(t, vb, len(m.Vertices)*32)

	// First vertex round-trips through the packed buffer.
	x := math.Float32frombits(binary.LittleEndian.Uint32(vb[0:]))
	assert.InDelta(t, m.Vertices[0].Position[0], x, 1e-6)

	ib := m.IndexBytes()
	assert.Len(t, ib, len(m.Indices)*4)
	for i, idx := range m.Indices {
		assert.Equal(t, idx, binary.LittleEndian.Uint32(ib[i*4:]), "index %d", i)
	}
}

func TestGPUVertexSizeAndMarshal(t *testing.T) {
	v := GPUVertex{
		Position: [3]float32{1, 2, 3},
		Normal:   [3]float32{0, 1, 0},
		TexCoord: [2]float32{0.25, 0.75},
	}
	assert.Equal(t, 32, v.Size())

	buf := v.Marshal()
	assert.Len(t, buf, 32)
	assert.InDelta(t, 3, math.Float32frombits(binary.LittleEndian.Uint32(buf[8:])), 1e-6)
	assert.InDelta(t, 1, math.Float32frombits(binary.LittleEndian.Uint32(buf[16:])), 1e-6)
	assert.InDelta(t, 0.75, math.Float32frombits(binary.LittleEndian.Uint32(buf[28:])), 1e-6)
}

func TestVertexBufferLayoutMatchesVertex(t *testing.T) {
	layouts := VertexBufferLayout()
	assert.Len(t, layouts, 1)
	assert.Equal(t, uint64(32), layouts[0].ArrayStride)
	assert.Len(t, layouts[0].Attributes, 3)
	assert.Equal(t, uint64(12), layouts[0].Attributes[1].Offset)
	assert.Equal(t, uint64(24), layouts[0].Attributes[2].Offset)
}

func TestBasePositions(t *testing.T) {
	m := Plane(4, 2)
	positions := m.BasePositions()

	assert.Len(t, positions, len(m.Vertices))
	for i := range positions {
		assert.Equal(t, m.Vertices[i].Position, positions[i])
	}
}
