package mesh

// Mesh is tessellated geometry ready for GPU upload: packed vertices plus
// triangle-list indices.
type Mesh struct {
	Vertices []GPUVertex
	Indices  []uint32
}

// VertexBytes marshals all vertices into one contiguous buffer for vertex
// buffer upload.
//
// Returns:
//   - []byte: the packed vertex data, 32 bytes per vertex
func (m *Mesh) VertexBytes() []byte {
	buf := make([]byte, 0, len(m.Vertices)*32)
	for i := range m.Vertices {
		buf = append(buf, m.Vertices[i].Marshal()...)
	}
	return buf
}

// IndexBytes returns the index data as little-endian uint32 bytes for index
// buffer upload.
//
// Returns:
//   - []byte: the packed index data, 4 bytes per index
func (m *Mesh) IndexBytes() []byte {
	buf := make([]byte, 0, len(m.Indices)*4)
	for _, idx := range m.Indices {
		buf = append(buf, byte(idx), byte(idx>>8), byte(idx>>16), byte(idx>>24))
	}
	return buf
}

// Plane tessellates a square grid centered at the origin on the XZ plane.
// resolution is the number of quads per side, so the grid has
// (resolution+1)^2 vertices and resolution^2*2 triangles. Triangles wind
// counter-clockwise viewed from +Y, normals point up, and UVs span [0, 1]
// across the full extent.
//
// Parameters:
//   - size: the edge length of the plane in world units
//   - resolution: the number of quads per side, minimum 1
//
// Returns:
//   - Mesh: the tessellated plane
func Plane(size float32, resolution int) Mesh {
	if resolution < 1 {
		resolution = 1
	}

	side := resolution + 1
	m := Mesh{
		Vertices: make([]GPUVertex, 0, side*side),
		Indices:  make([]uint32, 0, resolution*resolution*6),
	}

	half := size / 2
	step := size / float32(resolution)
	for z := range side {
		for x := range side {
			u := float32(x) / float32(resolution)
			v := float32(z) / float32(resolution)
			m.Vertices = append(m.Vertices, GPUVertex{
				Position: [3]float32{-half + float32(x)*step, 0, -half + float32(z)*step},
				Normal:   [3]float32{0, 1, 0},
				TexCoord: [2]float32{u, v},
			})
		}
	}

	for z := range resolution {
		for x := range resolution {
			topLeft := uint32(z*side + x)
			topRight := topLeft + 1
			bottomLeft := uint32((z+1)*side + x)
			bottomRight := bottomLeft + 1

			// CCW from above (+Y): X grows right, Z grows toward the viewer.
			m.Indices = append(m.Indices,
				topLeft, bottomLeft, topRight,
				topRight, bottomLeft, bottomRight,
			)
		}
	}

	return m
}

// BasePositions extracts the object-space vertex positions, the input shape
// expected by the CPU wave field evaluator.
//
// Returns:
//   - [][3]float32: one position per vertex, in vertex order
func (m *Mesh) BasePositions() [][3]float32 {
	out := make([][3]float32, len(m.Vertices))
	for i := range m.Vertices {
		out[i] = m.Vertices[i].Position
	}
	return out
}
