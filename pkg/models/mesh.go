// Package models provides 3D model loading and representation.
package models

import (
	"github.com/taigrr/linalg/pkg/linalg"
)

// Mesh represents triangle geometry as vertex positions and index triples.
type Mesh struct {
	Name     string
	Vertices []linalg.Vec3[float64]
	Faces    [][3]int // Indices into Vertices

	// Bounding box (calculated on load)
	BoundsMin linalg.Vec3[float64]
	BoundsMax linalg.Vec3[float64]

	edges [][2]int
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{
		Name:     name,
		Vertices: make([]linalg.Vec3[float64], 0),
		Faces:    make([][3]int, 0),
	}
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Vertices) == 0 {
		return
	}

	m.BoundsMin = m.Vertices[0]
	m.BoundsMax = m.Vertices[0]

	for _, v := range m.Vertices[1:] {
		m.BoundsMin = m.BoundsMin.Min(v)
		m.BoundsMax = m.BoundsMax.Max(v)
	}
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() linalg.Vec3[float64] {
	return m.BoundsMin.Add(m.BoundsMax).Scale(0.5)
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() linalg.Vec3[float64] {
	return m.BoundsMax.Sub(m.BoundsMin)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// Edges returns the unique undirected edges of the mesh. The list is
// computed on first use and cached; call InvalidateEdges after mutating
// Faces.
func (m *Mesh) Edges() [][2]int {
	if m.edges != nil {
		return m.edges
	}

	seen := make(map[[2]int]struct{}, len(m.Faces)*3)
	edges := make([][2]int, 0, len(m.Faces)*3)

	add := func(a, b int) {
		if a > b {
			a, b = b, a
		}
		key := [2]int{a, b}
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		edges = append(edges, key)
	}

	for _, f := range m.Faces {
		add(f[0], f[1])
		add(f[1], f[2])
		add(f[2], f[0])
	}

	m.edges = edges
	return edges
}

// InvalidateEdges discards the cached edge list.
func (m *Mesh) InvalidateEdges() {
	m.edges = nil
}

// EdgeCount returns the number of unique edges.
func (m *Mesh) EdgeCount() int {
	return len(m.Edges())
}

// Transform applies a transformation matrix to all vertices and
// recomputes the bounding box.
func (m *Mesh) Transform(mat linalg.Mat4[float64]) {
	for i := range m.Vertices {
		m.Vertices[i] = mat.MulPoint(m.Vertices[i])
	}
	m.CalculateBounds()
}

// Clone creates a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	clone := &Mesh{
		Name:      m.Name,
		Vertices:  make([]linalg.Vec3[float64], len(m.Vertices)),
		Faces:     make([][3]int, len(m.Faces)),
		BoundsMin: m.BoundsMin,
		BoundsMax: m.BoundsMax,
	}
	copy(clone.Vertices, m.Vertices)
	copy(clone.Faces, m.Faces)
	return clone
}

// Cube builds an axis-aligned cube of the given edge length centered at
// the origin.
func Cube(size float64) *Mesh {
	h := size / 2

	mesh := NewMesh("cube")
	mesh.Vertices = []linalg.Vec3[float64]{
		linalg.V3(-h, -h, -h),
		linalg.V3(h, -h, -h),
		linalg.V3(h, h, -h),
		linalg.V3(-h, h, -h),
		linalg.V3(-h, -h, h),
		linalg.V3(h, -h, h),
		linalg.V3(h, h, h),
		linalg.V3(-h, h, h),
	}
	mesh.Faces = [][3]int{
		// Back face (z = -h)
		{0, 2, 1}, {0, 3, 2},
		// Front face (z = +h)
		{4, 5, 6}, {4, 6, 7},
		// Left face (x = -h)
		{0, 4, 7}, {0, 7, 3},
		// Right face (x = +h)
		{1, 2, 6}, {1, 6, 5},
		// Bottom face (y = -h)
		{0, 1, 5}, {0, 5, 4},
		// Top face (y = +h)
		{3, 7, 6}, {3, 6, 2},
	}
	mesh.CalculateBounds()
	return mesh
}
