package render

import (
	"github.com/taigrr/linalg/pkg/linalg"
	"github.com/taigrr/linalg/pkg/models"
)

// Wireframe renders 3D wireframe objects.
type Wireframe struct {
	camera *Camera
	fb     *Framebuffer
}

// NewWireframe creates a new wireframe renderer.
func NewWireframe(camera *Camera, fb *Framebuffer) *Wireframe {
	return &Wireframe{
		camera: camera,
		fb:     fb,
	}
}

// DrawLine3D draws a line in 3D space.
func (w *Wireframe) DrawLine3D(p1, p2 linalg.Vec3[float64], color Color) {
	// Project both endpoints
	x1, y1, _, vis1 := w.camera.WorldToScreen(p1, w.fb.Width, w.fb.Height)
	x2, y2, _, vis2 := w.camera.WorldToScreen(p2, w.fb.Width, w.fb.Height)

	// Simple clipping: only draw if at least one point is visible
	// (proper line clipping would be more complex)
	if !vis1 && !vis2 {
		return
	}

	w.fb.DrawLineV(linalg.V2(x1, y1), linalg.V2(x2, y2), color)
}

// DrawMesh draws every unique edge of the mesh after applying transform.
func (w *Wireframe) DrawMesh(mesh *models.Mesh, transform linalg.Mat4[float64], color Color) {
	verts := make([]linalg.Vec3[float64], len(mesh.Vertices))
	for i, v := range mesh.Vertices {
		verts[i] = transform.MulPoint(v)
	}

	for _, edge := range mesh.Edges() {
		w.DrawLine3D(verts[edge[0]], verts[edge[1]], color)
	}
}

// DrawCube draws an axis-aligned wireframe cube.
func (w *Wireframe) DrawCube(center linalg.Vec3[float64], size float64, color Color) {
	w.DrawTransformedCube(linalg.Translate(center), size, color)
}

// DrawTransformedCube draws a wireframe cube with a transformation matrix.
func (w *Wireframe) DrawTransformedCube(transform linalg.Mat4[float64], size float64, color Color) {
	half := size / 2

	// Local vertices (centered at origin)
	localVerts := [8]linalg.Vec3[float64]{
		{X: -half, Y: -half, Z: -half},
		{X: half, Y: -half, Z: -half},
		{X: half, Y: half, Z: -half},
		{X: -half, Y: half, Z: -half},
		{X: -half, Y: -half, Z: half},
		{X: half, Y: -half, Z: half},
		{X: half, Y: half, Z: half},
		{X: -half, Y: half, Z: half},
	}

	var worldVerts [8]linalg.Vec3[float64]
	for i, v := range localVerts {
		worldVerts[i] = transform.MulPoint(v)
	}

	// 12 edges of the cube
	edges := [][2]int{
		// Back face
		{0, 1},
		{1, 2},
		{2, 3},
		{3, 0},
		// Front face
		{4, 5},
		{5, 6},
		{6, 7},
		{7, 4},
		// Connecting edges
		{0, 4},
		{1, 5},
		{2, 6},
		{3, 7},
	}

	for _, edge := range edges {
		w.DrawLine3D(worldVerts[edge[0]], worldVerts[edge[1]], color)
	}
}

// DrawAxes draws the coordinate axes at the origin.
func (w *Wireframe) DrawAxes(length float64) {
	origin := linalg.Vec3[float64]{}
	w.DrawLine3D(origin, linalg.V3(length, 0.0, 0.0), ColorRed)   // X axis
	w.DrawLine3D(origin, linalg.V3(0.0, length, 0.0), ColorGreen) // Y axis
	w.DrawLine3D(origin, linalg.V3(0.0, 0.0, length), ColorBlue)  // Z axis
}

// DrawGrid draws a grid on the XZ plane at y=0.
func (w *Wireframe) DrawGrid(size, step float64, color Color) {
	half := size / 2
	for x := -half; x <= half; x += step {
		w.DrawLine3D(linalg.V3(x, 0, -half), linalg.V3(x, 0, half), color)
	}
	for z := -half; z <= half; z += step {
		w.DrawLine3D(linalg.V3(-half, 0, z), linalg.V3(half, 0, z), color)
	}
}

// DrawPoint draws a point as a small cross.
func (w *Wireframe) DrawPoint(pos linalg.Vec3[float64], size float64, color Color) {
	half := size / 2
	w.DrawLine3D(linalg.V3(pos.X-half, pos.Y, pos.Z), linalg.V3(pos.X+half, pos.Y, pos.Z), color)
	w.DrawLine3D(linalg.V3(pos.X, pos.Y-half, pos.Z), linalg.V3(pos.X, pos.Y+half, pos.Z), color)
	w.DrawLine3D(linalg.V3(pos.X, pos.Y, pos.Z-half), linalg.V3(pos.X, pos.Y, pos.Z+half), color)
}
