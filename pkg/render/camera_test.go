package render

import (
	"math"
	"testing"

	"github.com/taigrr/linalg/pkg/linalg"
)

func TestCameraDirectionVectors(t *testing.T) {
	cam := NewCamera()
	cam.SetRotation(0, 0)

	forward := cam.Forward()
	if !forward.IsApprox(linalg.V3(0.0, 0.0, -1.0), 1e-9) {
		t.Errorf("forward = %v, want (0, 0, -1)", forward)
	}

	right := cam.Right()
	if !right.IsApprox(linalg.V3(1.0, 0.0, 0.0), 1e-9) {
		t.Errorf("right = %v, want (1, 0, 0)", right)
	}

	up := cam.Up()
	if !up.IsApprox(linalg.V3(0.0, 1.0, 0.0), 1e-9) {
		t.Errorf("up = %v, want (0, 1, 0)", up)
	}

	// Yaw 90 degrees turns the camera toward -X
	cam.SetRotation(0, math.Pi/2)
	if !cam.Forward().IsApprox(linalg.V3(-1.0, 0.0, 0.0), 1e-9) {
		t.Errorf("forward after yaw = %v, want (-1, 0, 0)", cam.Forward())
	}
}

func TestCameraViewMatrixMapsPositionToOrigin(t *testing.T) {
	cam := NewCamera()
	cam.SetPosition(linalg.V3(3.0, 4.0, 5.0))

	eye := cam.ViewMatrix().MulPoint(cam.Position)
	if !eye.IsApprox(linalg.Vec3[float64]{}, 1e-9) {
		t.Errorf("view matrix maps eye to %v, want origin", eye)
	}
}

func TestCameraViewMatrixCaching(t *testing.T) {
	cam := NewCamera()
	before := cam.ViewMatrix()

	// Repeated queries return the cached matrix
	if cam.ViewMatrix() != before {
		t.Error("view matrix changed without camera movement")
	}

	cam.MoveForward(1.0)
	after := cam.ViewMatrix()
	if before == after {
		t.Error("view matrix not recomputed after movement")
	}
}

func TestCameraMovement(t *testing.T) {
	cam := NewCamera()
	cam.SetPosition(linalg.Vec3[float64]{})
	cam.SetRotation(0, 0)

	cam.MoveForward(5.0)
	if !cam.Position.IsApprox(linalg.V3(0.0, 0.0, -5.0), 1e-9) {
		t.Errorf("position after MoveForward = %v, want (0, 0, -5)", cam.Position)
	}

	cam.MoveRight(2.0)
	if !cam.Position.IsApprox(linalg.V3(2.0, 0.0, -5.0), 1e-9) {
		t.Errorf("position after MoveRight = %v, want (2, 0, -5)", cam.Position)
	}

	cam.MoveUp(3.0)
	if !cam.Position.IsApprox(linalg.V3(2.0, 3.0, -5.0), 1e-9) {
		t.Errorf("position after MoveUp = %v, want (2, 3, -5)", cam.Position)
	}
}

func TestCameraRotateClampsPitch(t *testing.T) {
	cam := NewCamera()

	cam.Rotate(10.0, 0)
	if cam.Pitch >= math.Pi/2 {
		t.Errorf("pitch %v not clamped below pi/2", cam.Pitch)
	}

	cam.Rotate(-20.0, 0)
	if cam.Pitch <= -math.Pi/2 {
		t.Errorf("pitch %v not clamped above -pi/2", cam.Pitch)
	}
}

func TestCameraLookAtPoint(t *testing.T) {
	cam := NewCamera()
	cam.SetPosition(linalg.V3(0.0, 0.0, 10.0))
	cam.LookAtPoint(linalg.V3(0.0, 0.0, 0.0))

	if !cam.Forward().IsApprox(linalg.V3(0.0, 0.0, -1.0), 1e-9) {
		t.Errorf("forward = %v, want (0, 0, -1)", cam.Forward())
	}

	// Looking up at a point directly overhead-ish
	cam.LookAtPoint(linalg.V3(0.0, 10.0, 0.0))
	dir := cam.Forward()
	want := linalg.V3(0.0, 10.0, -10.0).Normalize()
	if !dir.IsApprox(want, 1e-9) {
		t.Errorf("forward = %v, want %v", dir, want)
	}
}

func TestCameraWorldToScreen(t *testing.T) {
	cam := NewCamera()
	cam.SetPosition(linalg.V3(0.0, 0.0, 10.0))
	cam.SetRotation(0, 0)
	cam.SetAspectRatio(1.0)

	const w, h = 100, 100

	// A point straight ahead lands in the center of the screen
	x, y, depth, visible := cam.WorldToScreen(linalg.V3(0.0, 0.0, 0.0), w, h)
	if !visible {
		t.Fatal("point in front of camera should be visible")
	}
	if math.Abs(x-50) > 1e-6 || math.Abs(y-50) > 1e-6 {
		t.Errorf("screen position = (%v, %v), want (50, 50)", x, y)
	}
	if depth < -1 || depth > 1 {
		t.Errorf("depth %v outside NDC range", depth)
	}

	// A point behind the camera is culled
	if _, _, _, vis := cam.WorldToScreen(linalg.V3(0.0, 0.0, 20.0), w, h); vis {
		t.Error("point behind camera should not be visible")
	}

	// A point above the view center lands in the upper half (Y flipped)
	_, y, _, visible = cam.WorldToScreen(linalg.V3(0.0, 1.0, 0.0), w, h)
	if !visible {
		t.Fatal("offset point should be visible")
	}
	if y >= 50 {
		t.Errorf("screen y = %v, want above center (< 50)", y)
	}
}

func TestCameraProjectionUpdates(t *testing.T) {
	cam := NewCamera()
	before := cam.ProjectionMatrix()

	cam.SetFOV(math.Pi / 4)
	after := cam.ProjectionMatrix()
	if before == after {
		t.Error("projection matrix not recomputed after FOV change")
	}

	cam.SetClipPlanes(1.0, 50.0)
	if cam.ProjectionMatrix() == after {
		t.Error("projection matrix not recomputed after clip plane change")
	}
}
