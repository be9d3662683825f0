package geometry

import (
	"slices"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestTriangle(t *testing.T) {
	m := Triangle()
	if err := m.Validate(); err != nil {
		t.Fatalf("triangle should be valid: %s", err)
	}
	if n := m.VertexCount(); n != 3 {
		t.Fatalf("VertexCount = %d, want 3", n)
	}

	wantPos := []float32{
		0, 1, 0,
		1, -1, 0,
		-1, -1, 0,
	}
	if got := m.PositionData(); !slices.Equal(got, wantPos) {
		t.Errorf("PositionData = %v, want %v", got, wantPos)
	}

	wantCol := []float32{
		1, 0, 0, 1,
		0, 1, 0, 1,
		0, 0, 1, 1,
	}
	if got := m.ColourData(); !slices.Equal(got, wantCol) {
		t.Errorf("ColourData = %v, want %v", got, wantCol)
	}
}

func TestTriangleIsFresh(t *testing.T) {
	a := Triangle()
	a.Positions[0] = mgl32.Vec3{9, 9, 9}
	if b := Triangle(); b.Positions[0] == a.Positions[0] {
		t.Fatal("Triangle returned shared vertex storage")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		mesh Mesh
		ok   bool
	}{
		{"empty", Mesh{}, false},
		{"mismatched", Mesh{
			Positions: []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}},
			Colours:   []mgl32.Vec4{{1, 1, 1, 1}},
		}, false},
		{"single", Mesh{
			Positions: []mgl32.Vec3{{0, 0, 0}},
			Colours:   []mgl32.Vec4{{1, 1, 1, 1}},
		}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.mesh.Validate()
			if (err == nil) != tt.ok {
				t.Fatalf("Validate() = %v, want ok=%v", err, tt.ok)
			}
		})
	}
}
