package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-4

func TestModelTranslatesAwayFromEye(t *testing.T) {
	c := Default()
	got := c.Model(0).Mul4x1(mgl32.Vec4{0, 1, 0, 1})
	want := mgl32.Vec4{0, 1, -5, 1}
	if !got.ApproxEqualThreshold(want, eps) {
		t.Fatalf("top vertex at angle 0 = %v, want %v", got, want)
	}
}

func TestModelRotatesAroundY(t *testing.T) {
	c := Default()
	tests := []struct {
		angle float32
		want  mgl32.Vec4
	}{
		{90, mgl32.Vec4{0, 0, -6, 1}},
		{180, mgl32.Vec4{-1, 0, -5, 1}},
		{270, mgl32.Vec4{0, 0, -4, 1}},
	}
	for _, tt := range tests {
		got := c.Model(tt.angle).Mul4x1(mgl32.Vec4{1, 0, 0, 1})
		if !got.ApproxEqualThreshold(tt.want, eps) {
			t.Errorf("Model(%v) * x = %v, want %v", tt.angle, got, tt.want)
		}
	}
}

func TestViewIsIdentity(t *testing.T) {
	if v := Default().View(); v != mgl32.Ident4() {
		t.Fatalf("view = %v, want identity", v)
	}
}

func TestProjectionDepthRange(t *testing.T) {
	c := Default()
	p := c.Projection(1280, 720)

	near := p.Mul4x1(mgl32.Vec4{0, 0, -c.Near, 1})
	if z := near.Z() / near.W(); z < -1-eps || z > -1+eps {
		t.Errorf("near plane maps to ndc z %v, want -1", z)
	}
	far := p.Mul4x1(mgl32.Vec4{0, 0, -c.Far, 1})
	if z := far.Z() / far.W(); z < 1-eps || z > 1+eps {
		t.Errorf("far plane maps to ndc z %v, want 1", z)
	}
}

func TestProjectionMatchesPerspective(t *testing.T) {
	c := Default()
	want := mgl32.Perspective(mgl32.DegToRad(45), 1280.0/720.0, 1, 1024)
	if got := c.Projection(1280, 720); !got.ApproxEqualThreshold(want, eps) {
		t.Fatalf("projection = %v, want %v", got, want)
	}
}

func TestProjectionWithDegenerateSize(t *testing.T) {
	c := Default()
	want := mgl32.Perspective(mgl32.DegToRad(45), 1, 1, 1024)
	if got := c.Projection(0, 0); !got.ApproxEqualThreshold(want, eps) {
		t.Fatalf("projection for zero size = %v, want square aspect", got)
	}
}

func TestMatrices(t *testing.T) {
	c := Default()
	m := c.Matrices(30, 800, 600)
	if m.Model != c.Model(30) || m.View != c.View() || m.Proj != c.Projection(800, 600) {
		t.Fatal("Matrices does not agree with the individual builders")
	}
}
