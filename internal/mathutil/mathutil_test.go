package mathutil

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestMustNormalize(t *testing.T) {
	got := MustNormalize(mgl64.Vec3{3, 0, 4})
	if !got.ApproxEqualThreshold(mgl64.Vec3{0.6, 0, 0.8}, 1e-12) {
		t.Errorf("expected (0.6, 0, 0.8), got %v", got)
	}
}

func TestMustNormalizePanics(t *testing.T) {
	tests := []struct {
		name string
		v    mgl64.Vec3
	}{
		{"zero", mgl64.Vec3{}},
		{"tiny", mgl64.Vec3{1e-14, 0, 0}},
		{"nan", mgl64.Vec3{math.NaN(), 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("expected panic for %v", tt.v)
				}
			}()
			MustNormalize(tt.v)
		})
	}
}

func TestIsDegenerate(t *testing.T) {
	if !IsDegenerate(mgl64.Vec3{}) {
		t.Error("expected zero vector to be degenerate")
	}
	if IsDegenerate(mgl64.Vec3{0, 1e-6, 0}) {
		t.Error("expected small vector to be usable")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		x, want float64
	}{
		{-2, -1},
		{0.5, 0.5},
		{3, 1},
	}
	for _, tt := range tests {
		if got := Clamp(tt.x, -1, 1); got != tt.want {
			t.Errorf("Clamp(%v): expected %v, got %v", tt.x, tt.want, got)
		}
	}
}

func TestReflect(t *testing.T) {
	got := Reflect(mgl64.Vec3{1, -1, 0}, mgl64.Vec3{0, 1, 0})
	if got != (mgl64.Vec3{1, 1, 0}) {
		t.Errorf("expected (1, 1, 0), got %v", got)
	}
	// The sign of the normal does not matter.
	if flipped := Reflect(mgl64.Vec3{1, -1, 0}, mgl64.Vec3{0, -1, 0}); flipped != got {
		t.Errorf("expected %v with flipped normal, got %v", got, flipped)
	}
}

func TestRotY(t *testing.T) {
	got := RotY(mgl64.Vec3{1, 2, 0}, math.Pi/2)
	if !got.ApproxEqualThreshold(mgl64.Vec3{0, 2, -1}, 1e-12) {
		t.Errorf("expected (0, 2, -1), got %v", got)
	}
}

func TestAngles(t *testing.T) {
	if got := WrapAngle(2*math.Pi + 0.25); math.Abs(got-0.25) > 1e-12 {
		t.Errorf("expected 0.25, got %v", got)
	}
	if got := Deg2Rad(180); got != math.Pi {
		t.Errorf("expected π, got %v", got)
	}
}
