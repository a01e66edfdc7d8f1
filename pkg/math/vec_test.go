package math

import (
	"math"
	"testing"
)

func TestVec3Cross(t *testing.T) {
	got := UnitX.Cross(UnitY)
	if got != UnitZ {
		t.Errorf("Vec3.Cross() = %v, want %v", got, UnitZ)
	}
}

func TestVec3Normalize(t *testing.T) {
	n := Vec3{3, 4, 12}.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}

	if z := (Vec3{}).Normalize(); z != (Vec3{}) {
		t.Errorf("zero vector should normalize to zero, got %v", z)
	}
}

func TestVec3Lerp(t *testing.T) {
	a := Vec3{0, 0, 0}
	b := Vec3{10, 20, 30}

	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(0) = %v, want %v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(1) = %v, want %v", got, b)
	}
	if got, want := a.Lerp(b, 0.5), (Vec3{5, 10, 15}); got != want {
		t.Errorf("Lerp(0.5) = %v, want %v", got, want)
	}
}

func TestVec3AngleTo(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec3
		want float64
	}{
		{"same", UnitY, UnitY, 0},
		{"perpendicular", UnitX, UnitY, math.Pi / 2},
		{"opposite", UnitY, UnitY.Negate(), math.Pi},
		{"unnormalized", Vec3{0, 5, 0}, Vec3{3, 3, 0}, math.Pi / 4},
		{"zero", Vec3{}, UnitY, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.AngleTo(tt.b)
			if math.Abs(float64(got)-tt.want) > 0.0001 {
				t.Errorf("AngleTo = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVec3MinMax(t *testing.T) {
	a := Vec3{1, -2, 3}
	b := Vec3{-1, 2, 0}
	if got, want := a.Min(b), (Vec3{-1, -2, 0}); got != want {
		t.Errorf("Min = %v, want %v", got, want)
	}
	if got, want := a.Max(b), (Vec3{1, 2, 3}); got != want {
		t.Errorf("Max = %v, want %v", got, want)
	}
}

func TestVec2AddScale(t *testing.T) {
	got := Vec2{1, 2}.Scale(2).Add(Vec2{0.5, 0.5})
	want := Vec2{2.5, 4.5}
	if got != want {
		t.Errorf("Vec2 Scale/Add = %v, want %v", got, want)
	}
}
