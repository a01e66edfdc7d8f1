package tube

import "testing"

type pointsProfile struct {
	n int
	v float32
}

func (p pointsProfile) PointCount() int {
	return p.n
}

func (p pointsProfile) Sample(float32) float32 {
	return p.v
}

func TestEffectiveRadius(t *testing.T) {
	tests := []struct {
		name    string
		profile RadiusProfile
		t       float32
		want    float32
	}{
		{"no profile", nil, 0.5, 2},
		{"empty profile", pointsProfile{n: 0, v: 10}, 0.5, 2},
		{"constant profile", pointsProfile{n: 3, v: 0.25}, 0.5, 0.5},
		{"function", ProfileFunc(func(t float32) float32 { return 1 - t }), 0.75, 0.5},
		{"negative is not clamped", ProfileFunc(func(float32) float32 { return -1 }), 0, -2},
		{"zero", ProfileFunc(func(float32) float32 { return 0 }), 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Sampler{Radius: 2, Profile: tt.profile}
			if got := s.EffectiveRadius(tt.t); got != tt.want {
				t.Errorf("EffectiveRadius(%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}
