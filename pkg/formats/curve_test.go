package formats

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/curvetube/pkg/math"
)

const testCurveYAML = `
name: rope
bake_interval: 0.5
points:
  - [0, 0, 0]
  - [2, 0, 0]
profile:
  - {offset: 0, value: 1}
  - {offset: 1, value: 0.5}
`

func TestParseCurve(t *testing.T) {
	doc, err := ParseCurve([]byte(testCurveYAML))
	if err != nil {
		t.Fatalf("ParseCurve failed: %v", err)
	}

	if doc.Name != "rope" {
		t.Errorf("name = %q, want rope", doc.Name)
	}
	if doc.BakeInterval != 0.5 {
		t.Errorf("bake interval = %v, want 0.5", doc.BakeInterval)
	}

	path := doc.Path()
	if len(path.Points) != 2 || path.Points[1] != (math.Vec3{X: 2}) {
		t.Errorf("points = %v", path.Points)
	}

	if baked := doc.Baked(); len(baked) != 5 {
		t.Errorf("baked %d points, want 5", len(baked))
	}

	profile := doc.RadiusProfile()
	if profile.PointCount() != 2 {
		t.Fatalf("profile has %d points, want 2", profile.PointCount())
	}
	if got := profile.Sample(0.5); got != 0.75 {
		t.Errorf("profile.Sample(0.5) = %v, want 0.75", got)
	}
}

func TestParseCurveNoProfile(t *testing.T) {
	doc, err := ParseCurve([]byte("points:\n  - [0, 0, 0]\n  - [0, 1, 0]\n"))
	if err != nil {
		t.Fatalf("ParseCurve failed: %v", err)
	}
	if doc.RadiusProfile() != nil {
		t.Error("expected nil profile")
	}
	// Zero interval keeps control points
	if baked := doc.Baked(); len(baked) != 2 {
		t.Errorf("baked %d points, want 2", len(baked))
	}
}

func TestParseCurveInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"short point", "points:\n  - [0, 0]\n", ErrInvalidCurvePoint},
		{"long point", "points:\n  - [0, 0, 0, 1]\n", ErrInvalidCurvePoint},
		{"profile offset", "profile:\n  - {offset: 2, value: 1}\n", ErrInvalidProfile},
		{"bad yaml", "points: [[0, 0, 0]\n  nope: :\n", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCurve([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoadCurve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "curve.yaml")
	if err := os.WriteFile(path, []byte(testCurveYAML), 0644); err != nil {
		t.Fatalf("failed to write curve: %v", err)
	}

	doc, err := LoadCurve(path)
	if err != nil {
		t.Fatalf("LoadCurve failed: %v", err)
	}
	if len(doc.Points) != 2 {
		t.Errorf("got %d points, want 2", len(doc.Points))
	}

	if _, err := LoadCurve(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error loading missing file")
	}
}
