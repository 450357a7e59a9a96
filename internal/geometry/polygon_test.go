package geometry

import (
	"errors"
	"math"
	"testing"
)

func rectangle(w, h float64) []Segment {
	return []Segment{
		{Name: "top", Length: w, Direction: Right},
		{Name: "east", Length: h, Direction: Down},
		{Name: "bottom", Length: w, Direction: Left},
		{Name: "west", Length: h, Direction: Up},
	}
}

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestDeriveVertices_Rectangle(t *testing.T) {
	vertices, err := DeriveVertices(rectangle(10, 5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vertices) != 5 {
		t.Fatalf("expected 5 vertices, got %d", len(vertices))
	}
	want := []Point{{0, 0}, {10, 0}, {10, 5}, {0, 5}, {0, 0}}
	for i, p := range want {
		if !almostEqual(vertices[i].X, p.X, 1e-12) || !almostEqual(vertices[i].Y, p.Y, 1e-12) {
			t.Errorf("vertex %d: expected (%g,%g), got (%g,%g)", i, p.X, p.Y, vertices[i].X, vertices[i].Y)
		}
	}
}

func TestDeriveVertices_RejectsZeroLength(t *testing.T) {
	_, err := DeriveVertices([]Segment{
		{Length: 10, Direction: Right},
		{Length: 0, Direction: Down},
	})
	if err == nil {
		t.Fatal("expected error for zero-length segment")
	}
	var gerr *Error
	if !errors.As(err, &gerr) || gerr.Code != CodeInvalidSegment {
		t.Fatalf("expected %s, got %v", CodeInvalidSegment, err)
	}
}

func TestPerimeter_MatchesPathLength(t *testing.T) {
	traces := [][]Segment{
		rectangle(10, 5),
		{
			{Length: 31.4, Direction: Right},
			{Length: 22.5, Direction: Down},
			{Length: 14.4, Direction: Left},
			{Length: 4.2, Direction: Up},
		},
	}
	for i, segments := range traces {
		perimeter, err := Perimeter(segments)
		if err != nil {
			t.Fatalf("trace %d: unexpected error: %v", i, err)
		}
		vertices, err := DeriveVertices(segments)
		if err != nil {
			t.Fatalf("trace %d: unexpected error: %v", i, err)
		}
		if !almostEqual(perimeter, PathLength(vertices), 1e-9) {
			t.Errorf("trace %d: perimeter %g != path length %g", i, perimeter, PathLength(vertices))
		}
	}
}

func TestSignedArea_ClockwiseRectangle(t *testing.T) {
	vertices, err := DeriveVertices(rectangle(10, 5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	signed, err := SignedArea(vertices)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(signed, 50, 1e-9) {
		t.Errorf("expected signed area 50, got %g", signed)
	}
	if ClosureError(vertices) != 0 {
		t.Errorf("expected zero closure error, got %g", ClosureError(vertices))
	}
}

func TestSignedArea_ReversedTraversalFlipsSign(t *testing.T) {
	// Same rectangle walked counter-clockwise.
	ccw := []Segment{
		{Length: 5, Direction: Down},
		{Length: 10, Direction: Right},
		{Length: 5, Direction: Up},
		{Length: 10, Direction: Left},
	}
	vertices, err := DeriveVertices(ccw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	signed, err := SignedArea(vertices)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(signed, -50, 1e-9) {
		t.Errorf("expected signed area -50, got %g", signed)
	}
	area, err := Area(vertices)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(area, 50, 1e-9) {
		t.Errorf("expected area 50, got %g", area)
	}
}

func TestSignedArea_InsufficientVertices(t *testing.T) {
	vertices, err := DeriveVertices([]Segment{
		{Length: 10, Direction: Right},
		{Length: 5, Direction: Down},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := SignedArea(vertices[:2]); err == nil {
		t.Fatal("expected error for 2 vertices")
	} else {
		var gerr *Error
		if !errors.As(err, &gerr) || gerr.Code != CodeInsufficientVertices {
			t.Fatalf("expected %s, got %v", CodeInsufficientVertices, err)
		}
	}
}

func TestClosureError_OpenTrace(t *testing.T) {
	vertices, err := DeriveVertices([]Segment{
		{Length: 10, Direction: Right},
		{Length: 5, Direction: Down},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	gap := ClosureError(vertices)
	if !almostEqual(gap, math.Sqrt(125), 0.01) {
		t.Errorf("expected closure error ~11.18, got %g", gap)
	}
}

func TestInteriorAngles_Rectangle(t *testing.T) {
	vertices, err := DeriveVertices(rectangle(10, 5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	angles, err := InteriorAngles(vertices, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(angles) != 4 {
		t.Fatalf("expected 4 angles, got %d", len(angles))
	}
	for _, a := range angles {
		if !almostEqual(a.AngleDegrees, 90, 1e-9) {
			t.Errorf("vertex %d: expected 90 degrees, got %g", a.VertexIndex, a.AngleDegrees)
		}
		if a.Flagged {
			t.Errorf("vertex %d: right angle should not be flagged", a.VertexIndex)
		}
	}
}

func TestInteriorAngles_ReflexCorner(t *testing.T) {
	// Clockwise L-shape: the inner corner is reflex (270).
	lshape := []Segment{
		{Length: 10, Direction: Right},
		{Length: 10, Direction: Down},
		{Length: 4, Direction: Left},
		{Length: 4, Direction: Up},
		{Length: 6, Direction: Left},
		{Length: 6, Direction: Up},
	}
	vertices, err := DeriveVertices(lshape)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	angles, err := InteriorAngles(vertices, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	reflex := 0
	for _, a := range angles {
		if almostEqual(a.AngleDegrees, 270, 1e-9) {
			reflex++
		} else if !almostEqual(a.AngleDegrees, 90, 1e-9) {
			t.Errorf("vertex %d: unexpected angle %g", a.VertexIndex, a.AngleDegrees)
		}
		if a.Flagged {
			t.Errorf("vertex %d: rectilinear corner flagged at %g degrees", a.VertexIndex, a.AngleDegrees)
		}
	}
	if reflex != 1 {
		t.Errorf("expected exactly one reflex corner, got %d", reflex)
	}
}

func TestCentroid_Rectangle(t *testing.T) {
	vertices, err := DeriveVertices(rectangle(10, 5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c, err := Centroid(vertices)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(c.X, 5, 1e-9) || !almostEqual(c.Y, 2.5, 1e-9) {
		t.Errorf("expected centroid (5,2.5), got (%g,%g)", c.X, c.Y)
	}
	ac, err := AreaCentroid(vertices)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(ac.X, 5, 1e-9) || !almostEqual(ac.Y, 2.5, 1e-9) {
		t.Errorf("expected area centroid (5,2.5), got (%g,%g)", ac.X, ac.Y)
	}
}

func TestBoundsOf(t *testing.T) {
	vertices, err := DeriveVertices(rectangle(10, 5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b := BoundsOf(vertices)
	if b.MinX != 0 || b.MinY != 0 || b.MaxX != 10 || b.MaxY != 5 {
		t.Errorf("unexpected bounds %+v", b)
	}
	if b.Width() != 10 || b.Height() != 5 {
		t.Errorf("unexpected bounds size %gx%g", b.Width(), b.Height())
	}
}

func TestCompassOf(t *testing.T) {
	cases := []struct {
		dx, dy float64
		want   string
	}{
		{1, 0, "E"},
		{-1, 0, "W"},
		{0, 1, "S"},
		{0, -1, "N"},
		{1, 1, "SE"},
		{-1, -1, "NW"},
	}
	for _, c := range cases {
		if got := CompassOf(c.dx, c.dy); got != c.want {
			t.Errorf("CompassOf(%g,%g) = %s, expected %s", c.dx, c.dy, got, c.want)
		}
	}
}
