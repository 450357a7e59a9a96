package geometry

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

// documentedTrace mirrors the plot boundary sketch the tracing skill
// documents: eleven rectilinear strokes with one 6ft gate opening.
func documentedTrace() []Segment {
	return []Segment{
		{Name: "East (Top)", Length: 31.4, Direction: Right},
		{Name: "South Upper", Length: 22.5, Direction: Down},
		{Name: "Gate", Length: 6.0, Direction: Down, Kind: Opening},
		{Name: "14.4 Wall", Length: 14.4, Direction: Left},
		{Name: "South Lower", Length: 27.3, Direction: Down},
		{Name: "West Bottom", Length: 12.0, Direction: Left},
		{Name: "Step", Length: 4.2, Direction: Up},
		{Name: "West Mid", Length: 7.9, Direction: Left},
		{Name: "North Lower", Length: 27.4, Direction: Up},
		{Name: "Indent", Length: 2.9, Direction: Right},
		{Name: "North Upper", Length: 25.0, Direction: Up},
	}
}

// consistentTrace is the same boundary with the North Lower reading
// corrected so the trace closes exactly.
func consistentTrace() []Segment {
	segments := documentedTrace()
	segments[8].Length = 26.6
	return segments
}

func TestAnalyze_DocumentedBoundary(t *testing.T) {
	report, err := Analyze(documentedTrace(), DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(report.Perimeter, 181.0, 1e-9) {
		t.Errorf("expected perimeter 181.0, got %g", report.Perimeter)
	}
	// The sketch as documented carries a 0.8ft vertical imbalance.
	if !almostEqual(report.ClosureError, 0.8, 1e-9) {
		t.Errorf("expected closure error 0.8, got %g", report.ClosureError)
	}
	if report.IsClosed {
		t.Error("documented trace should not close within the default tolerance")
	}
	if report.OpeningLength != 6.0 {
		t.Errorf("expected 6.0ft of openings, got %g", report.OpeningLength)
	}
	if report.Unit != "ft" {
		t.Errorf("unit label changed: %q", report.Unit)
	}
	if len(report.Edges) != 11 || len(report.Vertices) != 12 {
		t.Errorf("expected 11 edges / 12 vertices, got %d / %d", len(report.Edges), len(report.Vertices))
	}
}

func TestAnalyze_ConsistentBoundaryCloses(t *testing.T) {
	report, err := Analyze(consistentTrace(), DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !report.IsClosed {
		t.Fatalf("consistent trace should close, closure error %g", report.ClosureError)
	}
	if report.SignedArea <= 0 {
		t.Errorf("clockwise trace should have positive signed area, got %g", report.SignedArea)
	}
	if len(report.FlaggedAngles) != 0 {
		t.Errorf("rectilinear boundary should have no flagged angles, got %d", len(report.FlaggedAngles))
	}
}

func TestAnalyze_NonRectilinearAngleIsFlaggedNotRejected(t *testing.T) {
	// A right triangle: the hypotenuse corners are nowhere near 90/270.
	vertices := []Point{{0, 0}, {10, 0}, {10, 10}}
	angles, err := InteriorAngles(vertices, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	flagged := 0
	for _, a := range angles {
		if a.Flagged {
			flagged++
		}
	}
	if flagged != 2 {
		t.Errorf("expected 2 flagged angles on a right triangle, got %d", flagged)
	}
}

func TestVerifyMeasurements(t *testing.T) {
	segments := rectangle(10, 5)
	v, err := VerifyMeasurements(segments, []float64{10, 5, 10.05, 5.2}, 0.1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Matches != 3 || v.Total != 4 || v.AllVerified {
		t.Errorf("expected 3/4 matches, got %d/%d (all=%v)", v.Matches, v.Total, v.AllVerified)
	}
	if !almostEqual(v.AccuracyPercent, 75, 1e-9) {
		t.Errorf("expected 75%% accuracy, got %g", v.AccuracyPercent)
	}
	if _, err := VerifyMeasurements(segments, []float64{10}, 0.1); err == nil {
		t.Error("expected error for mismatched reading count")
	}
}

func TestEstimateUncertainEdge_SolvesClosure(t *testing.T) {
	// North Lower is recorded as a 26-28ft range on the sketch; the
	// closure constraint pins it at 26.6.
	est, err := EstimateUncertainEdge(documentedTrace(), 8, 26, 28)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(est.Estimated, 26.6, 1e-9) {
		t.Errorf("expected estimate 26.6, got %g", est.Estimated)
	}
	if !est.WithinRange {
		t.Error("estimate should fall inside the recorded range")
	}
	if !almostEqual(est.Adjustment, -0.8, 1e-9) {
		t.Errorf("expected adjustment -0.8, got %g", est.Adjustment)
	}
}

func TestEstimateUncertainEdge_ClampsToRange(t *testing.T) {
	est, err := EstimateUncertainEdge(documentedTrace(), 8, 27.0, 28.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if est.WithinRange {
		t.Error("26.6 is outside 27-28 and should be reported as such")
	}
	if est.Estimated != 27.0 {
		t.Errorf("expected clamp to 27.0, got %g", est.Estimated)
	}
}

func TestSVGTransform(t *testing.T) {
	vertices := []Point{{0, 0}, {10, 0}, {10, 5}, {0, 5}}
	tr := TransformForSVG(vertices, 10, 50)
	if tr.CanvasWidth != 200 || tr.CanvasHeight != 150 {
		t.Errorf("unexpected canvas %gx%g", tr.CanvasWidth, tr.CanvasHeight)
	}
	points := tr.PointsAttr(vertices)
	if points != "50.0,50.0 150.0,50.0 150.0,100.0 50.0,100.0" {
		t.Errorf("unexpected points attr %q", points)
	}
	path := tr.PathAttr(vertices)
	if path != "M 50.0 50.0 L 150.0 50.0 L 150.0 100.0 L 50.0 100.0 Z" {
		t.Errorf("unexpected path attr %q", path)
	}
}

func TestLoadTraceFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "trace.json")
	data := `{
		"id": "plot-1",
		"name": "Test Plot",
		"unit": "ft",
		"segments": [
			{"name": "top", "length": 10, "direction": "E"},
			{"name": "east", "length": 5, "direction": "down"},
			{"name": "gate", "length": 10, "direction": "west", "kind": "opening"},
			{"name": "west", "length": 5, "direction": "N"}
		]
	}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	trace, err := LoadTraceFromFile(path)
	if err != nil {
		t.Fatalf("failed to load trace: %v", err)
	}
	segments, err := trace.ParseSegments()
	if err != nil {
		t.Fatalf("failed to parse segments: %v", err)
	}
	if len(segments) != 4 {
		t.Fatalf("expected 4 segments, got %d", len(segments))
	}
	if segments[0].Direction != Right || segments[3].Direction != Up {
		t.Errorf("compass aliases not resolved: %+v", segments)
	}
	if segments[2].Kind != Opening {
		t.Errorf("expected opening kind, got %q", segments[2].Kind)
	}
	report, err := Analyze(segments, Options{ClosureTolerance: 0.1, AngleFlagTolerance: 5, Unit: trace.Unit})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !report.IsClosed {
		t.Errorf("rectangle trace should close, gap %g", report.ClosureError)
	}
	if math.Abs(report.Area-50) > 1e-9 {
		t.Errorf("expected area 50, got %g", report.Area)
	}
}

func TestLoadTraceFromFile_MissingFile(t *testing.T) {
	if _, err := LoadTraceFromFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
