package geometry

import (
	"fmt"
	"math"
)

// Options carry the review tolerances. The documented defaults are
// working values, not engineering constants, so every caller can
// override them.
type Options struct {
	// ClosureTolerance is the largest first-to-last vertex gap still
	// accepted as a closed boundary, in trace units.
	ClosureTolerance float64
	// AngleFlagTolerance is how far an interior angle may sit from 90
	// or 270 degrees before it is flagged.
	AngleFlagTolerance float64
	// Unit is a free-form label ("ft", "mm") carried through to the
	// report unchanged.
	Unit string
}

// DefaultOptions match the tolerances the tracing workflow documents.
func DefaultOptions() Options {
	return Options{
		ClosureTolerance:   0.1,
		AngleFlagTolerance: 5,
		Unit:               "ft",
	}
}

// Edge is one analyzed stroke with its endpoints resolved.
type Edge struct {
	Index     int       `json:"index"`
	Name      string    `json:"name,omitempty"`
	Length    float64   `json:"length"`
	Direction Direction `json:"direction"`
	Kind      SegmentKind `json:"kind"`
	Compass   string    `json:"compass"`
	From      Point     `json:"from"`
	To        Point     `json:"to"`
}

// Analysis is the full geometry report for one trace.
type Analysis struct {
	Unit          string        `json:"unit"`
	Vertices      []Point       `json:"vertices"`
	Edges         []Edge        `json:"edges"`
	Perimeter     float64       `json:"perimeter"`
	SignedArea    float64       `json:"signedArea"`
	Area          float64       `json:"area"`
	Centroid      Point         `json:"centroid"`
	Bounds        Bounds        `json:"bounds"`
	ClosureError  float64       `json:"closureError"`
	IsClosed      bool          `json:"isClosed"`
	Angles        []VertexAngle `json:"angles"`
	FlaggedAngles []VertexAngle `json:"flaggedAngles"`
	OpeningLength float64       `json:"openingLength"`
}

// Analyze derives the vertices and fills in every derived property of
// the trace. The only failure modes are a bad segment or too few
// vertices for the area step; closure misses and odd angles come back
// in the report instead.
func Analyze(segments []Segment, opts Options) (*Analysis, error) {
	vertices, err := DeriveVertices(segments)
	if err != nil {
		return nil, err
	}
	perimeter, err := Perimeter(segments)
	if err != nil {
		return nil, err
	}
	signed, err := SignedArea(vertices)
	if err != nil {
		return nil, err
	}
	centroid, err := Centroid(vertices)
	if err != nil {
		return nil, err
	}
	angles, err := InteriorAngles(vertices, opts.AngleFlagTolerance)
	if err != nil {
		return nil, err
	}

	edges := make([]Edge, len(segments))
	var openings float64
	for i, seg := range segments {
		dx, dy := seg.Delta()
		edges[i] = Edge{
			Index:     i,
			Name:      seg.Name,
			Length:    seg.Length,
			Direction: seg.Direction,
			Kind:      seg.Kind,
			Compass:   CompassOf(dx, dy),
			From:      vertices[i],
			To:        vertices[i+1],
		}
		if seg.Kind == Opening {
			openings += seg.Length
		}
	}

	var flagged []VertexAngle
	for _, a := range angles {
		if a.Flagged {
			flagged = append(flagged, a)
		}
	}

	gap := ClosureError(vertices)
	return &Analysis{
		Unit:          opts.Unit,
		Vertices:      vertices,
		Edges:         edges,
		Perimeter:     perimeter,
		SignedArea:    signed,
		Area:          math.Abs(signed),
		Centroid:      centroid,
		Bounds:        BoundsOf(vertices),
		ClosureError:  gap,
		IsClosed:      gap <= opts.ClosureTolerance,
		Angles:        angles,
		FlaggedAngles: flagged,
		OpeningLength: openings,
	}, nil
}

// EdgeCheck is the verification of one traced edge against the length
// read off the sketch.
type EdgeCheck struct {
	Index      int     `json:"index"`
	Name       string  `json:"name,omitempty"`
	Expected   float64 `json:"expected"`
	Calculated float64 `json:"calculated"`
	Difference float64 `json:"difference"`
	Matches    bool    `json:"matches"`
}

// Verification summarizes an edge-by-edge measurement check.
type Verification struct {
	Edges           []EdgeCheck `json:"edges"`
	Matches         int         `json:"matches"`
	Total           int         `json:"total"`
	AllVerified     bool        `json:"allVerified"`
	AccuracyPercent float64     `json:"accuracyPercent"`
}

// VerifyMeasurements compares each traced edge length against the
// expected reading within tolerance. Counts must line up.
func VerifyMeasurements(segments []Segment, expected []float64, tolerance float64) (*Verification, error) {
	if len(segments) != len(expected) {
		return nil, fmt.Errorf("expected %d readings for %d segments", len(segments), len(expected))
	}
	v := &Verification{Total: len(segments)}
	for i, seg := range segments {
		diff := math.Abs(seg.Length - expected[i])
		check := EdgeCheck{
			Index:      i,
			Name:       seg.Name,
			Expected:   expected[i],
			Calculated: seg.Length,
			Difference: diff,
			Matches:    diff <= tolerance,
		}
		if check.Matches {
			v.Matches++
		}
		v.Edges = append(v.Edges, check)
	}
	v.AllVerified = v.Matches == v.Total
	if v.Total > 0 {
		v.AccuracyPercent = 100 * float64(v.Matches) / float64(v.Total)
	}
	return v, nil
}

// Estimate is the result of solving one uncertain edge length from the
// closure constraint.
type Estimate struct {
	Index       int     `json:"index"`
	Estimated   float64 `json:"estimated"`
	Adjustment  float64 `json:"adjustment"`
	WithinRange bool    `json:"withinRange"`
}

// EstimateUncertainEdge solves for the single edge length that closes
// the trace on that edge's axis, then clamps the answer into the
// sketch's stated [min,max] range. Sketches sometimes record a range
// ("7-10 FT") instead of a reading; the closure constraint usually
// pins the true value.
func EstimateUncertainEdge(segments []Segment, index int, min, max float64) (*Estimate, error) {
	if index < 0 || index >= len(segments) {
		return nil, fmt.Errorf("edge index %d out of range", index)
	}
	vertices, err := DeriveVertices(segments)
	if err != nil {
		return nil, err
	}
	last := vertices[len(vertices)-1]

	// Walking an edge of length L moves the endpoint by +/-L on one
	// axis; growing a leftward edge by the x closure gap cancels it.
	seg := segments[index]
	var solved float64
	switch seg.Direction {
	case Left:
		solved = seg.Length + last.X
	case Right:
		solved = seg.Length - last.X
	case Up:
		solved = seg.Length + last.Y
	case Down:
		solved = seg.Length - last.Y
	default:
		return nil, invalidSegment(index, seg)
	}

	within := solved >= min && solved <= max
	clamped := math.Max(min, math.Min(max, solved))
	return &Estimate{
		Index:       index,
		Estimated:   clamped,
		Adjustment:  solved - seg.Length,
		WithinRange: within,
	}, nil
}
