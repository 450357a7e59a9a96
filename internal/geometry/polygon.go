package geometry

import "math"

// Zeroish merges near-coincident points so a closing vertex that lands
// back on the origin within rounding noise is not counted twice.
const Zeroish = 1e-9

// ring drops a duplicated closing vertex so cyclic formulas do not
// count the seam edge twice.
func ring(vertices []Point) []Point {
	n := len(vertices)
	if n > 1 {
		first, last := vertices[0], vertices[n-1]
		if math.Hypot(last.X-first.X, last.Y-first.Y) < Zeroish {
			return vertices[:n-1]
		}
	}
	return vertices
}

// SignedArea computes the shoelace sum over the closed vertex cycle.
// Under the y-down clockwise convention the result is positive; a
// counter-clockwise trace flips the sign.
func SignedArea(vertices []Point) (float64, error) {
	vs := ring(vertices)
	if len(vs) < 3 {
		return 0, insufficientVertices(len(vs))
	}
	var sum float64
	for i := range vs {
		j := (i + 1) % len(vs)
		sum += vs[i].X*vs[j].Y - vs[j].X*vs[i].Y
	}
	return sum / 2, nil
}

// Area is the absolute shoelace area.
func Area(vertices []Point) (float64, error) {
	signed, err := SignedArea(vertices)
	if err != nil {
		return 0, err
	}
	return math.Abs(signed), nil
}

// PathLength sums the Euclidean distances between consecutive
// vertices. For vertices derived from a trace it equals the perimeter.
func PathLength(vertices []Point) float64 {
	var total float64
	for i := 1; i < len(vertices); i++ {
		total += math.Hypot(vertices[i].X-vertices[i-1].X, vertices[i].Y-vertices[i-1].Y)
	}
	return total
}

// ClosureError is the Euclidean distance between the first and last
// vertex. Non-closure is a quality measure, never an error: hand-traced
// input is expected to miss.
func ClosureError(vertices []Point) float64 {
	if len(vertices) < 2 {
		return 0
	}
	first, last := vertices[0], vertices[len(vertices)-1]
	return math.Hypot(last.X-first.X, last.Y-first.Y)
}

// Centroid is the arithmetic mean of the distinct vertices. It places
// labels well enough; it is not the center of mass.
func Centroid(vertices []Point) (Point, error) {
	vs := ring(vertices)
	if len(vs) < 3 {
		return Point{}, insufficientVertices(len(vs))
	}
	var cx, cy float64
	for _, v := range vs {
		cx += v.X
		cy += v.Y
	}
	n := float64(len(vs))
	return Point{X: cx / n, Y: cy / n}, nil
}

// AreaCentroid is the area-weighted polygon centroid. Degenerate
// polygons with near-zero area fall back to the vertex mean.
func AreaCentroid(vertices []Point) (Point, error) {
	vs := ring(vertices)
	if len(vs) < 3 {
		return Point{}, insufficientVertices(len(vs))
	}
	var signed, cx, cy float64
	for i := range vs {
		j := (i + 1) % len(vs)
		cross := vs[i].X*vs[j].Y - vs[j].X*vs[i].Y
		signed += cross
		cx += (vs[i].X + vs[j].X) * cross
		cy += (vs[i].Y + vs[j].Y) * cross
	}
	signed /= 2
	if math.Abs(signed) < Zeroish {
		return Centroid(vertices)
	}
	f := 1 / (6 * signed)
	return Point{X: cx * f, Y: cy * f}, nil
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

func (b Bounds) Width() float64  { return b.MaxX - b.MinX }
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// BoundsOf returns the bounding box of the vertices.
func BoundsOf(vertices []Point) Bounds {
	if len(vertices) == 0 {
		return Bounds{}
	}
	b := Bounds{MinX: vertices[0].X, MinY: vertices[0].Y, MaxX: vertices[0].X, MaxY: vertices[0].Y}
	for _, v := range vertices[1:] {
		b.MinX = math.Min(b.MinX, v.X)
		b.MinY = math.Min(b.MinY, v.Y)
		b.MaxX = math.Max(b.MaxX, v.X)
		b.MaxY = math.Max(b.MaxY, v.Y)
	}
	return b
}

// VertexAngle is the interior angle measured at one vertex of the
// cyclic vertex list.
type VertexAngle struct {
	VertexIndex  int     `json:"vertexIndex"`
	AngleDegrees float64 `json:"angleDegrees"`
	Flagged      bool    `json:"flagged"`
}

// InteriorAngles computes the interior angle at every vertex using
// atan2 of the cross and dot products of the two edge vectors leaving
// the vertex, normalized to [0,360). Angles are oriented for the
// clockwise y-down traversal, so rectilinear corners read 90 or 270.
//
// An angle outside flagTolerance of both 90 and 270 is flagged for a
// human reviewer; tracing conventions assume axis-aligned corners, so
// anything else usually means a transcription slip. Flagging never
// rejects the trace.
func InteriorAngles(vertices []Point, flagTolerance float64) ([]VertexAngle, error) {
	vs := ring(vertices)
	n := len(vs)
	if n < 3 {
		return nil, insufficientVertices(n)
	}
	angles := make([]VertexAngle, 0, n)
	for i := range vs {
		prev := vs[(i-1+n)%n]
		v := vs[i]
		next := vs[(i+1)%n]
		ax, ay := next.X-v.X, next.Y-v.Y
		bx, by := prev.X-v.X, prev.Y-v.Y
		cross := ax*by - ay*bx
		dot := ax*bx + ay*by
		deg := math.Atan2(cross, dot) * 180 / math.Pi
		if deg < 0 {
			deg += 360
		}
		flagged := math.Abs(deg-90) > flagTolerance && math.Abs(deg-270) > flagTolerance
		angles = append(angles, VertexAngle{VertexIndex: i, AngleDegrees: deg, Flagged: flagged})
	}
	return angles, nil
}
