// Package geometry computes boundary geometry for hand-traced sketches.
//
// The conventions for this package are the screen conventions of the
// source sketches: x increases to the right, y increases down the page.
// Boundaries are traced clockwise under that convention, which makes the
// shoelace sum positive for a well-formed trace.
package geometry

import "math"

// Direction is the axis a traced segment moves along.
type Direction string

const (
	Up    Direction = "up"
	Down  Direction = "down"
	Left  Direction = "left"
	Right Direction = "right"
)

// SegmentKind distinguishes solid boundary strokes from openings
// (gates, doorways) that are traced but not built.
type SegmentKind string

const (
	Solid   SegmentKind = "solid"
	Opening SegmentKind = "opening"
)

// Segment is one directed, measured stroke of a traced boundary.
type Segment struct {
	Name      string
	Length    float64
	Direction Direction
	Kind      SegmentKind
}

// Point holds a 2d coordinate under the y-down screen convention.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Delta returns the coordinate change applied by walking the segment.
func (s Segment) Delta() (dx, dy float64) {
	switch s.Direction {
	case Right:
		return s.Length, 0
	case Left:
		return -s.Length, 0
	case Down:
		return 0, s.Length
	case Up:
		return 0, -s.Length
	}
	return 0, 0
}

// DeriveVertices walks the segments from the origin and returns every
// visited position, origin first. A trace of n segments yields n+1
// vertices; for a well-closed boundary the last vertex lands back on
// the first within tolerance.
func DeriveVertices(segments []Segment) ([]Point, error) {
	vertices := make([]Point, 0, len(segments)+1)
	var x, y float64
	vertices = append(vertices, Point{})
	for i, seg := range segments {
		if seg.Length <= 0 {
			return nil, invalidSegment(i, seg)
		}
		if seg.Direction != Up && seg.Direction != Down && seg.Direction != Left && seg.Direction != Right {
			return nil, invalidSegment(i, seg)
		}
		dx, dy := seg.Delta()
		x += dx
		y += dy
		vertices = append(vertices, Point{X: x, Y: y})
	}
	return vertices, nil
}

// Perimeter sums the segment lengths. It fails the same way
// DeriveVertices does so a bad trace is rejected consistently.
func Perimeter(segments []Segment) (float64, error) {
	var total float64
	for i, seg := range segments {
		if seg.Length <= 0 {
			return 0, invalidSegment(i, seg)
		}
		total += seg.Length
	}
	return total, nil
}

// CompassOf maps a vector angle to an eight-point compass direction.
// Under the y-down convention 0 degrees is east and 90 degrees is south.
func CompassOf(dx, dy float64) string {
	angle := math.Mod(math.Atan2(dy, dx)*180/math.Pi+360, 360)
	switch {
	case angle >= 337.5 || angle < 22.5:
		return "E"
	case angle < 67.5:
		return "SE"
	case angle < 112.5:
		return "S"
	case angle < 157.5:
		return "SW"
	case angle < 202.5:
		return "W"
	case angle < 247.5:
		return "NW"
	case angle < 292.5:
		return "N"
	default:
		return "NE"
	}
}
