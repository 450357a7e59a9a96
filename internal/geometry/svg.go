package geometry

import (
	"fmt"
	"strings"
)

// SVGTransform maps trace coordinates into a padded pixel canvas. The
// trace's y-down convention matches SVG, so only offset and scale apply.
type SVGTransform struct {
	Scale        float64
	Padding      float64
	OffsetX      float64
	OffsetY      float64
	CanvasWidth  float64
	CanvasHeight float64
}

// TransformForSVG computes the transform that fits the vertices into a
// canvas at the given scale with padding on every side.
func TransformForSVG(vertices []Point, scale, padding float64) SVGTransform {
	b := BoundsOf(vertices)
	return SVGTransform{
		Scale:        scale,
		Padding:      padding,
		OffsetX:      -b.MinX,
		OffsetY:      -b.MinY,
		CanvasWidth:  b.Width()*scale + 2*padding,
		CanvasHeight: b.Height()*scale + 2*padding,
	}
}

// Apply maps one trace point to canvas pixels.
func (t SVGTransform) Apply(p Point) Point {
	return Point{
		X: (p.X + t.OffsetX) * t.Scale,
		Y: (p.Y + t.OffsetY) * t.Scale,
	}
}

func (t SVGTransform) apply(p Point) (float64, float64) {
	q := t.Apply(p)
	return q.X + t.Padding, q.Y + t.Padding
}

// PointsAttr renders the vertices as an SVG polygon points attribute.
func (t SVGTransform) PointsAttr(vertices []Point) string {
	parts := make([]string, 0, len(vertices))
	for _, v := range vertices {
		x, y := t.apply(v)
		parts = append(parts, fmt.Sprintf("%.1f,%.1f", x, y))
	}
	return strings.Join(parts, " ")
}

// PathAttr renders the vertices as a closed SVG path d attribute.
func (t SVGTransform) PathAttr(vertices []Point) string {
	if len(vertices) == 0 {
		return ""
	}
	var sb strings.Builder
	x, y := t.apply(vertices[0])
	fmt.Fprintf(&sb, "M %.1f %.1f", x, y)
	for _, v := range vertices[1:] {
		x, y = t.apply(v)
		fmt.Fprintf(&sb, " L %.1f %.1f", x, y)
	}
	sb.WriteString(" Z")
	return sb.String()
}
