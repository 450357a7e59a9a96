package output

import (
	"fmt"
	"strings"

	"github.com/glasstrace/boundary-engine/internal/geometry"
	"github.com/glasstrace/boundary-engine/internal/panel"
)

// DrawingOptions size the SVG technical drawing.
type DrawingOptions struct {
	Scale   float64 // pixels per trace unit
	Padding float64 // pixels on every side
}

// DefaultDrawingOptions fit a typical plot trace on a screen.
func DefaultDrawingOptions() DrawingOptions {
	return DrawingOptions{Scale: 10, Padding: 50}
}

// GenerateBoundaryDrawing renders the analyzed boundary as an SVG
// technical drawing: the polygon, a length label per edge, vertex
// markers, and a title block with the derived figures.
func GenerateBoundaryDrawing(a *geometry.Analysis, title string, opts DrawingOptions) string {
	tr := geometry.TransformForSVG(a.Vertices, opts.Scale, opts.Padding)
	var sb strings.Builder

	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">`+"\n",
		tr.CanvasWidth, tr.CanvasHeight+40, tr.CanvasWidth, tr.CanvasHeight+40)
	fmt.Fprintf(&sb, `  <rect width="100%%" height="100%%" fill="#ffffff"/>`+"\n")
	fmt.Fprintf(&sb, `  <path d="%s" fill="#e8f4fd" stroke="#1a5276" stroke-width="2"/>`+"\n", tr.PathAttr(a.Vertices))

	for _, e := range a.Edges {
		from := tr.Apply(e.From)
		to := tr.Apply(e.To)
		mx := (from.X+to.X)/2 + opts.Padding
		my := (from.Y+to.Y)/2 + opts.Padding
		label := fmt.Sprintf("%.1f %s", e.Length, a.Unit)
		if e.Kind == geometry.Opening {
			label += " (opening)"
		}
		fmt.Fprintf(&sb, `  <text x="%.1f" y="%.1f" font-size="11" text-anchor="middle" fill="#34495e">%s</text>`+"\n", mx, my-4, label)
	}

	for _, v := range a.Vertices {
		p := tr.Apply(v)
		fmt.Fprintf(&sb, `  <circle cx="%.1f" cy="%.1f" r="2.5" fill="#1a5276"/>`+"\n", p.X+opts.Padding, p.Y+opts.Padding)
	}

	closure := "closed"
	if !a.IsClosed {
		closure = fmt.Sprintf("open, gap %.2f %s", a.ClosureError, a.Unit)
	}
	fmt.Fprintf(&sb, `  <text x="%.1f" y="%.0f" font-size="13" fill="#17202a">%s — perimeter %.1f %s, area %.1f sq %s, %s</text>`+"\n",
		opts.Padding, tr.CanvasHeight+20, title, a.Perimeter, a.Unit, a.Area, a.Unit, closure)
	sb.WriteString("</svg>\n")
	return sb.String()
}

// GeneratePanelDrawing renders the panel outline with section splits
// and hole positions, dimensioned in millimeters.
func GeneratePanelDrawing(spec *panel.Spec, opts DrawingOptions) string {
	scale := opts.Scale / 10 // panel specs are mm; keep drawings screen-sized
	pad := opts.Padding
	w := spec.Dims.Width * scale
	h := spec.Dims.Height * scale

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">`+"\n",
		w+2*pad, h+2*pad+40, w+2*pad, h+2*pad+40)
	fmt.Fprintf(&sb, `  <rect width="100%%" height="100%%" fill="#ffffff"/>`+"\n")
	fmt.Fprintf(&sb, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="#eaf2f8" stroke="#1a5276" stroke-width="2"/>`+"\n", pad, pad, w, h)

	for _, s := range spec.Sections {
		if s.XOffset == 0 {
			continue
		}
		x := pad + s.XOffset*scale
		fmt.Fprintf(&sb, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#7f8c8d" stroke-width="1" stroke-dasharray="6,4"/>`+"\n", x, pad, x, pad+h)
	}

	// SVG y grows down; hole y is measured from the panel bottom.
	for _, hole := range spec.Holes {
		cx := pad + hole.X*scale
		cy := pad + h - hole.Y*scale
		fmt.Fprintf(&sb, `  <circle cx="%.1f" cy="%.1f" r="%.1f" fill="none" stroke="#c0392b" stroke-width="1.5"/>`+"\n", cx, cy, hole.Diameter*scale/2)
		fmt.Fprintf(&sb, `  <text x="%.1f" y="%.1f" font-size="10" text-anchor="middle" fill="#c0392b">⌀%.0f</text>`+"\n", cx, cy-hole.Diameter*scale/2-3, hole.Diameter)
	}

	fmt.Fprintf(&sb, `  <text x="%.1f" y="%.0f" font-size="13" fill="#17202a">%s — %gx%gx%g mm, %s, %s</text>`+"\n",
		pad, h+2*pad+20, spec.Name, spec.Dims.Width, spec.Dims.Height, spec.Dims.Thickness, spec.GlassType, spec.EdgeType)
	sb.WriteString("</svg>\n")
	return sb.String()
}
