// Package output emits the manufacturing files for a reviewed panel:
// a CNC drill program, an SVG technical drawing, and markdown reports.
package output

import (
	"fmt"
	"strings"
	"time"

	"github.com/glasstrace/boundary-engine/internal/panel"
)

// DrillParams are the CNC parameters for diamond drilling glass.
type DrillParams struct {
	SafeZ        float64 // retract height, mm
	RapidZ       float64 // approach height, mm
	PeckDepth    float64 // peck increment, mm
	PlungeFeed   int     // mm/min
	SpindleSpeed int     // rpm
}

// DefaultDrillParams are conservative values for diamond core bits
// with water coolant.
func DefaultDrillParams() DrillParams {
	return DrillParams{
		SafeZ:        10.0,
		RapidZ:       3.0,
		PeckDepth:    1.5,
		PlungeFeed:   10,
		SpindleSpeed: 3000,
	}
}

// GenerateGCode renders the drilling program for the panel. Holes are
// drilled through with 2mm clearance using a G83 peck cycle.
func GenerateGCode(spec *panel.Spec, params DrillParams, timestamp time.Time) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "; GLASS PANEL CNC DRILLING PROGRAM\n")
	fmt.Fprintf(&sb, "; Generated: %s\n", timestamp.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&sb, "; Panel: %s (%gx%gx%g mm, %d holes)\n", spec.ID, spec.Dims.Width, spec.Dims.Height, spec.Dims.Thickness, len(spec.Holes))
	fmt.Fprintf(&sb, ";\n")
	fmt.Fprintf(&sb, "; Requires diamond core bits, continuous water coolant,\n")
	fmt.Fprintf(&sb, "; back support plate and secure fixturing.\n")
	sb.WriteString("%\n")
	sb.WriteString("O0001 (GLASS PANEL DRILLING)\n")
	sb.WriteString("G90 G94 G17 G40 G49 G80 ; safety block\n")
	sb.WriteString("G21 ; metric\n")
	sb.WriteString("G28 G91 Z0\n")
	sb.WriteString("G90\n")
	sb.WriteString("G54 ; origin at bottom-left corner of panel\n")
	fmt.Fprintf(&sb, "S%d M3\n", params.SpindleSpeed)
	sb.WriteString("G4 P2000 ; spindle spin-up\n")
	sb.WriteString("M8 ; coolant on\n")
	fmt.Fprintf(&sb, "G0 Z%g\n", params.SafeZ)

	depth := spec.Dims.Thickness + 2
	for i, h := range spec.Holes {
		fmt.Fprintf(&sb, "\n; hole %d of %d: %.0fmm at (%.1f, %.1f)\n", i+1, len(spec.Holes), h.Diameter, h.X, h.Y)
		fmt.Fprintf(&sb, "G0 X%.3f Y%.3f\n", h.X, h.Y)
		fmt.Fprintf(&sb, "G0 Z%g\n", params.RapidZ)
		fmt.Fprintf(&sb, "G83 X%.3f Y%.3f Z-%.3f R%g Q%g F%d\n", h.X, h.Y, depth, params.RapidZ, params.PeckDepth, params.PlungeFeed)
		sb.WriteString("G80\n")
		fmt.Fprintf(&sb, "G0 Z%g\n", params.SafeZ)
	}

	sb.WriteString("\nM9 ; coolant off\n")
	fmt.Fprintf(&sb, "G0 Z%g\n", params.SafeZ)
	sb.WriteString("M5\n")
	sb.WriteString("G28 G91 Z0\n")
	sb.WriteString("G28 X0 Y0\n")
	sb.WriteString("G90\n")
	sb.WriteString("M30\n")
	sb.WriteString("%\n")
	return sb.String()
}
