package output

import (
	"fmt"
	"strings"
	"time"

	"github.com/glasstrace/boundary-engine/internal/geometry"
	"github.com/glasstrace/boundary-engine/internal/panel"
)

// GenerateCutSheet renders the markdown manufacturing instructions for
// a reviewed panel.
func GenerateCutSheet(spec *panel.Spec, review *panel.Review, timestamp time.Time) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Manufacturing Cut Sheet — %s\n\n", spec.Name)
	fmt.Fprintf(&sb, "Generated: %s\n\n", timestamp.Format("2006-01-02 15:04"))

	sb.WriteString("## Panel\n\n")
	fmt.Fprintf(&sb, "| Property | Value |\n|---|---|\n")
	fmt.Fprintf(&sb, "| Width | %g mm |\n", spec.Dims.Width)
	fmt.Fprintf(&sb, "| Height | %g mm |\n", spec.Dims.Height)
	fmt.Fprintf(&sb, "| Thickness | %g mm |\n", spec.Dims.Thickness)
	fmt.Fprintf(&sb, "| Glass | %s |\n", spec.GlassType)
	fmt.Fprintf(&sb, "| Edge finish | %s |\n", spec.EdgeType)
	fmt.Fprintf(&sb, "| Weight | %.1f kg |\n", review.WeightKg)

	if len(spec.Sections) > 0 {
		sb.WriteString("\n## Sections\n\n")
		sb.WriteString("| Name | Type | Offset | Width | Height |\n|---|---|---|---|---|\n")
		for _, s := range spec.Sections {
			fmt.Fprintf(&sb, "| %s | %s | %g mm | %g mm | %g mm |\n", s.Name, s.Type, s.XOffset, s.Width, s.Height)
			if s.Tapered {
				fmt.Fprintf(&sb, "| | taper | %g mm → %g mm | from %g mm | |\n", s.WidthBottom, s.WidthTop, s.TaperStart)
			}
		}
	}

	if len(spec.Holes) > 0 {
		sb.WriteString("\n## Drill Plan\n\n")
		sb.WriteString("| # | X | Y | Diameter |\n|---|---|---|---|\n")
		for i, h := range spec.Holes {
			fmt.Fprintf(&sb, "| %d | %g mm | %g mm | %g mm |\n", i+1, h.X, h.Y, h.Diameter)
		}
	}

	if len(spec.Notes) > 0 {
		sb.WriteString("\n## Notes\n\n")
		for _, n := range spec.Notes {
			fmt.Fprintf(&sb, "- %s\n", n)
		}
	}
	return sb.String()
}

// GenerateValidationReport renders the review findings, boundary
// figures included when a trace accompanies the panel.
func GenerateValidationReport(review *panel.Review, analysis *geometry.Analysis, timestamp time.Time) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Validation Report — %s\n\n", review.SpecID)
	fmt.Fprintf(&sb, "Generated: %s\n\n", timestamp.Format("2006-01-02 15:04"))

	status := "APPROVED"
	if !review.Approved {
		status = "REJECTED"
	}
	fmt.Fprintf(&sb, "**Status: %s** (%d errors, %d warnings)\n\n", status, review.Errors, review.Warnings)

	sb.WriteString("## Checks\n\n")
	sb.WriteString("| Check | Result | Detail |\n|---|---|---|\n")
	for _, f := range review.Findings {
		result := "pass"
		if !f.Passed {
			result = f.Severity
		}
		fmt.Fprintf(&sb, "| %s | %s | %s |\n", f.Check, result, f.Message)
	}

	if analysis != nil {
		sb.WriteString("\n## Boundary\n\n")
		fmt.Fprintf(&sb, "- Perimeter: %.1f %s\n", analysis.Perimeter, analysis.Unit)
		fmt.Fprintf(&sb, "- Area: %.1f sq %s\n", analysis.Area, analysis.Unit)
		fmt.Fprintf(&sb, "- Closure error: %.3f %s (closed: %v)\n", analysis.ClosureError, analysis.Unit, analysis.IsClosed)
		if len(analysis.FlaggedAngles) > 0 {
			sb.WriteString("- Flagged corners:\n")
			for _, a := range analysis.FlaggedAngles {
				fmt.Fprintf(&sb, "  - vertex %d at %.1f°\n", a.VertexIndex, a.AngleDegrees)
			}
		}
		if analysis.OpeningLength > 0 {
			fmt.Fprintf(&sb, "- Openings: %.1f %s of the perimeter\n", analysis.OpeningLength, analysis.Unit)
		}
	}
	return sb.String()
}
