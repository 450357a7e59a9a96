package panel

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// PositionTolerance is the slack allowed when section widths and
// offsets are tiled against the panel width, in millimeters.
const PositionTolerance = 0.1

// GlassDensity is soda-lime glass, kg/m3.
const GlassDensity = 2500.0

// edgeMinThickness maps edge finish to the minimum glass thickness
// that can carry it, in millimeters.
var edgeMinThickness = map[string]float64{
	"flat_polished":   3,
	"pencil_polished": 3,
	"beveled":         6,
	"mitered":         10,
	"ogee":            12,
}

// minThicknessForArea returns the thickness floor for a panel area in
// square millimeters.
func minThicknessForArea(area float64) float64 {
	switch {
	case area <= 1_000_000:
		return 4
	case area <= 2_000_000:
		return 6
	case area <= 4_000_000:
		return 8
	case area <= 8_000_000:
		return 10
	default:
		return 12
	}
}

// CheckSections validates that section widths sum to the panel width
// and tile it contiguously from the left edge.
func CheckSections(spec *Spec) Finding {
	if len(spec.Sections) == 0 {
		if spec.Dims.Width > 0 && spec.Dims.Height > 0 {
			return Finding{Check: "section_positions", Passed: true, Message: "single-section panel"}
		}
		return Finding{
			Check:    "section_positions",
			Passed:   false,
			Severity: SeverityError,
			Message:  fmt.Sprintf("panel dimensions %gx%g are not positive", spec.Dims.Width, spec.Dims.Height),
		}
	}

	var sum float64
	for _, s := range spec.Sections {
		sum += s.Width
	}
	if math.Abs(sum-spec.Dims.Width) > PositionTolerance {
		return Finding{
			Check:    "section_positions",
			Passed:   false,
			Severity: SeverityError,
			Message:  fmt.Sprintf("section widths sum to %.1fmm, panel is %.1fmm", sum, spec.Dims.Width),
			Correction: map[string]any{
				"widthSum":  sum,
				"expected":  spec.Dims.Width,
				"shortfall": spec.Dims.Width - sum,
			},
		}
	}

	sorted := make([]Section, len(spec.Sections))
	copy(sorted, spec.Sections)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].XOffset < sorted[j].XOffset })
	var expected float64
	for i, s := range sorted {
		if math.Abs(s.XOffset-expected) > PositionTolerance {
			return Finding{
				Check:    "section_positions",
				Passed:   false,
				Severity: SeverityError,
				Message:  fmt.Sprintf("section %d starts at %.1fmm, expected %.1fmm (gap or overlap)", i, s.XOffset, expected),
				Correction: map[string]any{
					"sectionIndex":    i,
					"suggestedOffset": expected,
				},
			}
		}
		expected = s.XOffset + s.Width
	}
	if math.Abs(expected-spec.Dims.Width) > PositionTolerance {
		return Finding{
			Check:    "section_positions",
			Passed:   false,
			Severity: SeverityError,
			Message:  fmt.Sprintf("sections end at %.1fmm, panel is %.1fmm wide", expected, spec.Dims.Width),
		}
	}
	return Finding{Check: "section_positions", Passed: true, Message: fmt.Sprintf("%d sections tile the panel width", len(spec.Sections))}
}

// CheckHoles validates that every hole sits inside the panel with the
// required edge distance and that holes keep minimum spacing from each
// other. Edge distance is the larger of twice the glass thickness and
// 25mm; spacing is twice the larger diameter of the pair.
func CheckHoles(spec *Spec) Finding {
	if len(spec.Holes) == 0 {
		return Finding{Check: "hole_positions", Passed: true, Message: "no holes specified"}
	}

	minEdge := 25.0
	if spec.Dims.Thickness > 0 {
		minEdge = math.Max(2*spec.Dims.Thickness, 25.0)
	}

	for i, h := range spec.Holes {
		r := h.Diameter / 2
		if h.X <= 0 || h.Y <= 0 {
			return holeFinding(i, fmt.Sprintf("hole %d center (%.1f,%.1f) is not inside the panel", i, h.X, h.Y), nil)
		}
		if h.X-r < minEdge || h.X+r > spec.Dims.Width-minEdge ||
			h.Y-r < minEdge || h.Y+r > spec.Dims.Height-minEdge {
			return holeFinding(i, fmt.Sprintf("hole %d violates the %.0fmm edge distance", i, minEdge), map[string]any{
				"minEdgeDistance": minEdge,
			})
		}
		for j := i + 1; j < len(spec.Holes); j++ {
			other := spec.Holes[j]
			dist := math.Hypot(h.X-other.X, h.Y-other.Y)
			minSpacing := 2 * math.Max(h.Diameter, other.Diameter)
			if dist < minSpacing {
				return holeFinding(i, fmt.Sprintf("holes %d and %d are %.1fmm apart, need %.1fmm", i, j, dist, minSpacing), map[string]any{
					"minSpacing": minSpacing,
					"actual":     dist,
				})
			}
		}
	}
	return Finding{Check: "hole_positions", Passed: true, Message: fmt.Sprintf("%d holes positioned correctly", len(spec.Holes))}
}

func holeFinding(index int, message string, correction map[string]any) Finding {
	if correction == nil {
		correction = map[string]any{}
	}
	correction["holeIndex"] = index
	return Finding{
		Check:      "hole_positions",
		Passed:     false,
		Severity:   SeverityError,
		Message:    message,
		Correction: correction,
	}
}

// CheckFeasibility applies the manufacturing constraints: aspect
// ratio, thickness floor by panel area, hole diameter limits, edge
// finish thickness, and tempered-glass minimum sides.
func CheckFeasibility(spec *Spec) Finding {
	d := spec.Dims
	if d.Width <= 0 || d.Height <= 0 || d.Thickness <= 0 {
		return feasibilityFail(fmt.Sprintf("dimensions %gx%gx%g are not positive", d.Width, d.Height, d.Thickness), nil)
	}

	aspect := math.Max(d.Width, d.Height) / math.Min(d.Width, d.Height)
	if aspect > 10 {
		return feasibilityFail(fmt.Sprintf("aspect ratio %.1f exceeds 10:1", aspect), nil)
	}

	if minT := minThicknessForArea(d.Width * d.Height); d.Thickness < minT {
		return feasibilityFail(fmt.Sprintf("thickness %.0fmm below the %.0fmm floor for this panel area", d.Thickness, minT), map[string]any{
			"minThickness": minT,
		})
	}

	for i, h := range spec.Holes {
		if h.Diameter <= 0 {
			continue
		}
		if h.Diameter < d.Thickness {
			return feasibilityFail(fmt.Sprintf("hole %d diameter %.0fmm is below the glass thickness %.0fmm", i, h.Diameter, d.Thickness), map[string]any{
				"holeIndex": i,
			})
		}
		if maxHole := math.Min(d.Width, d.Height) / 3; h.Diameter > maxHole {
			return feasibilityFail(fmt.Sprintf("hole %d diameter %.0fmm exceeds the %.0fmm maximum for this panel", i, h.Diameter, maxHole), map[string]any{
				"holeIndex":   i,
				"maxDiameter": maxHole,
			})
		}
	}

	minEdgeT, ok := edgeMinThickness[spec.EdgeType]
	if !ok {
		minEdgeT = 3
	}
	if d.Thickness < minEdgeT {
		return feasibilityFail(fmt.Sprintf("edge type %q needs at least %.0fmm glass", spec.EdgeType, minEdgeT), map[string]any{
			"minThickness": minEdgeT,
		})
	}

	if isTempered(spec.GlassType) && (d.Width < 100 || d.Height < 100) {
		return feasibilityFail("tempered panels need at least 100mm on each side", nil)
	}

	return Finding{Check: "geometric_feasibility", Passed: true, Message: "panel is manufacturable"}
}

func feasibilityFail(message string, correction map[string]any) Finding {
	return Finding{
		Check:      "geometric_feasibility",
		Passed:     false,
		Severity:   SeverityError,
		Message:    message,
		Correction: correction,
	}
}

func isTempered(glassType string) bool {
	return strings.Contains(strings.ToLower(glassType), "tempered")
}

// CheckTaper validates door taper geometry. Door sections taper, they
// never notch; a taper must widen upward and start below the section
// height. Taper problems are warnings with suggested corrections
// because the reviewer usually just re-reads the sketch.
func CheckTaper(spec *Spec) Finding {
	for i, s := range spec.Sections {
		if s.Type != "door" && i != 0 {
			continue
		}
		if s.HasNotch {
			return Finding{
				Check:    "taper_validation",
				Passed:   false,
				Severity: SeverityWarning,
				Message:  "door sections taper, they do not notch",
				Correction: map[string]any{
					"sectionIndex": i,
					"hasNotch":     false,
					"tapered":      true,
				},
			}
		}
		if !s.Tapered {
			continue
		}
		if s.WidthTop <= s.WidthBottom {
			return Finding{
				Check:    "taper_validation",
				Passed:   false,
				Severity: SeverityWarning,
				Message:  fmt.Sprintf("taper invalid: top width %.1fmm must exceed bottom width %.1fmm", s.WidthTop, s.WidthBottom),
				Correction: map[string]any{
					"sectionIndex":      i,
					"suggestedWidthTop": s.WidthBottom + 0.2,
				},
			}
		}
		if s.TaperStart >= s.Height {
			return Finding{
				Check:    "taper_validation",
				Passed:   false,
				Severity: SeverityWarning,
				Message:  fmt.Sprintf("taper start %.1fmm is at or above the section height %.1fmm", s.TaperStart, s.Height),
				Correction: map[string]any{
					"sectionIndex":        i,
					"suggestedTaperStart": s.Height - 10,
				},
			}
		}
		return Finding{
			Check:   "taper_validation",
			Passed:  true,
			Message: fmt.Sprintf("door taper ok: %.1fmm to %.1fmm from %.1fmm", s.WidthBottom, s.WidthTop, s.TaperStart),
		}
	}
	return Finding{Check: "taper_validation", Passed: true, Message: "no tapered sections"}
}

// Weight computes the panel weight in kilograms: glass volume minus
// drilled holes, at soda-lime density.
func Weight(spec *Spec) float64 {
	d := spec.Dims
	w, h, t := d.Width/1000, d.Height/1000, d.Thickness/1000
	volume := w * h * t
	for _, hole := range spec.Holes {
		r := hole.Diameter / 2000
		volume -= math.Pi * r * r * t
	}
	return volume * GlassDensity
}
