package output

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glasstrace/boundary-engine/internal/geometry"
	"github.com/glasstrace/boundary-engine/internal/panel"
)

// Generator writes the full output set for a review session into one
// directory.
type Generator struct {
	OutputDir string
	Drill     DrillParams
	Drawing   DrawingOptions
}

func NewGenerator(outputDir string) *Generator {
	return &Generator{
		OutputDir: outputDir,
		Drill:     DefaultDrillParams(),
		Drawing:   DefaultDrawingOptions(),
	}
}

// GenerateAll writes every output file and returns the file names
// written. The boundary drawing is skipped when no analysis exists;
// everything else derives from the panel spec and review.
func (g *Generator) GenerateAll(spec *panel.Spec, review *panel.Review, analysis *geometry.Analysis, timestamp time.Time) ([]string, error) {
	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output dir: %w", err)
	}

	files := []struct {
		name    string
		content string
	}{
		{"cnc_program.gcode", GenerateGCode(spec, g.Drill, timestamp)},
		{"panel_drawing.svg", GeneratePanelDrawing(spec, g.Drawing)},
		{"cut_sheet.md", GenerateCutSheet(spec, review, timestamp)},
		{"validation_report.md", GenerateValidationReport(review, analysis, timestamp)},
	}
	if analysis != nil {
		files = append(files, struct {
			name    string
			content string
		}{"boundary_drawing.svg", GenerateBoundaryDrawing(analysis, spec.Name, g.Drawing)})
	}

	written := make([]string, 0, len(files))
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(g.OutputDir, f.name), []byte(f.content), 0o644); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", f.name, err)
		}
		written = append(written, f.name)
	}
	return written, nil
}
