// Package panel validates glass panel specifications against
// manufacturing constraints. Checks quantify problems as findings
// rather than rejecting the spec; hard geometry violations and
// advisory warnings are distinguished by severity.
package panel

// Dimensions are the outer panel dimensions in millimeters.
type Dimensions struct {
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	Thickness float64 `json:"thickness"`
}

// Section is one horizontal panel section. A tapered door section
// widens from WidthBottom to WidthTop starting at TaperStart.
type Section struct {
	Name        string  `json:"name,omitempty"`
	Type        string  `json:"type,omitempty"`
	XOffset     float64 `json:"xOffset"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	Tapered     bool    `json:"tapered,omitempty"`
	WidthBottom float64 `json:"widthBottom,omitempty"`
	WidthTop    float64 `json:"widthTop,omitempty"`
	TaperStart  float64 `json:"taperStart,omitempty"`
	HasNotch    bool    `json:"hasNotch,omitempty"`
}

// Hole is a drilled hole, center coordinates from the bottom-left
// corner of the panel.
type Hole struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Diameter float64 `json:"diameter"`
}

// Spec is a full glass panel specification.
type Spec struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	GlassType string     `json:"glassType"`
	EdgeType  string     `json:"edgeType"`
	Dims      Dimensions `json:"dimensions"`
	Sections  []Section  `json:"sections,omitempty"`
	Holes     []Hole     `json:"holes,omitempty"`
	Notes     []string   `json:"notes,omitempty"`
}

// Severity levels for findings.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Finding is the outcome of one validation check.
type Finding struct {
	Check      string         `json:"check"`
	Passed     bool           `json:"passed"`
	Severity   string         `json:"severity,omitempty"`
	Message    string         `json:"message"`
	Correction map[string]any `json:"correction,omitempty"`
}

// Review aggregates the findings for one spec.
type Review struct {
	SpecID   string    `json:"specId"`
	Findings []Finding `json:"findings"`
	Errors   int       `json:"errors"`
	Warnings int       `json:"warnings"`
	Approved bool      `json:"approved"`
	WeightKg float64   `json:"weightKg"`
}
