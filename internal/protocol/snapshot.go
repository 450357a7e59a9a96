package protocol

import (
	"github.com/glasstrace/boundary-engine/internal/geometry"
	"github.com/glasstrace/boundary-engine/internal/panel"
)

// EdgeLite is the trimmed edge form sent to the review page.
type EdgeLite struct {
	Index     int     `json:"index"`
	Name      string  `json:"name,omitempty"`
	Length    float64 `json:"length"`
	Direction string  `json:"direction"`
	Kind      string  `json:"kind"`
	Compass   string  `json:"compass"`
}

// PhaseState mirrors the review session's gate progress.
type PhaseState struct {
	Phase      string  `json:"phase"`
	Confidence float64 `json:"confidence"`
	Gate       float64 `json:"gate"`
	Iteration  int     `json:"iteration"`
	Forced     bool    `json:"forced"`
	Complete   bool    `json:"complete"`
}

// Snapshot is the full session state rendered into the review page and
// offered to late-joining stream clients.
type Snapshot struct {
	TraceID         string             `json:"traceId"`
	TraceName       string             `json:"traceName"`
	Unit            string             `json:"unit"`
	Edges           []EdgeLite         `json:"edges"`
	Analysis        *geometry.Analysis `json:"analysis,omitempty"`
	PanelSpecID     string             `json:"panelSpecId,omitempty"`
	PanelReview     *panel.Review      `json:"panelReview,omitempty"`
	Phase           PhaseState         `json:"phase"`
	GeneratedFiles  []string           `json:"generatedFiles,omitempty"`
	Variables       map[string]any     `json:"variables,omitempty"`
	ProtocolVersion string             `json:"protocolVersion"`
}
