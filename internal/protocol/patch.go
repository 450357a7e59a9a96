package protocol

import (
	"github.com/glasstrace/boundary-engine/internal/geometry"
	"github.com/glasstrace/boundary-engine/internal/panel"
)

type PatchEnvelope struct {
	Sequence uint64 `json:"seq"`
	EventID  int64  `json:"eventId"`
	Type     string `json:"type"`
	Payload  any    `json:"payload"`
}

type VariablesChanged struct {
	Entries map[string]any `json:"entries"`
}

type TraceChanged struct {
	SegmentCount int        `json:"segmentCount"`
	Edges        []EdgeLite `json:"edges"`
}

type BoundaryAnalyzed struct {
	Analysis *geometry.Analysis `json:"analysis"`
}

type MeasurementsVerified struct {
	Verification *geometry.Verification `json:"verification"`
}

type EdgeEstimated struct {
	Estimate *geometry.Estimate `json:"estimate"`
}

type PanelReviewed struct {
	Review *panel.Review `json:"review"`
}

type PhaseChanged struct {
	Phase      string  `json:"phase"`
	Confidence float64 `json:"confidence"`
	Iteration  int     `json:"iteration"`
	Forced     bool    `json:"forced"`
}

type PhaseRejected struct {
	Phase      string  `json:"phase"`
	Confidence float64 `json:"confidence"`
	Gate       float64 `json:"gate"`
	Reason     string  `json:"reason"`
}

type OutputsGenerated struct {
	Files []string `json:"files"`
}
