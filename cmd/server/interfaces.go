package main

import (
	"github.com/glasstrace/boundary-engine/internal/protocol"
)

// Broadcaster interface for WebSocket communication
type Broadcaster interface {
	BroadcastEvent(eventType string, payload any)
}

// Logger interface for logging abstraction
type Logger interface {
	Printf(format string, v ...any)
}

// SequenceGenerator interface for sequence number generation
type SequenceGenerator interface {
	Next() uint64
}

// Patch is one typed state update produced by the engine. Handlers
// broadcast each patch in order.
type Patch struct {
	Type    string
	Payload any
}

// ReviewEngine interface for core session logic
type ReviewEngine interface {
	ProcessAppendSegment(req protocol.RequestAppendSegment) ([]Patch, error)
	ProcessUndoSegment(req protocol.RequestUndoSegment) ([]Patch, error)
	ProcessSetTolerance(req protocol.RequestSetTolerance) ([]Patch, error)
	ProcessVerifyMeasurements(req protocol.RequestVerifyMeasurements) ([]Patch, error)
	ProcessEstimateEdge(req protocol.RequestEstimateEdge) ([]Patch, error)
	ProcessValidatePanel(req protocol.RequestValidatePanel) ([]Patch, error)
	ProcessAdvancePhase(req protocol.RequestAdvancePhase) ([]Patch, error)
	ProcessGenerateOutputs(req protocol.RequestGenerateOutputs) ([]Patch, error)
	Snapshot() protocol.Snapshot
}
