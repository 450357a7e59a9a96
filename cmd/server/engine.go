package main

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/glasstrace/boundary-engine/internal/geometry"
	"github.com/glasstrace/boundary-engine/internal/output"
	"github.com/glasstrace/boundary-engine/internal/panel"
	"github.com/glasstrace/boundary-engine/internal/protocol"
)

// SessionState is everything one review session owns: the boundary
// trace being built, the panel spec under validation, and the phase
// gates between them.
type SessionState struct {
	TraceID   string
	TraceName string
	Segments  []geometry.Segment
	Options   geometry.Options
	Analysis  *geometry.Analysis

	PanelSpec   *panel.Spec
	PanelReview *panel.Review

	Phases         *PhaseManager
	GeneratedFiles []string

	Lock sync.Mutex
}

// ReviewEngineImpl implements the ReviewEngine interface
type ReviewEngineImpl struct {
	state     *SessionState
	generator *output.Generator
	logger    Logger
	now       func() time.Time
}

// NewReviewEngine creates a review engine with dependencies
func NewReviewEngine(state *SessionState, generator *output.Generator, logger Logger) *ReviewEngineImpl {
	return &ReviewEngineImpl{
		state:     state,
		generator: generator,
		logger:    logger,
		now:       time.Now,
	}
}

// reanalyze refreshes the boundary analysis after any trace change.
// Too few segments for an area is a normal intermediate state, not a
// failure; the analysis just goes away until the trace grows back.
func (e *ReviewEngineImpl) reanalyze() {
	a, err := geometry.Analyze(e.state.Segments, e.state.Options)
	if err != nil {
		var ge *geometry.Error
		if errors.As(err, &ge) && ge.Code == geometry.CodeInsufficientVertices {
			e.state.Analysis = nil
			return
		}
		e.logger.Printf("analysis failed: %v", err)
		e.state.Analysis = nil
		return
	}
	e.state.Analysis = a
}

func (e *ReviewEngineImpl) tracePatches() []Patch {
	patches := []Patch{
		{Type: "TraceChanged", Payload: protocol.TraceChanged{
			SegmentCount: len(e.state.Segments),
			Edges:        edgesLite(e.state.Segments),
		}},
	}
	if e.state.Analysis != nil {
		patches = append(patches, Patch{
			Type:    "BoundaryAnalyzed",
			Payload: protocol.BoundaryAnalyzed{Analysis: e.state.Analysis},
		})
	}
	return patches
}

func (e *ReviewEngineImpl) ProcessAppendSegment(req protocol.RequestAppendSegment) ([]Patch, error) {
	dir, err := geometry.ParseDirection(req.Direction)
	if err != nil {
		return nil, fmt.Errorf("append rejected: %w", err)
	}
	if req.Length <= 0 {
		return nil, fmt.Errorf("append rejected: length %v must be positive", req.Length)
	}
	kind := geometry.Solid
	if req.Kind == string(geometry.Opening) {
		kind = geometry.Opening
	}

	e.state.Lock.Lock()
	defer e.state.Lock.Unlock()

	e.state.Segments = append(e.state.Segments, geometry.Segment{
		Name:      req.Name,
		Length:    req.Length,
		Direction: dir,
		Kind:      kind,
	})
	e.reanalyze()
	e.logger.Printf("trace %s: appended %q %v %s (%d segments)",
		e.state.TraceID, req.Name, req.Length, dir, len(e.state.Segments))
	return e.tracePatches(), nil
}

func (e *ReviewEngineImpl) ProcessUndoSegment(protocol.RequestUndoSegment) ([]Patch, error) {
	e.state.Lock.Lock()
	defer e.state.Lock.Unlock()

	if len(e.state.Segments) == 0 {
		return nil, errors.New("nothing to undo")
	}
	e.state.Segments = e.state.Segments[:len(e.state.Segments)-1]
	e.reanalyze()
	return e.tracePatches(), nil
}

func (e *ReviewEngineImpl) ProcessSetTolerance(req protocol.RequestSetTolerance) ([]Patch, error) {
	if req.ClosureTolerance < 0 || req.AngleFlagTolerance < 0 {
		return nil, errors.New("tolerances must be non-negative")
	}

	e.state.Lock.Lock()
	defer e.state.Lock.Unlock()

	if req.ClosureTolerance > 0 {
		e.state.Options.ClosureTolerance = req.ClosureTolerance
	}
	if req.AngleFlagTolerance > 0 {
		e.state.Options.AngleFlagTolerance = req.AngleFlagTolerance
	}
	e.reanalyze()

	patches := []Patch{
		{Type: "VariablesChanged", Payload: protocol.VariablesChanged{Entries: map[string]any{
			"closureTolerance":   e.state.Options.ClosureTolerance,
			"angleFlagTolerance": e.state.Options.AngleFlagTolerance,
		}}},
	}
	if e.state.Analysis != nil {
		patches = append(patches, Patch{
			Type:    "BoundaryAnalyzed",
			Payload: protocol.BoundaryAnalyzed{Analysis: e.state.Analysis},
		})
	}
	return patches, nil
}

func (e *ReviewEngineImpl) ProcessVerifyMeasurements(req protocol.RequestVerifyMeasurements) ([]Patch, error) {
	e.state.Lock.Lock()
	defer e.state.Lock.Unlock()

	tolerance := req.Tolerance
	if tolerance <= 0 {
		tolerance = e.state.Options.ClosureTolerance
	}

	v, err := geometry.VerifyMeasurements(e.state.Segments, req.Expected, tolerance)
	if err != nil {
		return nil, fmt.Errorf("verification failed: %w", err)
	}
	e.logger.Printf("trace %s: verified %d/%d edges (%.0f%%)",
		e.state.TraceID, v.Matches, v.Total, v.AccuracyPercent)
	return []Patch{
		{Type: "MeasurementsVerified", Payload: protocol.MeasurementsVerified{Verification: v}},
	}, nil
}

// ProcessEstimateEdge solves an uncertain edge from the closure
// constraint and writes the solved length back into the trace.
func (e *ReviewEngineImpl) ProcessEstimateEdge(req protocol.RequestEstimateEdge) ([]Patch, error) {
	e.state.Lock.Lock()
	defer e.state.Lock.Unlock()

	est, err := geometry.EstimateUncertainEdge(e.state.Segments, req.Index, req.Min, req.Max)
	if err != nil {
		return nil, fmt.Errorf("estimation failed: %w", err)
	}
	e.state.Segments[req.Index].Length = est.Estimated
	e.reanalyze()
	e.logger.Printf("trace %s: edge %d estimated at %v (adjustment %+.2f, within range: %v)",
		e.state.TraceID, req.Index, est.Estimated, est.Adjustment, est.WithinRange)

	patches := []Patch{
		{Type: "EdgeEstimated", Payload: protocol.EdgeEstimated{Estimate: est}},
	}
	return append(patches, e.tracePatches()...), nil
}

func (e *ReviewEngineImpl) ProcessValidatePanel(protocol.RequestValidatePanel) ([]Patch, error) {
	e.state.Lock.Lock()
	defer e.state.Lock.Unlock()

	if e.state.PanelSpec == nil {
		return nil, errors.New("no panel spec loaded")
	}
	e.state.PanelReview = panel.Evaluate(e.state.PanelSpec)
	e.logger.Printf("panel %s: %d errors, %d warnings, approved: %v",
		e.state.PanelSpec.ID, e.state.PanelReview.Errors, e.state.PanelReview.Warnings, e.state.PanelReview.Approved)
	return []Patch{
		{Type: "PanelReviewed", Payload: protocol.PanelReviewed{Review: e.state.PanelReview}},
	}, nil
}

// ProcessAdvancePhase scores the current phase from the session's
// artifacts and tries to clear the gate. Confidence is computed, never
// asserted by the client.
func (e *ReviewEngineImpl) ProcessAdvancePhase(protocol.RequestAdvancePhase) ([]Patch, error) {
	e.state.Lock.Lock()
	defer e.state.Lock.Unlock()

	pm := e.state.Phases
	phase := pm.Current()
	if pm.Done() {
		return nil, errors.New("review already complete")
	}

	var confidence float64
	switch phase.Name {
	case PhaseSketch:
		confidence = sketchConfidence(e.state.Analysis)
	case PhaseExtraction:
		confidence = extractionConfidence(e.state.PanelReview)
	case PhaseOutputs:
		confidence = outputConfidence(e.state.GeneratedFiles, e.state.PanelReview)
	}

	advanced, forced := pm.Advance(confidence)
	if !advanced {
		e.logger.Printf("phase %s rejected: confidence %.0f below gate %.0f (iteration %d/%d)",
			phase.Name, confidence, phase.Gate, phase.Iteration, MaxPhaseIterations)
		return []Patch{
			{Type: "PhaseRejected", Payload: protocol.PhaseRejected{
				Phase:      phase.Name,
				Confidence: confidence,
				Gate:       phase.Gate,
				Reason:     fmt.Sprintf("confidence %.0f below gate %.0f", confidence, phase.Gate),
			}},
		}, nil
	}

	next := pm.Current()
	e.logger.Printf("phase %s cleared at %.0f (forced: %v), now in %s", phase.Name, confidence, forced, next.Name)
	return []Patch{
		{Type: "PhaseChanged", Payload: protocol.PhaseChanged{
			Phase:      next.Name,
			Confidence: confidence,
			Iteration:  phase.Iteration,
			Forced:     forced,
		}},
	}, nil
}

func (e *ReviewEngineImpl) ProcessGenerateOutputs(protocol.RequestGenerateOutputs) ([]Patch, error) {
	e.state.Lock.Lock()
	defer e.state.Lock.Unlock()

	if e.state.PanelSpec == nil {
		return nil, errors.New("no panel spec loaded")
	}
	if e.state.PanelReview == nil {
		e.state.PanelReview = panel.Evaluate(e.state.PanelSpec)
	}

	files, err := e.generator.GenerateAll(e.state.PanelSpec, e.state.PanelReview, e.state.Analysis, e.now())
	if err != nil {
		return nil, fmt.Errorf("output generation failed: %w", err)
	}
	e.state.GeneratedFiles = files
	e.logger.Printf("wrote %d output files to %s", len(files), e.generator.OutputDir)
	return []Patch{
		{Type: "OutputsGenerated", Payload: protocol.OutputsGenerated{Files: files}},
	}, nil
}

func (e *ReviewEngineImpl) Snapshot() protocol.Snapshot {
	e.state.Lock.Lock()
	defer e.state.Lock.Unlock()

	s := protocol.Snapshot{
		TraceID:        e.state.TraceID,
		TraceName:      e.state.TraceName,
		Unit:           e.state.Options.Unit,
		Edges:          edgesLite(e.state.Segments),
		Analysis:       e.state.Analysis,
		Phase:          e.state.Phases.State(),
		GeneratedFiles: e.state.GeneratedFiles,
		Variables: map[string]any{
			"closureTolerance":   e.state.Options.ClosureTolerance,
			"angleFlagTolerance": e.state.Options.AngleFlagTolerance,
			"manualReview":       e.state.Phases.ManualReview,
		},
		ProtocolVersion: "v0",
	}
	if e.state.PanelSpec != nil {
		s.PanelSpecID = e.state.PanelSpec.ID
	}
	s.PanelReview = e.state.PanelReview
	return s
}

func edgesLite(segments []geometry.Segment) []protocol.EdgeLite {
	edges := make([]protocol.EdgeLite, len(segments))
	for i, seg := range segments {
		dx, dy := seg.Delta()
		edges[i] = protocol.EdgeLite{
			Index:     i,
			Name:      seg.Name,
			Length:    seg.Length,
			Direction: string(seg.Direction),
			Kind:      string(seg.Kind),
			Compass:   geometry.CompassOf(dx, dy),
		}
	}
	return edges
}
