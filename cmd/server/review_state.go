package main

import (
	"github.com/glasstrace/boundary-engine/internal/geometry"
	"github.com/glasstrace/boundary-engine/internal/panel"
	"github.com/glasstrace/boundary-engine/internal/protocol"
)

// Review phases in order. Each phase must clear its confidence gate
// before the session moves on; a phase that exhausts its iterations is
// forced through and the whole session is flagged for manual review.
const (
	PhaseSketch     = "sketch"
	PhaseExtraction = "extraction"
	PhaseOutputs    = "outputs"

	MaxPhaseIterations = 3
)

// PhaseInfo tracks gate progress for one phase.
type PhaseInfo struct {
	Name       string
	Gate       float64
	Confidence float64
	Iteration  int
	Forced     bool
	Complete   bool
}

// PhaseManager walks the session through the review phases.
type PhaseManager struct {
	phases       []*PhaseInfo
	current      int
	ManualReview bool
}

func NewPhaseManager() *PhaseManager {
	return &PhaseManager{
		phases: []*PhaseInfo{
			{Name: PhaseSketch, Gate: 85},
			{Name: PhaseExtraction, Gate: 90},
			{Name: PhaseOutputs, Gate: 90},
		},
	}
}

// Current returns the active phase. After the last phase completes it
// keeps returning that phase, marked complete.
func (pm *PhaseManager) Current() *PhaseInfo {
	return pm.phases[pm.current]
}

// Done reports whether every phase has completed.
func (pm *PhaseManager) Done() bool {
	last := pm.phases[len(pm.phases)-1]
	return last.Complete
}

// Advance records the confidence for the current phase and tries to
// clear its gate. A miss burns one iteration; the third miss forces
// the phase through and flags the session for manual review.
func (pm *PhaseManager) Advance(confidence float64) (advanced bool, forced bool) {
	p := pm.Current()
	if p.Complete {
		return false, false
	}
	p.Confidence = confidence
	p.Iteration++

	if confidence >= p.Gate {
		p.Complete = true
		pm.step()
		return true, false
	}
	if p.Iteration >= MaxPhaseIterations {
		p.Forced = true
		p.Complete = true
		pm.ManualReview = true
		pm.step()
		return true, true
	}
	return false, false
}

func (pm *PhaseManager) step() {
	if pm.current < len(pm.phases)-1 {
		pm.current++
	}
}

// State converts the active phase into its wire form.
func (pm *PhaseManager) State() protocol.PhaseState {
	p := pm.Current()
	return protocol.PhaseState{
		Phase:      p.Name,
		Confidence: p.Confidence,
		Gate:       p.Gate,
		Iteration:  p.Iteration,
		Forced:     p.Forced,
		Complete:   p.Complete,
	}
}

// sketchConfidence scores the boundary trace. Closure and square
// corners are what the sketch gate cares about.
func sketchConfidence(a *geometry.Analysis) float64 {
	if a == nil || len(a.Edges) == 0 {
		return 0
	}
	score := 100.0
	if !a.IsClosed {
		score -= 25
	}
	score -= 10 * float64(len(a.FlaggedAngles))
	if score < 0 {
		score = 0
	}
	return score
}

// extractionConfidence scores the panel spec review. Errors dominate;
// warnings only shave the score.
func extractionConfidence(r *panel.Review) float64 {
	if r == nil {
		return 0
	}
	score := 100.0
	score -= 20 * float64(r.Errors)
	score -= 5 * float64(r.Warnings)
	if score < 0 {
		score = 0
	}
	return score
}

// outputConfidence scores the generated output set. Nothing written
// yet means nothing to sign off on.
func outputConfidence(files []string, r *panel.Review) float64 {
	if len(files) == 0 {
		return 0
	}
	score := 100.0
	if r != nil {
		score -= 5 * float64(r.Warnings)
	}
	if score < 0 {
		score = 0
	}
	return score
}
