package main

import (
	"encoding/json"
	"fmt"

	"github.com/glasstrace/boundary-engine/internal/protocol"
)

// Handlers decode intent envelopes, dispatch them to the engine, and
// broadcast the resulting patches in order.
type Handlers struct {
	engine      ReviewEngine
	broadcaster Broadcaster
	logger      Logger
}

func NewHandlers(engine ReviewEngine, broadcaster Broadcaster, logger Logger) *Handlers {
	return &Handlers{
		engine:      engine,
		broadcaster: broadcaster,
		logger:      logger,
	}
}

func (h *Handlers) broadcast(patches []Patch) {
	for _, p := range patches {
		h.broadcaster.BroadcastEvent(p.Type, p.Payload)
	}
}

func (h *Handlers) dispatch(patches []Patch, err error, intent string) error {
	if err != nil {
		h.logger.Printf("%s failed: %v", intent, err)
		return err
	}
	h.broadcast(patches)
	return nil
}

func (h *Handlers) HandleMessage(data []byte) error {
	var env protocol.IntentEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("bad intent envelope: %w", err)
	}

	switch env.Type {
	case "RequestAppendSegment":
		var req protocol.RequestAppendSegment
		if err := json.Unmarshal(env.Payload, &req); err != nil {
			return err
		}
		patches, err := h.engine.ProcessAppendSegment(req)
		return h.dispatch(patches, err, env.Type)

	case "RequestUndoSegment":
		patches, err := h.engine.ProcessUndoSegment(protocol.RequestUndoSegment{})
		return h.dispatch(patches, err, env.Type)

	case "RequestSetTolerance":
		var req protocol.RequestSetTolerance
		if err := json.Unmarshal(env.Payload, &req); err != nil {
			return err
		}
		patches, err := h.engine.ProcessSetTolerance(req)
		return h.dispatch(patches, err, env.Type)

	case "RequestVerifyMeasurements":
		var req protocol.RequestVerifyMeasurements
		if err := json.Unmarshal(env.Payload, &req); err != nil {
			return err
		}
		patches, err := h.engine.ProcessVerifyMeasurements(req)
		return h.dispatch(patches, err, env.Type)

	case "RequestEstimateEdge":
		var req protocol.RequestEstimateEdge
		if err := json.Unmarshal(env.Payload, &req); err != nil {
			return err
		}
		patches, err := h.engine.ProcessEstimateEdge(req)
		return h.dispatch(patches, err, env.Type)

	case "RequestValidatePanel":
		patches, err := h.engine.ProcessValidatePanel(protocol.RequestValidatePanel{})
		return h.dispatch(patches, err, env.Type)

	case "RequestAdvancePhase":
		patches, err := h.engine.ProcessAdvancePhase(protocol.RequestAdvancePhase{})
		return h.dispatch(patches, err, env.Type)

	case "RequestGenerateOutputs":
		patches, err := h.engine.ProcessGenerateOutputs(protocol.RequestGenerateOutputs{})
		return h.dispatch(patches, err, env.Type)

	default:
		h.logger.Printf("Unknown message type: %s", env.Type)
		return nil
	}
}
