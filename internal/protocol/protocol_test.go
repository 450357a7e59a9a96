package protocol

import (
	"encoding/json"
	"testing"
)

func TestRequestAppendSegment_Serialization(t *testing.T) {
	req := RequestAppendSegment{
		Name:      "East (Top)",
		Length:    31.4,
		Direction: "right",
		Kind:      "solid",
	}

	data, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}

	var decoded RequestAppendSegment
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}

	if decoded.Length != 31.4 || decoded.Direction != "right" {
		t.Errorf("Expected 31.4/right, got %g/%s", decoded.Length, decoded.Direction)
	}
}

func TestIntentEnvelope_DeferredPayload(t *testing.T) {
	raw := []byte(`{"type":"RequestEstimateEdge","payload":{"index":8,"min":26,"max":28}}`)

	var env IntentEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		t.Fatalf("Failed to unmarshal envelope: %v", err)
	}
	if env.Type != "RequestEstimateEdge" {
		t.Fatalf("Expected RequestEstimateEdge, got %s", env.Type)
	}

	var req RequestEstimateEdge
	if err := json.Unmarshal(env.Payload, &req); err != nil {
		t.Fatalf("Failed to unmarshal payload: %v", err)
	}
	if req.Index != 8 || req.Min != 26 || req.Max != 28 {
		t.Errorf("Expected index 8 range 26-28, got %d %g-%g", req.Index, req.Min, req.Max)
	}
}

func TestPatchEnvelope_Serialization(t *testing.T) {
	patch := PatchEnvelope{
		Sequence: 7,
		Type:     "PhaseChanged",
		Payload:  PhaseChanged{Phase: "extraction", Confidence: 92.5, Iteration: 1},
	}

	data, err := json.Marshal(patch)
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}

	var decoded struct {
		Sequence uint64       `json:"seq"`
		Type     string       `json:"type"`
		Payload  PhaseChanged `json:"payload"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}
	if decoded.Sequence != 7 || decoded.Payload.Phase != "extraction" {
		t.Errorf("Round trip lost data: %+v", decoded)
	}
}
