package protocol

import "encoding/json"

type IntentEnvelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type RequestAppendSegment struct {
	Name      string  `json:"name,omitempty"`
	Length    float64 `json:"length"`
	Direction string  `json:"direction"`
	Kind      string  `json:"kind,omitempty"`
}

type RequestUndoSegment struct {
}

type RequestSetTolerance struct {
	ClosureTolerance   float64 `json:"closureTolerance"`
	AngleFlagTolerance float64 `json:"angleFlagTolerance"`
}

type RequestVerifyMeasurements struct {
	Expected  []float64 `json:"expected"`
	Tolerance float64   `json:"tolerance,omitempty"`
}

type RequestEstimateEdge struct {
	Index int     `json:"index"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

type RequestValidatePanel struct {
}

type RequestAdvancePhase struct {
}

type RequestGenerateOutputs struct {
}
