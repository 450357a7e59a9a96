package geometry

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// SegmentDefinition is one stroke as recorded in a trace file.
type SegmentDefinition struct {
	Name      string  `json:"name,omitempty"`
	Length    float64 `json:"length"`
	Direction string  `json:"direction"`
	Kind      string  `json:"kind,omitempty"`
}

// TraceDefinition is the on-disk form of a transcribed boundary sketch.
type TraceDefinition struct {
	ID       string              `json:"id"`
	Name     string              `json:"name"`
	Unit     string              `json:"unit"`
	Segments []SegmentDefinition `json:"segments"`
}

// LoadTraceFromFile loads a trace definition from a JSON file.
func LoadTraceFromFile(filepath string) (*TraceDefinition, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read trace file: %w", err)
	}

	var trace TraceDefinition
	if err := json.Unmarshal(data, &trace); err != nil {
		return nil, fmt.Errorf("failed to parse trace JSON: %w", err)
	}
	if len(trace.Segments) == 0 {
		return nil, fmt.Errorf("trace %q has no segments", trace.ID)
	}
	return &trace, nil
}

// directionAliases accept the compass spellings that appear on older
// sketches alongside the up/down/left/right vocabulary.
var directionAliases = map[string]Direction{
	"up": Up, "n": Up, "north": Up,
	"down": Down, "s": Down, "south": Down,
	"left": Left, "w": Left, "west": Left,
	"right": Right, "e": Right, "east": Right,
}

// ParseDirection resolves a recorded direction string.
func ParseDirection(s string) (Direction, error) {
	if d, ok := directionAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return d, nil
	}
	return "", fmt.Errorf("unknown direction %q", s)
}

// ParseSegments converts the definition into analyzable segments.
// Unknown kinds default to solid; transcription errors surface here
// rather than during analysis.
func (t *TraceDefinition) ParseSegments() ([]Segment, error) {
	segments := make([]Segment, 0, len(t.Segments))
	for i, def := range t.Segments {
		dir, err := ParseDirection(def.Direction)
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}
		kind := Solid
		if strings.EqualFold(def.Kind, string(Opening)) {
			kind = Opening
		}
		segments = append(segments, Segment{
			Name:      def.Name,
			Length:    def.Length,
			Direction: dir,
			Kind:      kind,
		})
	}
	return segments, nil
}
