package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"path/filepath"

	"github.com/coder/websocket"

	"github.com/glasstrace/boundary-engine/internal/geometry"
	"github.com/glasstrace/boundary-engine/internal/output"
	"github.com/glasstrace/boundary-engine/internal/panel"
	"github.com/glasstrace/boundary-engine/internal/protocol"
	"github.com/glasstrace/boundary-engine/internal/web/views"
	"github.com/glasstrace/boundary-engine/internal/ws"
)

func main() {
	cfg := LoadConfig()

	trace, err := geometry.LoadTraceFromFile(filepath.Join(cfg.ContentDir, "boundary-trace.json"))
	if err != nil {
		log.Fatalf("Failed to load trace: %v", err)
	}
	segments, err := trace.ParseSegments()
	if err != nil {
		log.Fatalf("Failed to parse trace segments: %v", err)
	}

	spec, err := panel.LoadSpecFromFile(filepath.Join(cfg.ContentDir, "panel-spec.json"))
	if err != nil {
		log.Fatalf("Failed to load panel spec: %v", err)
	}

	opts := geometry.DefaultOptions()
	if trace.Unit != "" {
		opts.Unit = trace.Unit
	}

	state := &SessionState{
		TraceID:   trace.ID,
		TraceName: trace.Name,
		Segments:  segments,
		Options:   opts,
		PanelSpec: spec,
		Phases:    NewPhaseManager(),
	}

	logger := NewLogger()
	engine := NewReviewEngine(state, output.NewGenerator(cfg.OutputDir), logger)
	engine.reanalyze()
	if a := state.Analysis; a != nil {
		log.Printf("loaded trace %s: %d segments, perimeter %.1f %s, closure %.2f (closed: %v)",
			trace.ID, len(segments), a.Perimeter, a.Unit, a.ClosureError, a.IsClosed)
	}
	log.Printf("loaded panel spec %s (%gx%gx%g mm)", spec.ID, spec.Dims.Width, spec.Dims.Height, spec.Dims.Thickness)

	hub := ws.NewHub()
	sequence := NewSequenceGenerator()
	broadcaster := NewBroadcaster(hub, sequence)
	handlers := NewHandlers(engine, broadcaster, logger)

	mux := http.NewServeMux()

	outputServer := http.FileServer(http.Dir(cfg.OutputDir))
	mux.Handle("/outputs/", http.StripPrefix("/outputs/", outputServer))

	mux.HandleFunc("/stream", func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			return
		}
		hub.Add(conn)

		hello, _ := json.Marshal(protocol.PatchEnvelope{
			Sequence: 0,
			EventID:  0,
			Type:     "VariablesChanged",
			Payload:  protocol.VariablesChanged{Entries: engine.Snapshot().Variables},
		})
		_ = conn.Write(context.Background(), websocket.MessageText, hello)

		go func(c *websocket.Conn) {
			defer hub.Remove(c)
			defer c.Close(websocket.StatusNormalClosure, "")
			for {
				_, data, err := c.Read(context.Background())
				if err != nil {
					return
				}
				if err := handlers.HandleMessage(data); err != nil {
					log.Printf("intent rejected: %v", err)
				}
			}
		}(conn)
	})

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		s := engine.Snapshot()
		if err := views.IndexPage(s).Render(r.Context(), w); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})

	log.Printf("listening on :%s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, mux))
}
