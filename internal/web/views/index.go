// Package views renders the review pages. Components implement
// templ.Component directly so the page can embed the session snapshot
// without a build step.
package views

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/glasstrace/boundary-engine/internal/protocol"
)

// IndexPage renders the review page for one session. The snapshot is
// embedded as JSON for the stream client; the visible summary is
// rendered server-side so the page is useful before the socket opens.
func IndexPage(s protocol.Snapshot) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		snapshot, err := json.Marshal(s)
		if err != nil {
			return fmt.Errorf("failed to marshal snapshot: %w", err)
		}

		if _, err := io.WriteString(w, "<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n"); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "<meta charset=\"UTF-8\"/>\n<title>%s — Boundary Review</title>\n", templ.EscapeString(s.TraceName)); err != nil {
			return err
		}
		if _, err := io.WriteString(w, pageStyle); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "</head>\n<body>\n"); err != nil {
			return err
		}

		if err := header(s).Render(ctx, w); err != nil {
			return err
		}
		if err := summary(s).Render(ctx, w); err != nil {
			return err
		}
		if err := edgeTable(s).Render(ctx, w); err != nil {
			return err
		}

		if _, err := io.WriteString(w, "<section id=\"patch-log\" class=\"panel\"><h2>Stream</h2><ul id=\"patches\"></ul></section>\n"); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "<script id=\"snapshot\" type=\"application/json\">%s</script>\n", snapshot); err != nil {
			return err
		}
		if _, err := io.WriteString(w, streamScript); err != nil {
			return err
		}
		_, err = io.WriteString(w, "</body>\n</html>\n")
		return err
	})
}

func header(s protocol.Snapshot) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		phase := s.Phase
		_, err := fmt.Fprintf(w,
			"<header><h1>%s</h1><p class=\"phase\">phase: %s · confidence %.0f/%.0f · iteration %d</p></header>\n",
			templ.EscapeString(s.TraceName), templ.EscapeString(phase.Phase), phase.Confidence, phase.Gate, phase.Iteration)
		return err
	})
}

func summary(s protocol.Snapshot) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if s.Analysis == nil {
			_, err := io.WriteString(w, "<section class=\"panel\"><p>No analysis yet.</p></section>\n")
			return err
		}
		a := s.Analysis
		closed := "closed"
		if !a.IsClosed {
			closed = fmt.Sprintf("open (gap %.2f %s)", a.ClosureError, templ.EscapeString(a.Unit))
		}
		_, err := fmt.Fprintf(w,
			"<section class=\"panel\"><h2>Boundary</h2><p>perimeter %.1f %s · area %.1f sq %s · %s · %d flagged corners</p></section>\n",
			a.Perimeter, templ.EscapeString(a.Unit), a.Area, templ.EscapeString(a.Unit), closed, len(a.FlaggedAngles))
		return err
	})
}

func edgeTable(s protocol.Snapshot) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<section class=\"panel\"><h2>Edges</h2><table><tr><th>#</th><th>Name</th><th>Length</th><th>Direction</th><th>Kind</th></tr>\n"); err != nil {
			return err
		}
		for _, e := range s.Edges {
			if _, err := fmt.Fprintf(w, "<tr><td>%d</td><td>%s</td><td>%.1f</td><td>%s (%s)</td><td>%s</td></tr>\n",
				e.Index, templ.EscapeString(e.Name), e.Length, templ.EscapeString(e.Direction), templ.EscapeString(e.Compass), templ.EscapeString(e.Kind)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</table></section>\n")
		return err
	})
}

const pageStyle = `<style>
body { font-family: system-ui, sans-serif; margin: 0; background: #f4f6f7; color: #17202a; }
header { background: #1a5276; color: #fff; padding: 16px 24px; }
header h1 { margin: 0; font-size: 1.3em; }
.phase { margin: 4px 0 0; color: #aed6f1; font-size: 0.9em; }
.panel { background: #fff; margin: 16px 24px; padding: 16px; border-radius: 8px; box-shadow: 0 1px 3px rgba(0,0,0,0.1); }
table { border-collapse: collapse; }
td, th { padding: 4px 12px; border-bottom: 1px solid #eaecee; text-align: left; }
#patches li { font-family: monospace; font-size: 0.85em; }
</style>
`

const streamScript = `<script>
(function () {
  var snapshot = JSON.parse(document.getElementById("snapshot").textContent);
  var list = document.getElementById("patches");
  var proto = location.protocol === "https:" ? "wss://" : "ws://";
  var sock = new WebSocket(proto + location.host + "/stream");
  sock.onmessage = function (ev) {
    var patch = JSON.parse(ev.data);
    var li = document.createElement("li");
    li.textContent = patch.seq + " " + patch.type;
    list.prepend(li);
    if (patch.type === "BoundaryAnalyzed" || patch.type === "PhaseChanged") {
      location.reload();
    }
  };
  console.log("session", snapshot.traceId, "protocol", snapshot.protocolVersion);
})();
</script>
`
