package progrock_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/elharo/eclipse/internal/adapters/telemetry/progrock"
	"github.com/elharo/eclipse/internal/core/domain"
	"github.com/elharo/eclipse/internal/core/ports"
)

func TestRecorder_Integration(t *testing.T) {
	var out strings.Builder
	recorder := progrock.NewRecorder(progrock.NewConsoleWriter(&out))

	ctx, vertex := recorder.Record(context.Background(), "load project view")

	if ports.VertexFromContext(ctx) != vertex {
		t.Error("expected the recorded vertex to be carried by the context")
	}

	vertex.Log(domain.LogLevelInfo, "parsed 3 directories")
	vertex.Complete(nil)

	if err := recorder.Close(); err != nil {
		t.Errorf("failed to close recorder: %v", err)
	}

	output := out.String()
	if !strings.Contains(output, "=> load project view") {
		t.Errorf("expected a start line, got: %q", output)
	}
	if !strings.Contains(output, "ok load project view") {
		t.Errorf("expected a completion line, got: %q", output)
	}
	if !strings.Contains(output, "[INFO] parsed 3 directories") {
		t.Errorf("expected the vertex log line, got: %q", output)
	}
}

func TestRecorder_FailedVertex(t *testing.T) {
	var out strings.Builder
	recorder := progrock.NewRecorder(progrock.NewConsoleWriter(&out))

	_, vertex := recorder.Record(context.Background(), "verify artifacts")
	vertex.Complete(errors.New("2 artifacts missing"))

	if err := recorder.Close(); err != nil {
		t.Errorf("failed to close recorder: %v", err)
	}

	output := out.String()
	if !strings.Contains(output, "!! verify artifacts: 2 artifacts missing") {
		t.Errorf("expected a failure line, got: %q", output)
	}
}
