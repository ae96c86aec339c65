package ports

import (
	"context"

	"github.com/elharo/eclipse/internal/core/domain"
)

//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry is the entry point for recording units of work.
type Telemetry interface {
	// Record starts a vertex for one unit of work.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Close flushes and shuts down the sink.
	Close() error
}

// Vertex represents one recorded unit of work.
type Vertex interface {
	// Log emits a log line attached to the vertex.
	Log(level domain.LogLevel, msg string)
	// Complete finishes the vertex, recording err when non-nil.
	Complete(err error)
}

type vertexContextKey struct{}

// ContextWithVertex returns a context carrying v.
func ContextWithVertex(ctx context.Context, v Vertex) context.Context {
	return context.WithValue(ctx, vertexContextKey{}, v)
}

// VertexFromContext returns the Vertex carried by ctx, or nil when none is set.
func VertexFromContext(ctx context.Context) Vertex {
	v, _ := ctx.Value(vertexContextKey{}).(Vertex)
	return v
}
