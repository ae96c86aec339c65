// Package telemetry provides the default no-op implementation of the
// telemetry port.
package telemetry

import (
	"context"

	"github.com/elharo/eclipse/internal/core/domain"
	"github.com/elharo/eclipse/internal/core/ports"
)

// NoopTelemetry is a no-op implementation of ports.Telemetry.
type NoopTelemetry struct{}

// NewNoopTelemetry creates a new NoopTelemetry.
func NewNoopTelemetry() *NoopTelemetry {
	return &NoopTelemetry{}
}

// Record creates a new no-op vertex.
func (t *NoopTelemetry) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	return ctx, &NoopVertex{}
}

// Close does nothing.
func (t *NoopTelemetry) Close() error {
	return nil
}

// NoopVertex is a no-op implementation of ports.Vertex.
type NoopVertex struct{}

// Log does nothing.
func (v *NoopVertex) Log(_ domain.LogLevel, _ string) {}

// Complete does nothing.
func (v *NoopVertex) Complete(_ error) {}
