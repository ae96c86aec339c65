// Package app implements the application layer for e4b.
package app

import (
	"context"
	"fmt"

	"go.trai.ch/zerr"

	"github.com/elharo/eclipse/internal/core/domain"
	"github.com/elharo/eclipse/internal/core/ports"
)

// App represents the main application logic. Every operation records a
// telemetry vertex around the port call and wraps failures with context.
type App struct {
	views     ports.ViewLoader
	infos     ports.InfoAggregator
	verifier  ports.ArtifactVerifier
	logger    ports.Logger
	telemetry ports.Telemetry
}

// New creates a new App instance.
func New(
	views ports.ViewLoader,
	infos ports.InfoAggregator,
	verifier ports.ArtifactVerifier,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *App {
	return &App{
		views:     views,
		infos:     infos,
		verifier:  verifier,
		logger:    logger,
		telemetry: telemetry,
	}
}

// SetTelemetry swaps the telemetry sink. The CLI calls this after flag
// parsing, before any operation runs.
func (a *App) SetTelemetry(t ports.Telemetry) {
	a.telemetry = t
}

// Close flushes the telemetry sink.
func (a *App) Close() error {
	return a.telemetry.Close()
}

// LoadView parses the project view file at path, following its imports.
func (a *App) LoadView(ctx context.Context, path string) (*domain.ProjectView, error) {
	_, vertex := a.telemetry.Record(ctx, "load project view")
	view, err := a.views.Load(path)
	vertex.Complete(err)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load project view")
	}
	return view, nil
}

// LoadViewURL parses the project view at an http(s) URL.
func (a *App) LoadViewURL(ctx context.Context, rawURL string) (*domain.ProjectView, error) {
	_, vertex := a.telemetry.Record(ctx, "fetch project view")
	view, err := a.views.LoadURL(rawURL)
	vertex.Complete(err)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to fetch project view")
	}
	return view, nil
}

// AggregateInfo reads the build info files at paths into a single map.
func (a *App) AggregateInfo(ctx context.Context, paths []string) (domain.BuildInfoMap, error) {
	_, vertex := a.telemetry.Record(ctx, "aggregate build info")
	infos, err := a.infos.Aggregate(paths)
	vertex.Complete(err)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to aggregate build info")
	}
	a.logger.Info(fmt.Sprintf("aggregated %d targets", len(infos)))
	return infos, nil
}

// AggregateManifest reads a manifest of build info file paths and aggregates
// the files it lists.
func (a *App) AggregateManifest(ctx context.Context, path string) (domain.BuildInfoMap, error) {
	_, vertex := a.telemetry.Record(ctx, "aggregate manifest")
	infos, err := a.infos.AggregateManifest(path)
	vertex.Complete(err)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to aggregate manifest")
	}
	a.logger.Info(fmt.Sprintf("aggregated %d targets", len(infos)))
	return infos, nil
}

// VerifyArtifacts checks that every jar referenced by infos exists under
// root. The recorded vertex travels down on the context so the verifier can
// attach per-artifact findings to it.
func (a *App) VerifyArtifacts(ctx context.Context, infos domain.BuildInfoMap, root string) (domain.ArtifactReport, error) {
	ctx, vertex := a.telemetry.Record(ctx, "verify artifacts")
	report, err := a.verifier.VerifyJars(ctx, infos, root)
	vertex.Complete(err)
	if err != nil {
		return domain.ArtifactReport{}, zerr.Wrap(err, "failed to verify artifacts")
	}
	if !report.Complete() {
		a.logger.Warn(fmt.Sprintf("%d of %d artifacts missing", len(report.Missing), report.Checked))
	}
	return report, nil
}
