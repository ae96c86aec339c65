package ports

import (
	"context"

	"github.com/elharo/eclipse/internal/core/domain"
)

// ArtifactVerifier defines the interface for checking built artifacts on disk.
//
//go:generate mockgen -destination=mocks/mock_artifact_verifier.go -package=mocks -source=artifact_verifier.go
type ArtifactVerifier interface {
	// VerifyJars checks that every jar referenced by the records exists
	// under root.
	VerifyJars(ctx context.Context, infos domain.BuildInfoMap, root string) (domain.ArtifactReport, error)
}
