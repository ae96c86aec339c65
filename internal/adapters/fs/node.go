package fs

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/elharo/eclipse/internal/core/ports"
)

// VerifierNodeID is the unique identifier for the artifact verifier node.
const VerifierNodeID graft.ID = "adapter.fs.verifier"

func init() {
	graft.Register(graft.Node[ports.ArtifactVerifier]{
		ID:        VerifierNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ArtifactVerifier, error) {
			return NewVerifier(), nil
		},
	})
}
