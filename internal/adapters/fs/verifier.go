// Package fs provides filesystem-backed checks for built artifacts.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"sync"

	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"

	"github.com/elharo/eclipse/internal/core/domain"
	"github.com/elharo/eclipse/internal/core/ports"
)

// Verifier checks that the jar artifacts referenced by build info records
// exist on disk.
type Verifier struct{}

var _ ports.ArtifactVerifier = (*Verifier)(nil)

// NewVerifier creates a new Verifier.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// VerifyJars stats every jar referenced by infos under root. Missing jars are
// collected into the report; any other stat failure aborts the check.
func (v *Verifier) VerifyJars(ctx context.Context, infos domain.BuildInfoMap, root string) (domain.ArtifactReport, error) {
	paths := collectJarPaths(infos)
	vertex := ports.VertexFromContext(ctx)

	var mu sync.Mutex
	var missing []string

	g, ctx := errgroup.WithContext(ctx)
	// Use number of CPUs as concurrency limit
	g.SetLimit(runtime.NumCPU())

	for _, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			full := filepath.Join(root, path)
			if _, err := os.Stat(full); err != nil {
				if os.IsNotExist(err) {
					mu.Lock()
					missing = append(missing, path)
					if vertex != nil {
						vertex.Log(domain.LogLevelWarn, "missing artifact: "+path)
					}
					mu.Unlock()
					return nil
				}
				return zerr.With(zerr.Wrap(err, "failed to stat artifact"), "path", full)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return domain.ArtifactReport{}, err
	}

	slices.Sort(missing)
	return domain.ArtifactReport{Checked: len(paths), Missing: missing}, nil
}

// collectJarPaths flattens infos into the distinct set of jar paths to check,
// in a deterministic order.
func collectJarPaths(infos domain.BuildInfoMap) []string {
	seen := make(map[string]bool)
	var paths []string

	add := func(path string) {
		if path == "" || seen[path] {
			return
		}
		seen[path] = true
		paths = append(paths, path)
	}
	addGroup := func(group domain.JarGroup) {
		add(group.Jar())
		if ijar, ok := group.InterfaceJar(); ok {
			add(ijar)
		}
		if src, ok := group.SourceJar(); ok {
			add(src)
		}
	}

	for _, label := range infos.Labels() {
		info := infos[label]
		for _, group := range info.OutputJars() {
			addGroup(group)
		}
		for _, group := range info.GeneratedJars() {
			addGroup(group)
		}
	}
	return paths
}
