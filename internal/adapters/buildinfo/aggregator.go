// Package buildinfo aggregates the per-target build info documents produced
// by the IDE aspect into a single label-keyed map.
package buildinfo

import (
	"encoding/json"
	"os"

	"github.com/elharo/eclipse/internal/core/domain"
	"github.com/elharo/eclipse/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.InfoAggregator = (*Aggregator)(nil)

// Aggregator implements ports.InfoAggregator over files on disk.
type Aggregator struct{}

// New creates a new Aggregator.
func New() *Aggregator {
	return &Aggregator{}
}

// Aggregate decodes every named document into one map. Empty path entries
// are skipped. Any read or decode failure aborts the whole aggregation; no
// partial map is ever returned. Files are processed strictly in input order,
// so a label captured twice resolves to the later document.
func (a *Aggregator) Aggregate(paths []string) (domain.BuildInfoMap, error) {
	infos := make(domain.BuildInfoMap)
	for _, path := range paths {
		if path == "" {
			continue
		}

		// Read failures propagate unchanged so callers can match fs errors
		data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
		if err != nil {
			return nil, err
		}

		var info domain.BuildInfo
		if err := json.Unmarshal(data, &info); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to decode build info file"), "path", path)
		}
		infos.Put(info)
	}
	return infos, nil
}

// AggregateManifest aggregates the paths listed in a manifest file.
func (a *Aggregator) AggregateManifest(path string) (domain.BuildInfoMap, error) {
	paths, err := ReadManifest(path)
	if err != nil {
		return nil, err
	}
	return a.Aggregate(paths)
}
