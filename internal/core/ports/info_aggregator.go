package ports

import "github.com/elharo/eclipse/internal/core/domain"

// InfoAggregator defines the interface for aggregating build info documents.
//
//go:generate mockgen -source=info_aggregator.go -destination=mocks/mock_info_aggregator.go -package=mocks
type InfoAggregator interface {
	// Aggregate decodes the build info files at the given paths into a
	// label-keyed map. Empty path entries are skipped; any read or decode
	// failure aborts the whole aggregation.
	Aggregate(paths []string) (domain.BuildInfoMap, error)

	// AggregateManifest aggregates the paths listed in a manifest file,
	// one per line.
	AggregateManifest(path string) (domain.BuildInfoMap, error)
}
