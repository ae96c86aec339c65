package domain

// ArtifactReport summarizes a jar existence check against an artifact root.
type ArtifactReport struct {
	// Checked is the number of distinct jar paths that were checked.
	Checked int
	// Missing lists the jar paths that were not found, sorted.
	Missing []string
}

// Complete reports whether every checked artifact was found.
func (r ArtifactReport) Complete() bool {
	return len(r.Missing) == 0
}
