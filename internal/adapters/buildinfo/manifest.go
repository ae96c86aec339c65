package buildinfo

import (
	"bufio"
	"os"
	"strings"

	"go.trai.ch/zerr"
)

// ReadManifest reads a file listing build info JSON paths, one per line.
// Lines are trimmed; blank lines come back as empty entries, which
// Aggregate then skips, so the skip rule lives in exactly one place.
func ReadManifest(path string) ([]string, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	var paths []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		paths = append(paths, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read manifest"), "path", path)
	}
	return paths, nil
}
