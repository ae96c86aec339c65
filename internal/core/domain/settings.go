package domain

// Default values for unset Settings fields.
const (
	DefaultViewFile     = ".bazelproject"
	DefaultArtifactRoot = "."
)

// Settings are the tool-level preferences read from e4b.yaml. Every field is
// optional; zero values fall back to the defaults above.
type Settings struct {
	// View is the project view file the CLI loads when no path is given.
	View string
	// Manifest is the default path of a file listing build info JSON
	// outputs, one per line.
	Manifest string
	// ArtifactRoot is the directory jar paths are resolved against when
	// verifying artifacts.
	ArtifactRoot string
}

// WithDefaults returns a copy of s with unset fields replaced by defaults.
func (s Settings) WithDefaults() Settings {
	if s.View == "" {
		s.View = DefaultViewFile
	}
	if s.ArtifactRoot == "" {
		s.ArtifactRoot = DefaultArtifactRoot
	}
	return s
}
