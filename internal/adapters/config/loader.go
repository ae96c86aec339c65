// Package config provides the e4b.yaml settings loader.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/elharo/eclipse/internal/core/domain"
	"github.com/elharo/eclipse/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// SettingsFile is the settings file name looked up in the working directory.
const SettingsFile = "e4b.yaml"

var _ ports.SettingsLoader = (*FileSettingsLoader)(nil)

// FileSettingsLoader implements ports.SettingsLoader using a YAML file.
type FileSettingsLoader struct {
	Filename string
}

// Load reads the settings file from the given working directory.
func (l *FileSettingsLoader) Load(cwd string) (domain.Settings, error) {
	name := l.Filename
	if name == "" {
		name = SettingsFile
	}
	return Load(filepath.Join(cwd, name))
}

// settingsDTO mirrors the e4b.yaml file shape.
type settingsDTO struct {
	View         string `yaml:"view"`
	Manifest     string `yaml:"manifest"`
	ArtifactRoot string `yaml:"artifact_root"`
}

// Load reads a settings file from the given path. A missing file is not an
// error; the defaults apply.
func Load(path string) (domain.Settings, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Settings{}.WithDefaults(), nil
		}
		return domain.Settings{}, zerr.With(zerr.Wrap(err, "failed to read settings file"), "path", path)
	}

	var dto settingsDTO
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return domain.Settings{}, zerr.With(zerr.Wrap(err, "failed to parse settings file"), "path", path)
	}

	return domain.Settings{
		View:         dto.View,
		Manifest:     dto.Manifest,
		ArtifactRoot: dto.ArtifactRoot,
	}.WithDefaults(), nil
}
