package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/govalet/internal/domain"
	"github.com/doeshing/govalet/internal/pkg/filesystem"
	"github.com/doeshing/govalet/internal/ports"
)

// FileSource reads YAML configuration from ~/.config/govalet/config.yaml
// (overridable via GOVALET_HOME).
type FileSource struct {
	overrideHome string
}

// NewFileSource builds a new source; home overrides the install home when
// non-empty.
func NewFileSource(home string) *FileSource {
	return &FileSource{overrideHome: home}
}

// HomePath resolves the install home directory.
func (s *FileSource) HomePath() string {
	if s.overrideHome != "" {
		return s.overrideHome
	}
	if custom := os.Getenv("GOVALET_HOME"); custom != "" {
		return custom
	}
	return filepath.Join(filesystem.UserHomeDir(), ".config", "govalet")
}

// Path returns the configuration file path inside the install home.
func (s *FileSource) Path() string {
	return filepath.Join(s.HomePath(), domain.ConfigFileName)
}

// Read implements ports.ConfigSource. A missing or malformed file is an
// ordinary error value; callers decide whether that is fatal.
func (s *FileSource) Read() (domain.Config, error) {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		return domain.Config{}, err
	}
	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parse %s: %w", s.Path(), err)
	}
	return cfg, nil
}

// Ensure scaffolds the install home (Drivers, Sites, Log, Certificates) and
// writes the default configuration unless one already exists. Used by the
// install workflow only; Read never creates anything.
func (s *FileSource) Ensure() error {
	home := s.HomePath()
	for _, dir := range domain.InstallDirectories {
		if err := os.MkdirAll(filepath.Join(home, dir), domain.DirectoryPermissions); err != nil {
			return err
		}
	}

	if _, err := os.Stat(s.Path()); err == nil {
		return nil
	}
	raw, err := yaml.Marshal(defaultConfig(home))
	if err != nil {
		return err
	}
	return os.WriteFile(s.Path(), raw, domain.ConfigFilePermissions)
}

// DefaultConfig returns the configuration written on first install.
func (s *FileSource) DefaultConfig() domain.Config {
	return defaultConfig(s.HomePath())
}

func defaultConfig(home string) domain.Config {
	return domain.Config{
		TLD:      "test",
		Loopback: "127.0.0.1",
		Paths:    []string{filepath.Join(home, "Sites")},
	}
}

var _ ports.ConfigSource = (*FileSource)(nil)
