// internal/config/config.go
//
// This package handles configuration and the .boxboard directory structure.
// Every directory the app runs in gets a .boxboard/ folder created in its
// root: logs/, presets/, and config.yaml.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// BoxboardDir is the name of the directory we create in each project
	BoxboardDir = ".boxboard"

	defaultPresetID = "countries"
)

const defaultProjectConfigYAML = `# boxboard configuration
version: 1

# Board preset driving the picker catalog and the box layout.
# Drop additional presets into .boxboard/presets/*.yaml and list them here.
board:
  preset: countries

# UI options.
ui:
  log_panel: true
`

// BoardConfig captures board preferences.
type BoardConfig struct {
	Preset    string   `yaml:"preset"`
	Available []string `yaml:"available,omitempty"`
}

// UIConfig captures display preferences for the hosting TUI.
type UIConfig struct {
	// LogPanel controls whether the log tail panel starts visible.
	// A missing key defaults to true.
	LogPanel *bool `yaml:"log_panel,omitempty"`
}

// ProjectConfig models .boxboard/config.yaml.
type ProjectConfig struct {
	Version int         `yaml:"version"`
	Board   BoardConfig `yaml:"board"`
	UI      UIConfig    `yaml:"ui,omitempty"`
}

// Config holds the runtime configuration for boxboard.
type Config struct {
	// ProjectDir is the directory where the user ran `boxboard` from
	ProjectDir string

	// BoxboardProjectDir is ProjectDir/.boxboard
	BoxboardProjectDir string

	Project ProjectConfig
}

// InitBoxboardDir creates the .boxboard directory structure in the given
// project directory. This is called when the TUI starts up.
//
// Structure created:
// .boxboard/
// ├── logs/     <- Session log written by the logbook
// ├── presets/  <- User-supplied board presets (*.yaml)
// └── config.yaml
func InitBoxboardDir(projectDir string) error {
	boxboardDir := filepath.Join(projectDir, BoxboardDir)

	dirs := []string{
		filepath.Join(boxboardDir, "logs"),
		filepath.Join(boxboardDir, "presets"),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	return ensureProjectConfig(filepath.Join(boxboardDir, "config.yaml"))
}

// NewConfig creates a new Config instance populated with project settings.
func NewConfig(projectDir string) (*Config, error) {
	cfg := &Config{
		ProjectDir:         projectDir,
		BoxboardProjectDir: filepath.Join(projectDir, BoxboardDir),
		Project:            defaultProjectConfig(),
	}
	if err := cfg.loadProjectConfig(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LogsDir returns the path to the logs directory
func (c *Config) LogsDir() string {
	return filepath.Join(c.BoxboardProjectDir, "logs")
}

// PresetsDir returns the directory scanned for board presets
func (c *Config) PresetsDir() string {
	return filepath.Join(c.BoxboardProjectDir, "presets")
}

// ProjectConfigPath returns the on-disk location for the project config file.
func (c *Config) ProjectConfigPath() string {
	return filepath.Join(c.BoxboardProjectDir, "config.yaml")
}

// Preset returns the configured board preset identifier.
func (c *Config) Preset() string {
	return c.Project.Board.Preset
}

// AvailablePresets returns the preset ids the selector should offer.
func (c *Config) AvailablePresets() []string {
	return c.Project.Board.Available
}

// LogPanelEnabled reports whether the log tail panel starts visible.
func (c *Config) LogPanelEnabled() bool {
	if c == nil || c.Project.UI.LogPanel == nil {
		return true
	}
	return *c.Project.UI.LogPanel
}

// SetPreset updates the board preset identifier and persists the value
// back to .boxboard/config.yaml. The preset ID is also appended to the
// available list so the selector can display it on future launches.
func (c *Config) SetPreset(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("config: preset id is required")
	}
	c.Project.Board.Preset = id
	if !contains(c.Project.Board.Available, id) {
		c.Project.Board.Available = append(c.Project.Board.Available, id)
	}
	return c.saveProjectConfig()
}

func (c *Config) loadProjectConfig() error {
	path := c.ProjectConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	var parsed ProjectConfig
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	parsed.applyDefaults()
	parsed.normalize()
	if err := parsed.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	c.Project = parsed
	return nil
}

func defaultProjectConfig() ProjectConfig {
	return ProjectConfig{
		Version: 1,
		Board: BoardConfig{
			Preset: defaultPresetID,
		},
	}
}

func (pc *ProjectConfig) applyDefaults() {
	if pc.Version == 0 {
		pc.Version = 1
	}
}

func (pc *ProjectConfig) normalize() {
	pc.Board.Preset = strings.TrimSpace(pc.Board.Preset)
	if pc.Board.Preset == "" {
		pc.Board.Preset = defaultPresetID
	}
	cleaned := pc.Board.Available[:0]
	for _, id := range pc.Board.Available {
		if trimmed := strings.TrimSpace(id); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	pc.Board.Available = cleaned
	if len(pc.Board.Available) > 0 && !contains(pc.Board.Available, pc.Board.Preset) {
		pc.Board.Available = append(pc.Board.Available, pc.Board.Preset)
	}
}

func (pc *ProjectConfig) validate() error {
	if pc.Version < 1 {
		return fmt.Errorf("config version must be >= 1")
	}
	if strings.TrimSpace(pc.Board.Preset) == "" {
		return fmt.Errorf("board.preset is required")
	}
	return nil
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if strings.EqualFold(strings.TrimSpace(v), target) {
			return true
		}
	}
	return false
}

func ensureProjectConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return os.WriteFile(path, []byte(defaultProjectConfigYAML), 0644)
}

func (c *Config) saveProjectConfig() error {
	if c == nil {
		return fmt.Errorf("config: nil receiver")
	}
	c.Project.applyDefaults()
	c.Project.normalize()
	if err := c.Project.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := os.MkdirAll(c.BoxboardProjectDir, 0o755); err != nil {
		return fmt.Errorf("config: ensure boxboard dir: %w", err)
	}
	data, err := yaml.Marshal(c.Project)
	if err != nil {
		return fmt.Errorf("config: encode config: %w", err)
	}
	if err := os.WriteFile(c.ProjectConfigPath(), data, 0644); err != nil {
		return fmt.Errorf("config: write project config: %w", err)
	}
	return nil
}
