// =============================================================================
// Agreement Payload Builder - Configuration Module
// =============================================================================
//
// Loads the main application configuration from a YAML file and applies
// defaults. Form submissions are self-describing, so a single configuration
// covers the whole tool: directories, the optional marketing price list,
// output naming, logging, and processing behavior.
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// MainConfig holds the global application configuration.
type MainConfig struct {
	// InputDir is scanned for form submission JSON files.
	// Default: "./input"
	InputDir string `yaml:"input_dir"`

	// OutputDir receives the generated payload JSON files.
	// Default: "./output"
	OutputDir string `yaml:"output_dir"`

	// InputArchiveDir receives processed form files.
	// Default: "./input_archive"
	InputArchiveDir string `yaml:"input_archive_dir"`

	// OutputArchiveDir receives copies of generated payload files.
	// Default: "./output_archive"
	OutputArchiveDir string `yaml:"output_archive_dir"`

	// CatalogFile is an optional XLSX marketing price list. When empty the
	// compiled-in catalog is used.
	CatalogFile string `yaml:"catalog_file"`

	// OutputNameFormat names generated payload files. Placeholders:
	// {uuid}, {timestamp}, {office}, {folder}.
	// Default: "{uuid}.json"
	OutputNameFormat string `yaml:"output_name_format"`

	// LogLevel controls verbosity: "debug", "info", "warn", "error".
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// MaxConcurrency caps how many form files are processed at once.
	// Default: 4
	MaxConcurrency int `yaml:"max_concurrency"`

	// ContinueOnError keeps a batch running when one file fails.
	// Default: true (set explicitly in the config to disable)
	ContinueOnError bool `yaml:"continue_on_error"`
}

// Load reads the main configuration file, applies defaults, and ensures
// the working directories exist. A missing file yields the defaults.
func Load(configPath string) (*MainConfig, error) {
	config := &MainConfig{ContinueOnError: true}

	data, err := os.ReadFile(configPath)
	switch {
	case os.IsNotExist(err):
		// Defaults only.
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	applyDefaults(config)

	if err := ensureDirectories(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}

func applyDefaults(config *MainConfig) {
	if config.InputDir == "" {
		config.InputDir = "./input"
	}
	if config.OutputDir == "" {
		config.OutputDir = "./output"
	}
	if config.InputArchiveDir == "" {
		config.InputArchiveDir = "./input_archive"
	}
	if config.OutputArchiveDir == "" {
		config.OutputArchiveDir = "./output_archive"
	}
	if config.OutputNameFormat == "" {
		config.OutputNameFormat = "{uuid}.json"
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
	if config.MaxConcurrency <= 0 {
		config.MaxConcurrency = 4
	}
}

func ensureDirectories(config *MainConfig) error {
	dirs := []string{
		config.InputDir,
		config.OutputDir,
		config.InputArchiveDir,
		config.OutputArchiveDir,
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}
