package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	// Root is the documentation directory to scan.
	Root string `yaml:"root"`

	// MountPrefix is a repo-relative prefix that site-relative links may
	// carry in addition to the served root (e.g. "/docs"). It is stripped
	// before resolution.
	MountPrefix string `yaml:"mount_prefix"`

	// BasePath is the deployment base path prepended by the site build
	// (used by the rewrite command, never by validation).
	BasePath string `yaml:"base_path,omitempty"`

	// Exclude lists additional directory or file names to skip during
	// scanning, on top of the built-in exclusions.
	Exclude []string `yaml:"exclude,omitempty"`
}

// Load loads configuration from the specified file.
// A missing config file is not an error; defaults are returned so the tool
// works out of the box in a conventional docs layout.
func Load(configPath string) (*Config, error) {
	loadEnvFiles()

	config := defaultConfig()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in the YAML content
	expandedData := os.ExpandEnv(string(data))

	if err := yaml.Unmarshal([]byte(expandedData), config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(config)
	return config, nil
}

func defaultConfig() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Root == "" {
		cfg.Root = "./docs"
	}
	if cfg.MountPrefix == "" {
		cfg.MountPrefix = "/docs"
	}
}

// Init writes a default configuration file to configPath.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	cfg := defaultConfig()
	cfg.Exclude = []string{"drafts"}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	header := "# linkcheck configuration\n# root: documentation directory to scan\n# mount_prefix: repo-relative prefix stripped from site-relative links\n"
	if err := os.WriteFile(configPath, append([]byte(header), data...), 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
