// Package config handles configuration defaults for the release workflow.
//
// An optional .npub.yml in the working directory provides defaults for the
// distribution tag, the commit message template, and color output; flags
// always win over file values. A .env file, when present, is loaded before
// any command runs so registry credentials (e.g. NPM_TOKEN) reach the child
// processes.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/ajxudir/npub/pkg/verbose"
)

// ConfigFileName is the optional per-project configuration file.
const ConfigFileName = ".npub.yml"

// DefaultDistTag is the registry distribution tag used when none is configured.
const DefaultDistTag = "latest"

// DefaultMessageTemplate renders the default commit message for a release.
const DefaultMessageTemplate = "release version {{ .Version }}"

// Config holds the resolved configuration for a release run.
//
// Fields:
//   - DistTag: Registry distribution tag for npm publish
//   - MessageTemplate: Commit message template rendered with the new version
//   - NoColor: Disables colored output
type Config struct {
	// DistTag is the registry distribution tag (npm publish --tag=<tag>).
	DistTag string `yaml:"tag"`

	// MessageTemplate is the commit message template. It is rendered with
	// {Version} and the sprig function map.
	MessageTemplate string `yaml:"message_template"`

	// NoColor disables colored output.
	NoColor bool `yaml:"no_color"`
}

// Load returns the configuration for the given working directory.
//
// It performs the following operations:
//   - Starts from built-in defaults
//   - Loads <dir>/.env into the process environment when present, so
//     registry auth tokens are available to child processes
//   - Overlays <dir>/.npub.yml when present
//
// Parameters:
//   - dir: The working directory of the release
//
// Returns:
//   - *Config: The resolved configuration
//   - error: When the config file exists but cannot be parsed
func Load(dir string) (*Config, error) {
	cfg := &Config{
		DistTag:         DefaultDistTag,
		MessageTemplate: DefaultMessageTemplate,
	}

	envPath := filepath.Join(dir, ".env")
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", envPath, err)
		}
		verbose.Debugf("loaded environment from %s", envPath)
	}

	cfgPath := filepath.Join(dir, ConfigFileName)
	raw, err := os.ReadFile(cfgPath)
	if err != nil {
		if os.IsNotExist(err) {
			verbose.Debugf("no %s, using built-in defaults", ConfigFileName)
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", cfgPath, err)
	}
	if strings.TrimSpace(cfg.DistTag) == "" {
		cfg.DistTag = DefaultDistTag
	}
	if strings.TrimSpace(cfg.MessageTemplate) == "" {
		cfg.MessageTemplate = DefaultMessageTemplate
	}

	verbose.Debugf("config loaded from %s (tag=%s)", cfgPath, cfg.DistTag)
	return cfg, nil
}

// RenderMessage renders the commit message template for a new version.
//
// The template is executed with {Version} as data and the sprig function
// map available, so templates like
// "chore: release {{ .Version | upper }}" work.
//
// Parameters:
//   - version: The new version being released
//
// Returns:
//   - string: The rendered commit message
//   - error: When the template cannot be parsed or executed
func (c *Config) RenderMessage(version string) (string, error) {
	tmpl, err := template.New("message").Funcs(sprig.FuncMap()).Parse(c.MessageTemplate)
	if err != nil {
		return "", fmt.Errorf("invalid commit message template: %w", err)
	}

	var sb strings.Builder
	data := struct{ Version string }{Version: version}
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to render commit message: %w", err)
	}

	return sb.String(), nil
}
