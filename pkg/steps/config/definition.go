// Package config loads step sequence definitions from TOML or YAML files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/BrandonKowalski/steps/pkg/steps"
	"github.com/BrandonKowalski/steps/pkg/steps/constants"
)

// Format identifies a definition file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// Step describes one step of a sequence.
type Step struct {
	Name         string `toml:"name" yaml:"name"`
	Title        string `toml:"title" yaml:"title"`                 // message ID for the step title
	RequireValue bool   `toml:"require_value" yaml:"require_value"` // leaving the step needs a non-empty value
}

// Settings holds host settings that travel with a definition.
type Settings struct {
	LogLevel          string   `toml:"log_level" yaml:"log_level"`
	LogPath           string   `toml:"log_path" yaml:"log_path"`
	Locale            string   `toml:"locale" yaml:"locale"`
	Messages          []string `toml:"messages" yaml:"messages"`                       // message files, relative to the definition
	ValidationDelayMS int      `toml:"validation_delay_ms" yaml:"validation_delay_ms"` // simulated validation latency
}

// Definition is a complete step sequence.
type Definition struct {
	Initial  string   `toml:"initial" yaml:"initial"`
	Steps    []Step   `toml:"step" yaml:"steps"`
	Settings Settings `toml:"settings" yaml:"settings"`

	dir string
}

const defaultDefinitionTOML = `# Step sequence definition.
# Steps are shown in the order they appear here.

initial = "welcome"

[[step]]
name = "welcome"
title = "step.welcome"

[[step]]
name = "account"
title = "step.account"
require_value = true

[[step]]
name = "confirm"
title = "step.confirm"

[settings]
log_level = "warn"
locale = "en"
validation_delay_ms = 0
`

// DefaultTOML returns the built-in example definition.
func DefaultTOML() []byte {
	return []byte(defaultDefinitionTOML)
}

// Default returns the built-in example definition, parsed.
func Default() *Definition {
	def, err := Parse(DefaultTOML(), FormatTOML)
	if err != nil {
		panic(fmt.Sprintf("default definition is invalid: %v", err))
	}
	return def
}

// FormatFor returns the format implied by a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported definition format %q", filepath.Ext(path))
	}
}

// Load reads and validates a definition file.
func Load(path string) (*Definition, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read definition: %w", err)
	}
	def, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	def.dir = filepath.Dir(path)
	return def, nil
}

// Parse decodes and validates a definition. Unnamed steps are named by
// their zero-based position.
func Parse(data []byte, format Format) (*Definition, error) {
	var def Definition
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &def); err != nil {
			return nil, fmt.Errorf("parse definition: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &def); err != nil {
			return nil, fmt.Errorf("parse definition: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported definition format %q", format)
	}

	for i := range def.Steps {
		if def.Steps[i].Name == "" {
			def.Steps[i].Name = strconv.Itoa(i)
		}
	}

	if err := def.Validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

// Validate checks the definition for structural errors.
func (d *Definition) Validate() error {
	if len(d.Steps) == 0 {
		return fmt.Errorf("no steps defined")
	}
	seen := make(map[string]int, len(d.Steps))
	for i, s := range d.Steps {
		if prev, ok := seen[s.Name]; ok {
			return fmt.Errorf("step[%d]: name %q already used by step[%d]", i, s.Name, prev)
		}
		seen[s.Name] = i
	}
	if d.Initial != "" {
		if _, ok := seen[d.Initial]; !ok {
			return fmt.Errorf("initial: %w", &steps.InvalidStepError{Name: d.Initial})
		}
	}
	if d.Settings.ValidationDelayMS < 0 {
		return fmt.Errorf("settings.validation_delay_ms: must not be negative")
	}
	return nil
}

// StepNames returns the step names in order.
func (d *Definition) StepNames() []string {
	names := make([]string, len(d.Steps))
	for i, s := range d.Steps {
		names[i] = s.Name
	}
	return names
}

// Step returns the step with the given name.
func (d *Definition) Step(name string) (Step, bool) {
	for _, s := range d.Steps {
		if s.Name == name {
			return s, true
		}
	}
	return Step{}, false
}

// MessagePaths returns the message files resolved against the directory
// the definition was loaded from.
func (d *Definition) MessagePaths() []string {
	paths := make([]string, len(d.Settings.Messages))
	for i, p := range d.Settings.Messages {
		if d.dir != "" && !filepath.IsAbs(p) {
			p = filepath.Join(d.dir, p)
		}
		paths[i] = p
	}
	return paths
}

// ApplyEnv overrides settings from environment variables.
func (d *Definition) ApplyEnv() {
	d.Settings.LogLevel = constants.EnvOr(constants.LogLevelEnvVar, d.Settings.LogLevel)
	d.Settings.Locale = constants.EnvOr(constants.LocaleEnvVar, d.Settings.Locale)
	d.Settings.LogPath = constants.EnvOr(constants.LogPathEnvVar, d.Settings.LogPath)
}

// Options returns manager options for the definition. Hooks are left for
// the caller to fill in.
func (d *Definition) Options() steps.Options {
	return steps.Options{
		InitialStep: d.Initial,
		Steps:       d.StepNames(),
	}
}
