package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
)

// Settings are the tool-level runtime settings, distinct from scenario
// configuration: they control how the CLI behaves, not what the scenario
// describes.
type Settings struct {
	// Platform selects the platform used for hostname formatting when a
	// command does not receive one explicitly.
	Platform string `env:"ROLESPEC_PLATFORM"`
	// Output selects the rendering of effective configurations: yaml or
	// json.
	Output string `env:"ROLESPEC_OUTPUT"`
	// Strict makes layer folding fail on conflicting values instead of
	// letting later layers win.
	Strict bool `env:"ROLESPEC_STRICT"`
	// NoColor disables colored console output.
	NoColor bool `env:"ROLESPEC_NO_COLOR"`
	// Quiet suppresses informational chatter, leaving results only.
	Quiet bool `env:"ROLESPEC_QUIET"`
}

func defaultSettings() *Settings {
	return &Settings{
		Output: "yaml",
	}
}

func (s *Settings) validate() error {
	switch s.Output {
	case "yaml", "json":
		return nil
	default:
		return fmt.Errorf("unknown output format %q (expected yaml or json)", s.Output)
	}
}

type settingsBuilder struct {
	sources []*Settings
	err     error
}

func newSettingsBuilder() *settingsBuilder {
	return &settingsBuilder{
		sources: make([]*Settings, 0, 3),
	}
}

// build folds the accumulated sources in order: a field set by an earlier
// source is kept, zero fields fill from later sources.
func (b *settingsBuilder) build() (*Settings, error) {
	if b.err != nil {
		return nil, fmt.Errorf("building settings: %w", b.err)
	}

	settings := new(Settings)
	for _, source := range b.sources {
		if err := mergo.Merge(settings, source); err != nil {
			return nil, fmt.Errorf("merging settings: %w", err)
		}
	}
	return settings, settings.validate()
}

func (b *settingsBuilder) withFlags(flags *Settings) *settingsBuilder {
	if flags != nil {
		b.sources = append(b.sources, flags)
	}
	return b
}

func (b *settingsBuilder) withEnv() *settingsBuilder {
	envSettings := &Settings{}
	if err := env.Parse(envSettings); err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("reading settings from environment: %w", err))
		return b
	}

	b.sources = append(b.sources, envSettings)
	return b
}

func (b *settingsBuilder) withDefaults() *settingsBuilder {
	b.sources = append(b.sources, defaultSettings())
	return b
}

// LoadSettings resolves the runtime settings: command-line flags win over
// ROLESPEC_* environment variables, which win over built-in defaults. A
// false or empty flag value does not mask an environment value; only set
// fields take precedence.
func LoadSettings(flags *Settings) (*Settings, error) {
	return newSettingsBuilder().
		withFlags(flags).
		withEnv().
		withDefaults().
		build()
}
