/*
File    : lux/config/config.go

Package config loads REPL/CLI defaults (prompt, banner, history file,
color on/off) from an optional YAML file, using gopkg.in/yaml.v3 —
already a teacher indirect dependency, promoted here to a direct,
exercised one (SPEC_FULL.md §2). Defaults match the teacher's
hardcoded BANNER/PROMPT/VERSION/AUTHOR/LICENSE constants
(github.com/akashmaji946/go-mix/main/main.go) when no config file is
present.
*/
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const banner = `
    __
   / /   __  ___  __
  / /   / / / / |/_/
 / /___/ /_/ />  <
/_____/\__,_/_/|_|
`

// Config holds the small set of knobs the CLI/REPL shell reads at
// startup. It never configures language semantics (spec.md's
// Non-goals restate this: "no CLI environment-variable configuration
// of the core").
type Config struct {
	Prompt      string `yaml:"prompt"`
	Banner      string `yaml:"banner"`
	HistoryFile string `yaml:"history_file"`
	Color       bool   `yaml:"color"`
	Version     string `yaml:"-"`
	Author      string `yaml:"-"`
	License     string `yaml:"-"`
}

// Default returns the teacher-equivalent hardcoded defaults.
func Default() *Config {
	return &Config{
		Prompt:      "lux >>> ",
		Banner:      banner,
		HistoryFile: "",
		Color:       true,
		Version:     "v0.1.0",
		Author:      "luxlang",
		License:     "MIT",
	}
}

// Load reads path as YAML and overlays it onto Default(). A missing
// file is not an error: Load simply returns the defaults, since the
// CLI must run with zero configuration present.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
