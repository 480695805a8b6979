// Package config carries the initialization configuration as an explicit
// value. Nothing reads settings from package state, so tests can run
// against alternate roots and times without interference.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/reflector-agent/reflector/pkg/application"
)

const configFile = "reflector.yaml"

// Built-in defaults.
const (
	DefaultDailyTime  = "03:30"
	DefaultWeeklyTime = "03:00"
)

// Config is the full configuration consumed by the initializer.
type Config struct {
	Root         string
	DryRun       bool
	SkipSchedule bool
	Timezone     string
	DailyTime    string
	WeeklyTime   string
}

// Defaults returns the configuration used when nothing overrides it.
// Timezone stays empty here; it is resolved at use time so the system
// default is detected per call.
func Defaults(root string) Config {
	return Config{
		Root:       root,
		DailyTime:  DefaultDailyTime,
		WeeklyTime: DefaultWeeklyTime,
	}
}

// fileConfig mirrors the optional reflector.yaml at the workspace root.
type fileConfig struct {
	Timezone   string `yaml:"timezone"`
	DailyTime  string `yaml:"daily_time"`
	WeeklyTime string `yaml:"weekly_time"`
}

// Load merges reflector.yaml, when present, into the defaults for root.
// Command-line flags are applied on top by the CLI layer.
func Load(root string) (Config, error) {
	cfg := Defaults(root)

	data, err := os.ReadFile(filepath.Join(root, configFile))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read %s: %w", configFile, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return cfg, fmt.Errorf("failed to unmarshal %s: %w", configFile, err)
	}

	if fc.Timezone != "" {
		cfg.Timezone = fc.Timezone
	}
	if fc.DailyTime != "" {
		cfg.DailyTime = fc.DailyTime
	}
	if fc.WeeklyTime != "" {
		cfg.WeeklyTime = fc.WeeklyTime
	}

	return cfg, nil
}

// InitConfig converts to the application-layer configuration.
func (c Config) InitConfig() application.InitConfig {
	return application.InitConfig{
		Root:         c.Root,
		DryRun:       c.DryRun,
		SkipSchedule: c.SkipSchedule,
		Timezone:     c.Timezone,
		DailyTime:    c.DailyTime,
		WeeklyTime:   c.WeeklyTime,
	}
}
