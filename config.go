package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the runtime configuration. Values are fixed once the process is
// up; there is no runtime reconfiguration.
type Config struct {
	Channel      uint8    // MIDI channel the controller sends on
	PortPatterns []string // every pattern must appear in the port name
	WindowTitle  string   // substring matched against window titles
	TouchpadCC   uint8    // CC number carrying vertical touchpad motion

	XSensitivity float64 // pixels per pitch-bend delta unit
	YSensitivity float64 // pixels per CC delta unit

	RepeatDelay    time.Duration // pause before the first hold repeat
	RepeatInterval time.Duration // pause between hold repeats

	Debug bool
}

// DefaultConfig returns the built-in padKONTROL/Ardour setup.
func DefaultConfig() Config {
	return Config{
		Channel:        9,
		PortPatterns:   []string{"padKONTROL", "CTRL"},
		WindowTitle:    "Ardour",
		TouchpadCC:     1,
		XSensitivity:   0.05,
		YSensitivity:   4,
		RepeatDelay:    300 * time.Millisecond,
		RepeatInterval: 10 * time.Millisecond,
	}
}

// fileConfig is the YAML shape of the optional config file. Pointer fields
// distinguish absent from zero, so the file only overrides what it names.
type fileConfig struct {
	Channel          *uint8   `yaml:"channel"`
	PortPatterns     []string `yaml:"portPatterns"`
	WindowTitle      *string  `yaml:"windowTitle"`
	TouchpadCC       *uint8   `yaml:"touchpadCC"`
	XSensitivity     *float64 `yaml:"xSensitivity"`
	YSensitivity     *float64 `yaml:"ySensitivity"`
	RepeatDelayMs    *int     `yaml:"repeatDelayMs"`
	RepeatIntervalMs *int     `yaml:"repeatIntervalMs"`
	Debug            *bool    `yaml:"debug"`
}

// LoadConfig returns the defaults overridden by the YAML file at path, or
// the plain defaults when path is empty.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	if fc.Channel != nil {
		cfg.Channel = *fc.Channel
	}
	if len(fc.PortPatterns) > 0 {
		cfg.PortPatterns = fc.PortPatterns
	}
	if fc.WindowTitle != nil {
		cfg.WindowTitle = *fc.WindowTitle
	}
	if fc.TouchpadCC != nil {
		cfg.TouchpadCC = *fc.TouchpadCC
	}
	if fc.XSensitivity != nil {
		cfg.XSensitivity = *fc.XSensitivity
	}
	if fc.YSensitivity != nil {
		cfg.YSensitivity = *fc.YSensitivity
	}
	if fc.RepeatDelayMs != nil {
		cfg.RepeatDelay = ms(*fc.RepeatDelayMs)
	}
	if fc.RepeatIntervalMs != nil {
		cfg.RepeatInterval = ms(*fc.RepeatIntervalMs)
	}
	if fc.Debug != nil {
		cfg.Debug = *fc.Debug
	}
	return cfg, nil
}

// Validate rejects configurations that cannot work.
func (c Config) Validate() error {
	if c.Channel > 15 {
		return fmt.Errorf("channel %d out of range 0-15", c.Channel)
	}
	if c.TouchpadCC > 127 {
		return fmt.Errorf("touchpad controller %d out of range 0-127", c.TouchpadCC)
	}
	if len(c.PortPatterns) == 0 {
		return fmt.Errorf("no port name patterns configured")
	}
	if c.WindowTitle == "" {
		return fmt.Errorf("window title is empty")
	}
	if c.RepeatDelay <= 0 || c.RepeatInterval <= 0 {
		return fmt.Errorf("repeat delay and interval must be positive")
	}
	if c.XSensitivity <= 0 || c.YSensitivity <= 0 {
		return fmt.Errorf("touchpad sensitivities must be positive")
	}
	return nil
}
