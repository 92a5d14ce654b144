package config

import "time"

// Config holds the runtime settings of the UniLife CLI.
type Config struct {
	DatabaseFile    string
	RecordingsDir   string
	PickerDir       string
	StudentID       string
	LogLevel        string
	ShutdownTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseFile = "unilife.db"
	c.RecordingsDir = "recordings"
	c.PickerDir = "files"
	c.StudentID = "student_001"
	c.LogLevel = "info"
	c.ShutdownTimeout = 5 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
