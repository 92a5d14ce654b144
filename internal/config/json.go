package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/aalmasoud/unilife/internal/flagx"
	"github.com/aalmasoud/unilife/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so durations can be strings like "5s" or integer
// nanoseconds. After parsing, values are copied into the runtime Config.
type JsonConfig struct {
	DatabaseFile    string         `json:"database_file"`
	RecordingsDir   string         `json:"recordings_dir"`
	PickerDir       string         `json:"picker_dir"`
	StudentID       string         `json:"student_id"`
	LogLevel        string         `json:"log_level"`
	ShutdownTimeout timex.Duration `json:"shutdown_timeout"`
}

// parseJson overlays cfg with values from the JSON file named by -c/-config.
// No flag means no JSON is loaded. Empty JSON fields leave the current value
// in place. Read or unmarshal errors panic; config loading happens before
// anything worth cleaning up exists.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JSONConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabaseFile != "" {
		cfg.DatabaseFile = jc.DatabaseFile
	}
	if jc.RecordingsDir != "" {
		cfg.RecordingsDir = jc.RecordingsDir
	}
	if jc.PickerDir != "" {
		cfg.PickerDir = jc.PickerDir
	}
	if jc.StudentID != "" {
		cfg.StudentID = jc.StudentID
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.ShutdownTimeout.Duration != 0 {
		cfg.ShutdownTimeout = time.Duration(jc.ShutdownTimeout.Duration)
	}
}
