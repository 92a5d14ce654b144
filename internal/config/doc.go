// Package config loads runtime configuration for the UniLife CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via flags: -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-d string   path of the sqlite database file
//	-r string   directory where recordings are written
//	-p string   directory the file picker offers files from
//	-s string   student document id
//	-l string   log level (debug, info, warn, error)
//	-t int      shutdown timeout (seconds)
//
// # JSON schema
//
// Durations use timex.Duration, so values can be either strings like "5s"
// or integer nanoseconds:
//
//	{
//	  "database_file": "unilife.db",
//	  "recordings_dir": "recordings",
//	  "picker_dir": "files",
//	  "student_id": "student_001",
//	  "log_level": "info",
//	  "shutdown_timeout": "5s"
//	}
package config
