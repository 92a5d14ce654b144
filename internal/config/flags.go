package config

import (
	"flag"
	"os"
	"time"

	"github.com/aalmasoud/unilife/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags. The
// function filters os.Args to only include the flags it knows about, using
// flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-r", "-p", "-s", "-l", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseFile, "d", cfg.DatabaseFile, "path of the sqlite database file")
	fs.StringVar(&cfg.RecordingsDir, "r", cfg.RecordingsDir, "directory where recordings are written")
	fs.StringVar(&cfg.PickerDir, "p", cfg.PickerDir, "directory the file picker offers files from")
	fs.StringVar(&cfg.StudentID, "s", cfg.StudentID, "student document id")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	shutdownTimeout := fs.Int("t", int(cfg.ShutdownTimeout.Seconds()), "shutdown timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.ShutdownTimeout = time.Duration(*shutdownTimeout) * time.Second
}
