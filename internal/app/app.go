// Package app wires the screens together behind a terminal REPL.
package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aalmasoud/unilife/internal/audio"
	"github.com/aalmasoud/unilife/internal/config"
	"github.com/aalmasoud/unilife/internal/docstore"
	"github.com/aalmasoud/unilife/internal/haptics"
	"github.com/aalmasoud/unilife/internal/logging"
	"github.com/aalmasoud/unilife/internal/navigation"
	"github.com/aalmasoud/unilife/internal/picker"
	"github.com/aalmasoud/unilife/internal/profile"
	"github.com/aalmasoud/unilife/internal/recording"
	"github.com/aalmasoud/unilife/internal/screens"
)

// App owns the wired screen controllers and the resources behind them.
type App struct {
	config *config.Config
	log    logging.Logger
	docs   *docstore.SQLiteStore
	nav    *navigation.Stack

	login    *screens.Login
	home     *screens.Home
	schedule *screens.Schedule
	notes    *screens.Notes
	files    *screens.Files
	delivery *screens.Delivery
	profile  *screens.ProfileScreen
	premium  *screens.Premium

	reader *bufio.Reader
	out    io.Writer
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logging.NewTextLogger(os.Stderr, cfg.LogLevel)

	docs, err := docstore.Open(ctx, cfg.DatabaseFile)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := os.MkdirAll(cfg.RecordingsDir, 0o755); err != nil {
		_ = docs.Close()
		return nil, fmt.Errorf("creating recordings dir: %w", err)
	}

	a := &App{
		config: cfg,
		log:    log,
		docs:   docs,
		nav:    navigation.NewStack(screens.ScreenLogin),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}

	sink := haptics.NewLogSink(log)
	recorder := audio.NewMalgoRecorder(cfg.RecordingsDir, log)
	player := audio.NewMalgoPlayer(log)
	ctl := recording.NewController(recorder, player, sink, log)

	pk := &picker.FSPicker{Dir: cfg.PickerDir, Choose: a.chooseFile}
	profiles := profile.NewStore(docs, cfg.StudentID, log)

	a.login = screens.NewLogin(a.nav, sink, log)
	a.schedule = screens.NewSchedule(sink)
	a.notes = screens.NewNotes(ctl, sink, log)
	a.files = screens.NewFiles(pk, sink, log)
	a.delivery = screens.NewDelivery(sink, log)
	a.profile = screens.NewProfileScreen(profiles, a.nav, sink, log)
	a.premium = screens.NewPremium(profiles, sink, log)
	a.home = screens.NewHome(a.schedule, a.notes, a.files, a.delivery, a.nav)

	return a, nil
}

// Run drives the REPL until EOF or exit, then tears the app down.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "UniLife CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.config.ShutdownTimeout)
	defer cancel()
	if err := a.Close(shutdownCtx); err != nil {
		a.log.Warn(shutdownCtx, "shutdown incomplete", "error", err)
	}
}

// Close releases the recorder, playback and database resources. Safe to
// call more than once.
func (a *App) Close(ctx context.Context) error {
	a.notes.CloseComposer(ctx)
	return a.docs.Close()
}

func (a *App) status() string {
	if !a.isSignedIn() {
		return "signed out"
	}
	return a.nav.Current().Screen
}

func (a *App) isSignedIn() bool {
	return a.login.Email() != ""
}

// chooseFile is the picker's selection seam: it lists the candidates and
// asks for a number. Empty input cancels.
func (a *App) chooseFile(candidates []string) (string, error) {
	for i, c := range candidates {
		fmt.Fprintf(a.out, "  %d. %s\n", i+1, c)
	}
	answer, err := GetSimpleText(a.reader, "Pick a file number (empty to cancel)", a.out)
	if err != nil || answer == "" {
		return "", err
	}
	var n int
	if _, err := fmt.Sscanf(answer, "%d", &n); err != nil || n < 1 || n > len(candidates) {
		return "", nil
	}
	return candidates[n-1], nil
}
