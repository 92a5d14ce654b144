package screens

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/aalmasoud/unilife/internal/common"
	"github.com/aalmasoud/unilife/internal/haptics"
	"github.com/aalmasoud/unilife/internal/logging"
	"github.com/aalmasoud/unilife/internal/models"
	"github.com/aalmasoud/unilife/internal/navigation"
	"github.com/aalmasoud/unilife/internal/profile"
)

// ProfileEdits is the edit form. Empty fields keep their stored values.
type ProfileEdits struct {
	Name       string
	Email      string
	University string
	Major      string
	Year       string
}

// ProfileScreen wraps the profile store for the profile tab: the edit form,
// the notification toggles and the menu actions.
type ProfileScreen struct {
	store   *profile.Store
	nav     navigation.Navigator
	haptics haptics.Sink
	log     logging.Logger
}

func NewProfileScreen(store *profile.Store, nav navigation.Navigator, sink haptics.Sink, log logging.Logger) *ProfileScreen {
	return &ProfileScreen{store: store, nav: nav, haptics: sink, log: log}
}

// Load fetches the profile, initializing it on first use.
func (p *ProfileScreen) Load(ctx context.Context) (models.Profile, error) {
	prof, err := p.store.Load(ctx)
	if err != nil {
		p.haptics.Pulse(haptics.Error)
		return models.Profile{}, err
	}
	return prof, nil
}

// Current returns the cached profile without touching storage.
func (p *ProfileScreen) Current() (models.Profile, bool) { return p.store.Cached() }

// SaveEdits merge-writes the form's filled-in fields. Values are trimmed;
// empty fields are left out of the write entirely.
func (p *ProfileScreen) SaveEdits(ctx context.Context, edits ProfileEdits) error {
	fields := map[string]any{}
	put := func(key, value string) {
		if v := strings.TrimSpace(value); v != "" {
			fields[key] = v
		}
	}
	put("name", edits.Name)
	put("email", edits.Email)
	put("university", edits.University)
	put("major", edits.Major)
	if y := strings.TrimSpace(edits.Year); y != "" {
		if year, err := strconv.Atoi(y); err == nil && year > 0 {
			fields["year"] = year
		}
	}
	if len(fields) == 0 {
		return nil
	}

	if err := p.store.Save(ctx, fields); err != nil {
		p.haptics.Pulse(haptics.Error)
		return err
	}
	p.haptics.Pulse(haptics.Success)
	return nil
}

// notificationFields are the only document keys the toggle switches may
// write. Anything else in the profile stays out of reach of this path.
var notificationFields = map[string]bool{
	"notificationsEnabled": true,
	"lectureReminders":     true,
	"taskReminders":        true,
	"deliveryUpdates":      true,
}

// SetToggle flips one notification switch; every flip is saved immediately
// as its own single-field write. Field names outside the notification
// switches are rejected.
func (p *ProfileScreen) SetToggle(ctx context.Context, field string, value bool) error {
	if !notificationFields[field] {
		p.haptics.Pulse(haptics.Error)
		return fmt.Errorf("%w: unknown notification switch %q", common.ErrValidation, field)
	}
	if err := p.store.SetToggle(ctx, field, value); err != nil {
		p.haptics.Pulse(haptics.Error)
		return err
	}
	p.haptics.Pulse(haptics.Light)
	return nil
}

// OpenPremium jumps to the subscription screen.
func (p *ProfileScreen) OpenPremium() {
	p.nav.Navigate(ScreenPremium, nil)
}

// Logout drops back to the login screen. Nothing server-side happens.
func (p *ProfileScreen) Logout(ctx context.Context) {
	p.log.Info(ctx, "user logged out")
	p.nav.Navigate(ScreenLogin, nil)
}
