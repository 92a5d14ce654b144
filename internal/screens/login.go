package screens

import (
	"context"
	"fmt"
	"strings"

	"github.com/aalmasoud/unilife/internal/common"
	"github.com/aalmasoud/unilife/internal/haptics"
	"github.com/aalmasoud/unilife/internal/logging"
	"github.com/aalmasoud/unilife/internal/navigation"
)

// Login is the simulated sign-in screen: any non-empty email and password
// pass. There is no account system behind it.
type Login struct {
	nav     navigation.Navigator
	haptics haptics.Sink
	log     logging.Logger

	email string
}

func NewLogin(nav navigation.Navigator, sink haptics.Sink, log logging.Logger) *Login {
	return &Login{nav: nav, haptics: sink, log: log}
}

// SignIn validates the form and moves to the home screen.
func (l *Login) SignIn(ctx context.Context, email string, password []byte) error {
	email = strings.TrimSpace(email)
	if email == "" || len(password) == 0 {
		l.haptics.Pulse(haptics.Error)
		return fmt.Errorf("%w: email and password are required", common.ErrValidation)
	}

	l.email = email
	l.haptics.Pulse(haptics.Success)
	l.log.Info(ctx, "signed in", "email", email)
	l.nav.Navigate(ScreenHome, nil)
	return nil
}

// SignOut clears the signed-in state. The sign-in gate relies on Email
// going empty again.
func (l *Login) SignOut() {
	l.email = ""
	l.haptics.Pulse(haptics.Light)
}

// Email returns the signed-in address, empty before sign-in and after
// sign-out.
func (l *Login) Email() string { return l.email }
