package app

import (
	"context"
	"fmt"
)

// SignIn runs the simulated sign-in: any non-empty email and password pass.
func (a *App) SignIn(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.login.SignIn(ctx, email, password); err != nil {
		fmt.Fprintln(a.out, "Sign-in failed:", err)
		return err
	}
	fmt.Fprintln(a.out, "Welcome,", a.login.Email())
	return nil
}

// Logout drops the signed-in state and returns to the login screen, so the
// REPL's sign-in gate re-engages.
func (a *App) Logout(ctx context.Context) error {
	a.login.SignOut()
	a.profile.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
