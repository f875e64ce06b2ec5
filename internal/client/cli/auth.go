package cli

import (
	"context"
	"fmt"
	"os"
)

// Login prompts for a username and password and attempts to establish a
// session. On success the prompt status changes and protected commands
// become available; on failure the session is exactly what it was before.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	if userName == "" {
		printlnFn("Username is required.")
		return nil
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	if password == "" {
		printlnFn("Password is required.")
		return nil
	}

	if err := a.authService.Login(ctx, userName, password); err != nil {
		printlnFn(errorMessage(err))
		return err
	}

	printlnFn(fmt.Sprintf("Welcome, %s!", userName))
	return nil
}

// Register prompts for account details and creates the account. A successful
// registration immediately establishes a session with the same credentials.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	if userName == "" {
		printlnFn("Username is required.")
		return nil
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	if email == "" {
		printlnFn("Email is required.")
		return nil
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	confirmation, err := getPassword("Confirm password", os.Stdout)
	if err != nil {
		return err
	}
	if password != confirmation {
		printlnFn("Passwords do not match.")
		return nil
	}

	if err := a.authService.Register(ctx, userName, email, password, confirmation); err != nil {
		printlnFn(errorMessage(err))
		return err
	}

	printlnFn(fmt.Sprintf("Account created. Welcome, %s!", userName))
	return nil
}

// Logout ends the session. The local session is always cleared, whether or
// not the server acknowledged the call.
func (a *App) Logout(ctx context.Context) error {
	if a.store.Token() == "" {
		printlnFn("You are not logged in.")
		return nil
	}

	a.authService.Logout(ctx)
	printlnFn("Logged out.")
	return nil
}

// Whoami shows the account behind the current session.
func (a *App) Whoami(ctx context.Context) error {
	if !a.requireAuth(ctx) {
		return nil
	}

	p := a.store.Profile()
	printlnFn(fmt.Sprintf("#%d %s <%s> joined %s", p.ID, p.Username, p.Email, p.DateJoined))
	return nil
}
