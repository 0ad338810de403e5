package cli

import (
	"context"

	"github.com/dmitrijs2005/gophvault/internal/common"
	"github.com/dmitrijs2005/gophvault/internal/vault"
)

func (a *App) unlocked() bool {
	return a.state() == vault.StateUnlocked
}

// Register creates the vault user and unlocks the vault.
func (a *App) Register(ctx context.Context) error {
	if a.state() != vault.StateUninitialized {
		return common.Validation("username", "a user is already registered, use 'login'")
	}

	username, err := GetSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.reader, "Master password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	confirm, err := GetPassword(a.reader, "Confirm password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	s, err := a.keeper.Register(ctx, username, password, confirm)
	if err != nil {
		return err
	}
	a.session = s
	a.println(a.theme.Success.Render("Vault created. Welcome, " + s.Username() + "!"))
	return nil
}

// Login unlocks the vault. An existing session is locked first.
func (a *App) Login(ctx context.Context) error {
	if a.state() == vault.StateUninitialized {
		return common.Validation("username", "no user yet, use 'register'")
	}

	username, err := GetSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.reader, "Master password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	s, err := a.keeper.Login(ctx, username, password)
	if err != nil {
		return err
	}
	if a.session != nil {
		a.keeper.Logout(ctx, a.session)
	}
	a.session = s
	a.println(a.theme.Success.Render("Unlocked. Welcome back, " + s.Username() + "!"))
	return nil
}

// Logout locks the vault.
func (a *App) Logout(ctx context.Context) error {
	if err := a.requireUnlocked(); err != nil {
		return err
	}
	a.keeper.Logout(ctx, a.session)
	a.session = nil
	a.clip.Close()
	a.println("Vault locked.")
	return nil
}
