package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophvault/internal/common"
)

// Show reveals the password of entry n for the reveal timeout.
func (a *App) Show(ctx context.Context, arg string) error {
	if err := a.requireUnlocked(); err != nil {
		return err
	}
	idx, err := parseIndex("show", arg)
	if err != nil {
		return err
	}
	v, err := a.keeper.Entry(idx)
	if err != nil {
		return err
	}
	secret, err := a.keeper.Reveal(ctx, a.session, idx)
	if err != nil {
		return err
	}

	a.println(a.theme.Name.Render(v.Name) + ": " + a.theme.Secret.Render(secret))
	a.println(a.theme.Muted.Render(fmt.Sprintf("Visible in 'list' for %s.", a.cfg.RevealTimeout)))
	return nil
}

// Hide hides a revealed password before its timeout.
func (a *App) Hide(ctx context.Context, arg string) error {
	if err := a.requireUnlocked(); err != nil {
		return err
	}
	idx, err := parseIndex("hide", arg)
	if err != nil {
		return err
	}
	if _, err := a.keeper.Entry(idx); err != nil {
		return err
	}
	a.keeper.Hide(a.session, idx)
	a.println("Hidden.")
	return nil
}

// Copy puts the password of entry n on the clipboard and clears it after
// the clipboard timeout.
func (a *App) Copy(ctx context.Context, arg string) error {
	if err := a.requireUnlocked(); err != nil {
		return err
	}
	idx, err := parseIndex("copy", arg)
	if err != nil {
		return err
	}
	secret, err := a.keeper.Decrypt(a.session, idx)
	if err != nil {
		return err
	}

	if err := a.clip.Copy(secret, true); err != nil {
		a.log.Warn(ctx, "clipboard write failed", "error", err)
		return &common.Error{Kind: common.KindValidation, Field: "clipboard", Message: "clipboard unavailable", Err: err}
	}
	a.println(a.theme.Success.Render(fmt.Sprintf("Password copied. Clipboard clears in %s.", a.cfg.ClipboardTimeout)))
	return nil
}

// CopyUser puts the account of entry n on the clipboard.
func (a *App) CopyUser(ctx context.Context, arg string) error {
	if err := a.requireUnlocked(); err != nil {
		return err
	}
	idx, err := parseIndex("user", arg)
	if err != nil {
		return err
	}
	v, err := a.keeper.Entry(idx)
	if err != nil {
		return err
	}
	if v.Account == "" {
		return common.Validation("account", "entry has no account")
	}

	if err := a.clip.Copy(v.Account, false); err != nil {
		a.log.Warn(ctx, "clipboard write failed", "error", err)
		return &common.Error{Kind: common.KindValidation, Field: "clipboard", Message: "clipboard unavailable", Err: err}
	}
	a.println(a.theme.Success.Render("Account copied."))
	return nil
}
