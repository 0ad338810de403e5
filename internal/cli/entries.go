package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/gophvault/internal/common"
	"github.com/dmitrijs2005/gophvault/internal/passgen"
	"github.com/dmitrijs2005/gophvault/internal/vault"
)

const masked = "••••••••"

// List prints every entry with its status.
func (a *App) List(ctx context.Context) error {
	if err := a.requireUnlocked(); err != nil {
		return err
	}
	st, err := a.keeper.Statuses(a.session)
	if err != nil {
		return err
	}
	if len(st) == 0 {
		a.println(a.theme.Muted.Render("No entries yet. Use 'add'."))
		return nil
	}

	a.println(a.theme.Title.Render(fmt.Sprintf("%d entries", len(st))))
	for _, s := range st {
		a.println(a.formatEntry(s.EntryView, s.Available))
	}
	return nil
}

// Search prints entries whose service or account contains query.
func (a *App) Search(ctx context.Context, query string) error {
	if err := a.requireUnlocked(); err != nil {
		return err
	}
	if strings.TrimSpace(query) == "" {
		return common.Validation("query", "usage: search <text>")
	}

	found := a.keeper.Search(query)
	if len(found) == 0 {
		a.println(a.theme.Muted.Render("No matches."))
		return nil
	}
	for _, v := range found {
		a.println(a.formatEntry(v, true))
	}
	return nil
}

func (a *App) formatEntry(v vault.EntryView, available bool) string {
	secret := a.theme.Muted.Render(masked)
	if !available {
		secret = a.theme.Error.Render("unavailable")
	} else if value, left, ok := a.keeper.Revealed(a.session, v.Index); ok {
		secret = a.theme.Secret.Render(value) + a.theme.Muted.Render(fmt.Sprintf(" (%ds)", int(left.Seconds()+0.5)))
	}

	line := a.theme.Index.Render(strconv.Itoa(v.Index+1)+".") + " " + a.theme.Name.Render(v.Name)
	if v.Account != "" {
		line += " " + a.theme.Account.Render(v.Account)
	}
	return line + "  " + secret
}

// Add prompts for a new entry. An empty password is replaced by a
// generated one.
func (a *App) Add(ctx context.Context) error {
	if err := a.requireUnlocked(); err != nil {
		return err
	}

	name, err := GetSimpleText(a.reader, "Service", a.out)
	if err != nil {
		return err
	}
	account, err := GetSimpleText(a.reader, "Account", a.out)
	if err != nil {
		return err
	}
	secret, err := GetPassword(a.reader, "Password (empty to generate)", a.out)
	if err != nil {
		return err
	}
	generated := len(secret) == 0
	if generated {
		pw, err := passgen.Generate(a.cfg.GeneratorLength)
		if err != nil {
			return err
		}
		secret = []byte(pw)
	}
	defer common.WipeByteArray(secret)

	v, err := a.keeper.Add(ctx, a.session, name, account, secret)
	if err != nil {
		return err
	}

	msg := fmt.Sprintf("Added #%d %s.", v.Index+1, v.Name)
	if generated {
		msg += fmt.Sprintf(" Generated a %d-character password; use 'show %d' or 'copy %d'.", a.cfg.GeneratorLength, v.Index+1, v.Index+1)
	}
	a.println(a.theme.Success.Render(msg))
	return nil
}

// Edit changes the password, and optionally the account, of an entry
// selected by service name.
func (a *App) Edit(ctx context.Context) error {
	if err := a.requireUnlocked(); err != nil {
		return err
	}

	name, err := GetSimpleText(a.reader, "Service", a.out)
	if err != nil {
		return err
	}
	account, err := GetSimpleText(a.reader, "New account (empty to keep)", a.out)
	if err != nil {
		return err
	}
	secret, err := GetPassword(a.reader, "New password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(secret)
	confirm, err := GetPassword(a.reader, "Confirm password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	v, err := a.keeper.Edit(ctx, a.session, vault.EditRequest{
		Name:    name,
		Account: account,
		Secret:  secret,
		Confirm: confirm,
	})
	if err != nil {
		return err
	}
	a.println(a.theme.Success.Render(fmt.Sprintf("Updated #%d %s.", v.Index+1, v.Name)))
	return nil
}

// Delete removes entry n after confirmation.
func (a *App) Delete(ctx context.Context, arg string) error {
	if err := a.requireUnlocked(); err != nil {
		return err
	}
	idx, err := parseIndex("delete", arg)
	if err != nil {
		return err
	}
	v, err := a.keeper.Entry(idx)
	if err != nil {
		return err
	}

	ok, err := Confirm(a.reader, fmt.Sprintf("Delete #%d %s?", idx+1, v.Name), a.out)
	if err != nil {
		return err
	}
	if !ok {
		a.println("Cancelled.")
		return nil
	}

	if _, err := a.keeper.Delete(ctx, a.session, idx); err != nil {
		return err
	}
	a.println(a.theme.Success.Render("Deleted " + v.Name + "."))
	return nil
}

// parseIndex turns a 1-based entry number into an index.
func parseIndex(cmd, arg string) (int, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return 0, common.Validation("n", "usage: "+cmd+" <n>")
	}
	n, err := strconv.Atoi(strings.TrimPrefix(arg, "#"))
	if err != nil || n < 1 {
		return 0, common.Validation("n", fmt.Sprintf("invalid entry number %q", arg))
	}
	return n - 1, nil
}
