package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/gophvault/internal/common"
	"github.com/dmitrijs2005/gophvault/internal/passgen"
)

const maxGenerated = 256

// Generate prints a random password. The length defaults to the
// configured one.
func (a *App) Generate(ctx context.Context, arg string) error {
	n, err := optionalCount(arg, a.cfg.GeneratorLength, "length")
	if err != nil {
		return err
	}
	pw, err := passgen.Generate(n)
	if err != nil {
		return err
	}
	a.println(a.theme.Secret.Render(pw))
	return nil
}

// Phrase prints a diceware passphrase.
func (a *App) Phrase(ctx context.Context, arg string) error {
	n, err := optionalCount(arg, passgen.DefaultWords, "words")
	if err != nil {
		return err
	}
	p, err := passgen.Passphrase(n)
	if err != nil {
		return err
	}
	a.println(a.theme.Secret.Render(p))
	return nil
}

// ToggleTheme flips and persists dark mode.
func (a *App) ToggleTheme(ctx context.Context) error {
	dark, err := a.keeper.ToggleDarkMode(ctx)
	if err != nil {
		return err
	}
	a.theme = NewTheme(a.out, dark)
	if dark {
		a.println(a.theme.Success.Render("Dark mode on."))
	} else {
		a.println(a.theme.Success.Render("Dark mode off."))
	}
	return nil
}

func optionalCount(arg string, def int, what string) (int, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return def, nil
	}
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > maxGenerated {
		return 0, common.Validation(what, fmt.Sprintf("%s must be a number between 1 and %d", what, maxGenerated))
	}
	return n, nil
}
