package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/gophvault/internal/common"
	"github.com/dmitrijs2005/gophvault/internal/config"
	"github.com/dmitrijs2005/gophvault/internal/filex"
	"github.com/dmitrijs2005/gophvault/internal/logging"
	"github.com/dmitrijs2005/gophvault/internal/storage/jsonfile"
	"github.com/dmitrijs2005/gophvault/internal/storage/sqlite"
	"github.com/dmitrijs2005/gophvault/internal/vault"
)

// App is the interactive shell. It holds at most one session at a time.
type App struct {
	cfg     *config.Config
	keeper  *vault.Keeper
	session *vault.Session
	log     logging.Logger

	reader *bufio.Reader
	out    io.Writer
	theme  *Theme
	clip   *clipboardGuard

	closeFn func() error
}

// NewApp opens the configured repository and wires the shell to stdin and
// stdout.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	repo, closeFn, err := openRepository(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	k := vault.NewKeeper(repo, log, vault.WithRevealTimeout(cfg.RevealTimeout))
	a := newApp(k, cfg, log, os.Stdin, os.Stdout)
	a.closeFn = closeFn
	return a, nil
}

func newApp(k *vault.Keeper, cfg *config.Config, log logging.Logger, in io.Reader, out io.Writer) *App {
	if log == nil {
		log = logging.Nop()
	}
	return &App{
		cfg:    cfg,
		keeper: k,
		log:    log,
		reader: bufio.NewReader(in),
		out:    out,
		theme:  NewTheme(out, true),
		clip:   newClipboardGuard(cfg.ClipboardTimeout, log),
	}
}

func openRepository(ctx context.Context, cfg *config.Config, log logging.Logger) (vault.Repository, func() error, error) {
	if err := filex.EnsureParentDir(cfg.VaultPath); err != nil {
		return nil, nil, err
	}

	switch cfg.Backend {
	case config.BackendSQLite:
		s, err := sqlite.Open(ctx, cfg.VaultPath, log)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	case config.BackendJSON:
		return jsonfile.New(cfg.VaultPath, log), func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}

// Run loads the vault and serves commands until exit or end of input.
func (a *App) Run(ctx context.Context) error {
	a.keeper.Load(ctx)
	a.theme = NewTheme(a.out, a.keeper.DarkMode())

	a.println(a.theme.Title.Render("GophVault") + a.theme.Muted.Render(" (type 'help' for commands)"))
	if a.keeper.State(nil) == vault.StateUninitialized {
		a.println("No user yet. Type 'register' to create one.")
	} else {
		a.println("Type 'login' to unlock " + a.keeper.Username() + "'s vault.")
	}

	runREPL(ctx, a, a.reader, a.out)
	return a.Close(ctx)
}

// Close locks the session, clears a copied secret and releases storage.
func (a *App) Close(ctx context.Context) error {
	if a.session != nil {
		a.keeper.Logout(ctx, a.session)
		a.session = nil
	}
	a.clip.Close()
	if a.closeFn != nil {
		return a.closeFn()
	}
	return nil
}

func (a *App) state() vault.State {
	return a.keeper.State(a.session)
}

func (a *App) status() string {
	switch a.state() {
	case vault.StateUninitialized:
		return "new"
	case vault.StateLocked:
		return "locked"
	default:
		return a.session.Username()
	}
}

// fail shows the user-safe text of err and logs the detail.
func (a *App) fail(ctx context.Context, cmd string, err error) {
	a.log.Debug(ctx, "command failed", "cmd", cmd, "error", common.LogDetail(err))
	a.println(a.theme.Error.Render("Error: " + common.UserMessage(err)))
}

func (a *App) println(s string) {
	fmt.Fprintln(a.out, s)
}

func (a *App) requireUnlocked() error {
	if a.state() != vault.StateUnlocked {
		return common.ErrKeyUnavailable
	}
	return nil
}
