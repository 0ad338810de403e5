package cli

import (
	"context"
	"sync"
	"time"

	"github.com/atotto/clipboard"
	"github.com/dmitrijs2005/gophvault/internal/logging"
)

// Test seams for the system clipboard.
var (
	writeClipboard = clipboard.WriteAll
	readClipboard  = clipboard.ReadAll
)

// clipboardGuard copies values to the clipboard and, for secrets, clears
// the clipboard after a timeout unless something else was copied since.
type clipboardGuard struct {
	timeout time.Duration
	log     logging.Logger

	mu      sync.Mutex
	timer   *time.Timer
	pending string
}

func newClipboardGuard(timeout time.Duration, log logging.Logger) *clipboardGuard {
	return &clipboardGuard{timeout: timeout, log: log}
}

// Copy puts value on the clipboard. When secret is true it is cleared after
// the timeout.
func (g *clipboardGuard) Copy(value string, secret bool) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := writeClipboard(value); err != nil {
		return err
	}

	if g.timer != nil {
		g.timer.Stop()
		g.timer = nil
	}
	g.pending = ""
	if !secret {
		return nil
	}

	g.pending = value
	g.timer = time.AfterFunc(g.timeout, func() {
		g.mu.Lock()
		defer g.mu.Unlock()
		g.clearLocked()
	})
	return nil
}

// Close clears a pending secret right away.
func (g *clipboardGuard) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.timer != nil {
		g.timer.Stop()
		g.timer = nil
	}
	g.clearLocked()
}

func (g *clipboardGuard) clearLocked() {
	if g.pending == "" {
		return
	}
	value := g.pending
	g.pending = ""

	cur, err := readClipboard()
	if err != nil {
		g.log.Warn(context.Background(), "clipboard read failed", "error", err)
		return
	}
	if cur != value {
		return
	}
	if err := writeClipboard(""); err != nil {
		g.log.Warn(context.Background(), "clipboard clear failed", "error", err)
		return
	}
	g.log.Debug(context.Background(), "clipboard cleared")
}
