package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// execIface is the command surface the REPL dispatches to. *App satisfies
// it; tests use a stub.
type execIface interface {
	status() string
	unlocked() bool
	fail(ctx context.Context, cmd string, err error)

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	Search(ctx context.Context, query string) error
	Add(ctx context.Context) error
	Edit(ctx context.Context) error
	Delete(ctx context.Context, arg string) error
	Show(ctx context.Context, arg string) error
	Hide(ctx context.Context, arg string) error
	Copy(ctx context.Context, arg string) error
	CopyUser(ctx context.Context, arg string) error
	Generate(ctx context.Context, arg string) error
	Phrase(ctx context.Context, arg string) error
	ToggleTheme(ctx context.Context) error
}

const (
	helpLocked   = "Available commands: register, login, gen [len], phrase [words], theme, exit"
	helpUnlocked = "Available commands: list, search <q>, add, edit, delete <n>, show <n>, hide <n>, copy <n>, user <n>, gen [len], phrase [words], theme, logout, exit"
)

// runREPL reads commands from reader until "exit", "quit" or end of input.
// Command errors are reported through a.fail and never stop the loop.
func runREPL(ctx context.Context, a execIface, reader *bufio.Reader, w io.Writer) {
	for {
		fmt.Fprintf(w, "vault (%s)> ", a.status())

		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			fmt.Fprintln(w)
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := strings.ToLower(parts[0])
		arg := strings.Join(parts[1:], " ")

		var cmdErr error
		switch cmd {
		case "help", "?":
			if a.unlocked() {
				fmt.Fprintln(w, helpUnlocked)
			} else {
				fmt.Fprintln(w, helpLocked)
			}
		case "register":
			cmdErr = a.Register(ctx)
		case "login":
			cmdErr = a.Login(ctx)
		case "logout":
			cmdErr = a.Logout(ctx)
		case "l", "list", "ls":
			cmdErr = a.List(ctx)
		case "search", "find":
			cmdErr = a.Search(ctx, arg)
		case "add":
			cmdErr = a.Add(ctx)
		case "edit":
			cmdErr = a.Edit(ctx)
		case "delete", "rm":
			cmdErr = a.Delete(ctx, arg)
		case "show":
			cmdErr = a.Show(ctx, arg)
		case "hide":
			cmdErr = a.Hide(ctx, arg)
		case "copy", "cp":
			cmdErr = a.Copy(ctx, arg)
		case "user":
			cmdErr = a.CopyUser(ctx, arg)
		case "gen":
			cmdErr = a.Generate(ctx, arg)
		case "phrase":
			cmdErr = a.Phrase(ctx, arg)
		case "theme":
			cmdErr = a.ToggleTheme(ctx)
		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return
		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}

		if cmdErr != nil {
			a.fail(ctx, cmd, cmdErr)
		}
		if err != nil {
			// last line had no newline
			return
		}
	}
}
