package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/phishguard/internal/session"
)

type App struct {
	gate   *session.Gate
	reader *bufio.Reader
	out    io.Writer
}

// NewApp returns an App reading commands and answers from in and writing to
// out.
func NewApp(gate *session.Gate, in io.Reader, out io.Writer) *App {
	return &App{gate: gate, reader: bufio.NewReader(in), out: out}
}

// Run blocks until the user exits, input ends or ctx is done.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to PhishGuard (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader, a.out)
}

func (a *App) isLoggedIn() bool {
	return a.gate.Session().IsAuthenticated()
}

func (a *App) getStatus() string {
	if id := a.gate.Session().Identity(); id != "" {
		return fmt.Sprintf("(%s)", id)
	}
	return ""
}

func (a *App) say(result session.Result) {
	fmt.Fprintln(a.out, result.Message)
}
