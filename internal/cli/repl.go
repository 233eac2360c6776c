package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/phishguard/internal/services"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Detect(ctx context.Context, kind services.Kind, args []string) error
}

// runREPL reads commands from reader until EOF, "exit"/"quit" or ctx is
// done. The prompt shows the status returned by statusFn.
//
//	Not logged in:
//	  help, register, login, exit | quit
//
//	Logged in:
//	  help, url [link], email, website, logout, exit | quit
//
// Detection commands are resolved with services.ParseKind.
//
// Handler errors are not acted on here; handlers report them to the user.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}

		fmt.Fprintf(w, "pg %s> ", statusFn())
		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			fmt.Fprintln(w)
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintf(w, "Available commands: %s, logout, exit\n", detectionCommands())
			} else {
				fmt.Fprintln(w, "Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			kind, err := services.ParseKind(cmd)
			if err != nil {
				fmt.Fprintln(w, "Unknown command:", cmd)
				continue
			}
			_ = a.Detect(ctx, kind, args)
		}
	}
}

// detectionCommands renders the detection modes for the help line, e.g.
// "url [link], email, website".
func detectionCommands() string {
	names := make([]string, 0, len(services.Kinds))
	for _, k := range services.Kinds {
		if k == services.KindURL {
			names = append(names, string(k)+" [link]")
			continue
		}
		names = append(names, string(k))
	}
	return strings.Join(names, ", ")
}
