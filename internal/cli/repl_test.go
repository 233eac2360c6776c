package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/dmitrijs2005/phishguard/internal/services"
	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  [][]string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) Detect(ctx context.Context, kind services.Kind, args []string) error {
	f.calls = append(f.calls, string(kind))
	f.args = append(f.args, args)
	return nil
}

func runScript(ctx context.Context, exec execIface, lines ...string) string {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader(strings.Join(lines, "\n")))
	runREPL(ctx, exec, func() string { return "(status)" }, r, &out)
	return out.String()
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	exec := &fakeExec{}
	out := runScript(context.Background(), exec,
		"help",
		"register",
		"login",
		"help",
		"",
		"url http://paypa1.example/login",
		"EMAIL",
		"website",
		"foobar",
		"logout",
		"exit",
		"login",
	)

	assert.Equal(t, []string{"register", "login", "url", "email", "website", "logout"}, exec.calls)
	assert.Equal(t, []string{"http://paypa1.example/login"}, exec.args[0])
	assert.Empty(t, exec.args[1])

	assert.Contains(t, out, "Available commands: register, login, exit")
	assert.Contains(t, out, "Available commands: url [link], email, website, logout, exit")
	assert.Contains(t, out, "Unknown command: foobar")
	assert.Contains(t, out, "pg (status)> ")
	assert.True(t, strings.HasSuffix(out, "Bye!\n"))
}

func TestRunREPL_StopsAtEOF(t *testing.T) {
	exec := &fakeExec{}
	runScript(context.Background(), exec, "register", "login")
	assert.Equal(t, []string{"register", "login"}, exec.calls)
}

func TestRunREPL_StopsWhenContextDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exec := &fakeExec{}
	out := runScript(ctx, exec, "register")
	assert.Empty(t, exec.calls)
	assert.Empty(t, out)
}
