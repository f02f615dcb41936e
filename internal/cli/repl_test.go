package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool
	calls    []string
	printed  []string
}

func (f *fakeExec) record(s string) error {
	f.calls = append(f.calls, s)
	return nil
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }

func (f *fakeExec) println(args ...any) {
	f.printed = append(f.printed, strings.TrimSuffix(fmt.Sprintln(args...), "\n"))
}

func (f *fakeExec) Cat(ctx context.Context) error  { return f.record("cat") }
func (f *fakeExec) List(ctx context.Context) error { return f.record("list") }

func (f *fakeExec) Add(ctx context.Context, name string) error {
	return f.record("add:" + name)
}

func (f *fakeExec) Rename(ctx context.Context, id, name string) error {
	return f.record("rename:" + id + ":" + name)
}

func (f *fakeExec) Delete(ctx context.Context, id string) error {
	return f.record("delete:" + id)
}

func (f *fakeExec) Register(ctx context.Context) error { return f.record("register") }

func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login")
}

func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}

func (f *fakeExec) WhoAmI() error                    { return f.record("whoami") }
func (f *fakeExec) Select(path string) error         { return f.record("select:" + path) }
func (f *fakeExec) Upload(ctx context.Context) error { return f.record("upload") }
func (f *fakeExec) Images() error                    { return f.record("images") }
func (f *fakeExec) Puzzle() error                    { return f.record("puzzle") }
func (f *fakeExec) Set(cell, value string) error     { return f.record("set:" + cell + "=" + value) }
func (f *fakeExec) Submit() error                    { return f.record("submit") }

func TestRunREPL_Dispatch(t *testing.T) {
	input := strings.Join([]string{
		"",
		"help",
		"login",
		"help",
		"cat",
		"l",
		"add Tom Cat",
		"add",
		"rename r1 bob",
		"rename r1",
		"delete r1",
		"select /tmp/my cat.png",
		"upload",
		"images",
		"puzzle",
		"set one 6",
		"submit",
		"whoami",
		"logout",
		"register",
		"exit",
		"list",
	}, "\n")

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, bufio.NewReader(strings.NewReader(input)))

	assert.Equal(t, []string{
		"login",
		"cat",
		"list",
		"add:Tom Cat",
		"add:",
		"rename:r1:bob",
		"rename:r1:",
		"delete:r1",
		"select:/tmp/my cat.png",
		"upload",
		"images",
		"puzzle",
		"set:one=6",
		"submit",
		"whoami",
		"logout",
		"register",
	}, exec.calls, "nothing after exit is executed")

	assert.Contains(t, exec.printed, helpGuest)
	assert.Contains(t, exec.printed, helpMember)
	assert.Contains(t, exec.printed, "cb status> ")
	assert.Equal(t, "Bye!", exec.printed[len(exec.printed)-1])
}

func TestRunREPL_UsageAndUnknown(t *testing.T) {
	input := "rename\ndelete\ndelete a b\nselect\nset one\nfoobar\nquit\n"
	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewReader(strings.NewReader(input)))

	assert.Empty(t, exec.calls)
	assert.Contains(t, exec.printed, "Usage: rename <id> <name>")
	assert.Contains(t, exec.printed, "Usage: delete <id>")
	assert.Contains(t, exec.printed, "Usage: select <path>")
	assert.Contains(t, exec.printed, "Usage: set <cell> <value>")
	assert.Contains(t, exec.printed, "Unknown command: foobar")
}

func TestRunREPL_StopsOnEOF(t *testing.T) {
	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewReader(strings.NewReader("cat")))
	assert.Equal(t, []string{"cat"}, exec.calls)
}
