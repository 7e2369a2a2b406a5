package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	profile bool
	calls   []string
	fail    error
}

func (f *fakeExec) record(name string, args ...string) error {
	f.calls = append(f.calls, strings.TrimSpace(name+" "+strings.Join(args, " ")))
	return f.fail
}

func (f *fakeExec) hasProfile() bool                 { return f.profile }
func (f *fakeExec) Users(ctx context.Context) error  { return f.record("users") }
func (f *fakeExec) Logout(ctx context.Context) error { f.profile = false; return f.record("logout") }
func (f *fakeExec) Add(ctx context.Context) error    { return f.record("add") }
func (f *fakeExec) SetKey(ctx context.Context) error { return f.record("setkey") }
func (f *fakeExec) AddUser(ctx context.Context, args []string) error {
	return f.record("adduser", args...)
}
func (f *fakeExec) Select(ctx context.Context, args []string) error {
	f.profile = true
	return f.record("select", args...)
}
func (f *fakeExec) DeleteUser(ctx context.Context, args []string) error {
	return f.record("deluser", args...)
}
func (f *fakeExec) List(ctx context.Context, shelf string) error { return f.record("list", shelf) }
func (f *fakeExec) Rate(ctx context.Context, args []string) error {
	return f.record("rate", args...)
}
func (f *fakeExec) Note(ctx context.Context, args []string) error {
	return f.record("note", args...)
}
func (f *fakeExec) Delete(ctx context.Context, args []string) error {
	return f.record("delete", args...)
}
func (f *fakeExec) ToBacklog(ctx context.Context, args []string) error {
	return f.record("tobacklog", args...)
}
func (f *fakeExec) ToPlayed(ctx context.Context, args []string) error {
	return f.record("toplayed", args...)
}
func (f *fakeExec) Search(ctx context.Context, args []string) error {
	return f.record("search", args...)
}
func (f *fakeExec) Details(ctx context.Context, args []string) error {
	return f.record("details", args...)
}

func capturePrints(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func TestRunREPL_Dispatch(t *testing.T) {
	capturePrints(t)
	input := strings.Join([]string{
		"adduser Alice Smith",
		"select Alice Smith",
		"l",
		"played",
		"backlog",
		"add",
		"rate 1 5",
		"note 1 great ending",
		"toplayed 2",
		"tobacklog 1",
		"delete 3",
		"search hollow knight",
		"details 1",
		"setkey",
		"users",
		"deluser Bob",
		"logout",
		"exit",
		"users",
	}, "\n")

	f := &fakeExec{}
	runREPL(context.Background(), f, func() string { return "" }, bufio.NewReader(strings.NewReader(input)))

	assert.Equal(t, []string{
		"adduser Alice Smith",
		"select Alice Smith",
		"list all",
		"list played",
		"list backlog",
		"add",
		"rate 1 5",
		"note 1 great ending",
		"toplayed 2",
		"tobacklog 1",
		"delete 3",
		"search hollow knight",
		"details 1",
		"setkey",
		"users",
		"deluser Bob",
		"logout",
	}, f.calls, "nothing after exit runs")
}

func TestRunREPL_HelpDependsOnProfile(t *testing.T) {
	out := capturePrints(t)

	runREPL(context.Background(), &fakeExec{}, func() string { return "" },
		bufio.NewReader(strings.NewReader("help\n")))
	runREPL(context.Background(), &fakeExec{profile: true}, func() string { return " (Alice)" },
		bufio.NewReader(strings.NewReader("help\n")))

	joined := strings.Join(*out, "\n")
	assert.Contains(t, joined, "Available commands: users, adduser")
	assert.Contains(t, joined, "Available commands: (l)ist")
	assert.Contains(t, joined, "gt (Alice)> ")
}

func TestRunREPL_ErrorsAndUnknownKeepLooping(t *testing.T) {
	out := capturePrints(t)
	f := &fakeExec{fail: errors.New("boom")}

	runREPL(context.Background(), f, func() string { return "" },
		bufio.NewReader(strings.NewReader("\n   \nfoobar\nusers\nquit")))

	assert.Equal(t, []string{"users"}, f.calls)
	assert.Contains(t, *out, "Unknown command: foobar")
	assert.Contains(t, *out, "Error: boom")
	assert.Contains(t, *out, "Bye!")
}

func TestRunREPL_LastLineWithoutNewline(t *testing.T) {
	capturePrints(t)
	f := &fakeExec{}

	runREPL(context.Background(), f, func() string { return "" },
		bufio.NewReader(strings.NewReader("users")))
	assert.Equal(t, []string{"users"}, f.calls)
}

func TestRunREPL_CancelledContextRunsNothing(t *testing.T) {
	out := capturePrints(t)
	f := &fakeExec{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runREPL(ctx, f, func() string { return "" }, bufio.NewReader(strings.NewReader("adduser Bob\nusers\n")))

	assert.Empty(t, f.calls)
	assert.Contains(t, *out, "Interrupted.")
}

func TestRunREPL_CancelWhileWaitingForInput(t *testing.T) {
	capturePrints(t)
	pr, pw := io.Pipe()
	defer pw.Close()

	f := &fakeExec{}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		runREPL(ctx, f, func() string { return "" }, bufio.NewReader(pr))
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		require.FailNow(t, "REPL kept waiting after cancellation")
	}
	assert.Empty(t, f.calls)
}
