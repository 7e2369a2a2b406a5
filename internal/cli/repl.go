package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/gametracker/internal/logging"
)

// printlnFn is a test seam for REPL output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. App implements
// it; tests use a stub.
type execIface interface {
	hasProfile() bool
	Users(ctx context.Context) error
	AddUser(ctx context.Context, args []string) error
	Select(ctx context.Context, args []string) error
	DeleteUser(ctx context.Context, args []string) error
	Logout(ctx context.Context) error
	List(ctx context.Context, shelf string) error
	Add(ctx context.Context) error
	Rate(ctx context.Context, args []string) error
	Note(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	ToBacklog(ctx context.Context, args []string) error
	ToPlayed(ctx context.Context, args []string) error
	Search(ctx context.Context, args []string) error
	Details(ctx context.Context, args []string) error
	SetKey(ctx context.Context) error
}

// Shelves accepted by List.
const (
	shelfAll     = "all"
	shelfPlayed  = "played"
	shelfBacklog = "backlog"
)

type readResult struct {
	line string
	err  error
}

// readLine reads one line from reader, giving up when ctx is done. The
// abandoned read keeps its goroutine until the reader returns.
func readLine(ctx context.Context, reader *bufio.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	ch := make(chan readResult, 1)
	go func() {
		line, err := reader.ReadString('\n')
		ch <- readResult{line, err}
	}()
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-ch:
		return r.line, r.err
	}
}

// runREPL reads commands from reader until EOF, exit/quit or ctx is done and
// dispatches them to a. Handler errors are printed and the loop carries on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("gt%s> ", statusFn()))
		line, err := readLine(ctx, reader)
		if ctx.Err() != nil {
			printlnFn("Interrupted.")
			return
		}
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]
		cmdCtx := logging.ContextWith(ctx, "cmd", cmd)

		var cmdErr error
		switch cmd {
		case "help":
			if a.hasProfile() {
				printlnFn("Available commands: (l)ist, played, backlog, add, rate, note, delete, tobacklog, toplayed, search, details, setkey, users, adduser, select, deluser, logout, exit")
			} else {
				printlnFn("Available commands: users, adduser, select, deluser, search, details, setkey, exit")
			}
		case "users":
			cmdErr = a.Users(cmdCtx)
		case "adduser":
			cmdErr = a.AddUser(cmdCtx, args)
		case "select":
			cmdErr = a.Select(cmdCtx, args)
		case "deluser":
			cmdErr = a.DeleteUser(cmdCtx, args)
		case "logout":
			cmdErr = a.Logout(cmdCtx)
		case "l", "list":
			cmdErr = a.List(cmdCtx, shelfAll)
		case "played":
			cmdErr = a.List(cmdCtx, shelfPlayed)
		case "backlog":
			cmdErr = a.List(cmdCtx, shelfBacklog)
		case "add":
			cmdErr = a.Add(cmdCtx)
		case "rate":
			cmdErr = a.Rate(cmdCtx, args)
		case "note":
			cmdErr = a.Note(cmdCtx, args)
		case "delete":
			cmdErr = a.Delete(cmdCtx, args)
		case "tobacklog":
			cmdErr = a.ToBacklog(cmdCtx, args)
		case "toplayed":
			cmdErr = a.ToPlayed(cmdCtx, args)
		case "search":
			cmdErr = a.Search(cmdCtx, args)
		case "details":
			cmdErr = a.Details(cmdCtx, args)
		case "setkey":
			cmdErr = a.SetKey(cmdCtx)
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command:", cmd)
		}
		if cmdErr != nil {
			printlnFn("Error:", cmdErr)
		}
		if err != nil {
			return
		}
	}
}
