package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/gametracker/internal/catalog"
	"github.com/dmitrijs2005/gametracker/internal/logging"
	"github.com/dmitrijs2005/gametracker/internal/tracker"
)

var errUsage = errors.New("usage")

func usage(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{errUsage}, args...)...)
}

// App binds the REPL to a Tracker.
type App struct {
	tr     *tracker.Tracker
	log    logging.Logger
	reader *bufio.Reader
	out    io.Writer

	// lastSearch holds the hits of the latest search for "search" follow-ups.
	lastSearch []catalog.Summary
}

func NewApp(tr *tracker.Tracker, log logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{tr: tr, log: log, reader: bufio.NewReader(in), out: out}
}

// Run serves commands until the input ends or the user quits.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to GameTracker (type 'help' for commands)")
	if !a.tr.CatalogConfigured() {
		fmt.Fprintln(a.out, "Catalog search is off until an API key is set (setkey, -k or RAWG_API_KEY).")
	}
	a.log.Debug(ctx, "repl started")
	runREPL(ctx, a, a.status, a.reader)
	a.log.Debug(ctx, "repl finished")
}

func (a *App) status() string {
	if u := a.tr.CurrentUser(); u != nil {
		return fmt.Sprintf(" (%s)", u.Name)
	}
	return ""
}

func (a *App) hasProfile() bool {
	return a.tr.CurrentUser() != nil
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) prompt(text string) (string, error) {
	return GetSimpleText(a.reader, text, a.out)
}
