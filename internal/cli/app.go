package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/dmitrijs2005/catboard/internal/logging"
	"github.com/dmitrijs2005/catboard/internal/models"
	"github.com/dmitrijs2005/catboard/internal/puzzle"
	"github.com/dmitrijs2005/catboard/internal/view"
)

// Controller is the part of *view.Controller the CLI drives.
type Controller interface {
	Mount(ctx context.Context)
	Close()
	Notices() <-chan view.Notice
	Snapshot() view.State

	FetchRandomCat(ctx context.Context) (string, error)
	ListRecords(ctx context.Context) ([]models.Record, error)
	SetNewName(name string)
	CreateRecord(ctx context.Context, name string) error
	RenameRecord(ctx context.Context, id, name string) error
	DeleteRecord(ctx context.Context, id string) error

	Register(ctx context.Context, email, password string) error
	Login(ctx context.Context, email, password string) error
	Logout(ctx context.Context) error

	SelectFile(path string) error
	Upload(ctx context.Context) error
	Images() []models.UploadedImage

	SetCell(name, value string) error
	Submit() puzzle.Outcome
	Highlighted(name string) bool
}

type App struct {
	ctrl       Controller
	collection string
	reader     *bufio.Reader
	out        io.Writer
	outMu      sync.Mutex
	logger     logging.Logger
}

func NewApp(ctrl Controller, collection string, in io.Reader, out io.Writer, l logging.Logger) *App {
	return &App{
		ctrl:       ctrl,
		collection: collection,
		reader:     bufio.NewReader(in),
		out:        out,
		logger:     l.With("module", "cli"),
	}
}

// Run mounts the controller, prints the first render and serves commands
// until the input ends, the user quits or ctx is canceled.
func (a *App) Run(ctx context.Context) {
	a.logger.Info(ctx, "starting", "collection", a.collection)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		a.watchNotices(a.ctrl.Notices())
	}()

	a.ctrl.Mount(ctx)
	a.println("Welcome to catboard (type 'help' for commands)")
	a.render()

	done := make(chan struct{})
	go func() {
		defer close(done)
		runREPL(ctx, a, a.status, a.reader)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		a.logger.Info(ctx, "interrupted")
	}

	a.ctrl.Close()
	wg.Wait()
}

func (a *App) isLoggedIn() bool {
	return a.ctrl.Snapshot().Session != nil
}

func (a *App) status() string {
	if s := a.ctrl.Snapshot().Session; s != nil {
		return fmt.Sprintf("(%s %s)", s.Email, a.collection)
	}
	return fmt.Sprintf("(%s)", a.collection)
}

// watchNotices prints every notice until ch is closed.
func (a *App) watchNotices(ch <-chan view.Notice) {
	for n := range ch {
		a.println(fmt.Sprintf("! %s failed: %v", n.Op, n.Err))
	}
}

func (a *App) println(args ...any) {
	a.outMu.Lock()
	defer a.outMu.Unlock()
	fmt.Fprintln(a.out, args...)
}
