// Package view owns the client-visible state: the record list, the cat
// picture, the session mirror, uploaded images and the puzzle board.
//
// Every operation talks to its remote party without holding the state lock,
// then applies the result. Failures are logged, published on the Notices
// channel and returned; the state keeps whatever it showed before.
package view

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/catboard/internal/config"
	"github.com/dmitrijs2005/catboard/internal/filex"
	"github.com/dmitrijs2005/catboard/internal/logging"
	"github.com/dmitrijs2005/catboard/internal/models"
	"github.com/dmitrijs2005/catboard/internal/puzzle"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// NoticeBuffer is the capacity of the notification channel.
const NoticeBuffer = 64

var (
	newID = uuid.NewString
	now   = time.Now
)

type RecordStore interface {
	List(ctx context.Context) ([]models.Record, error)
	Insert(ctx context.Context, name string) (string, error)
	UpdateName(ctx context.Context, id, name string) error
	Delete(ctx context.Context, id string) error
}

type Authenticator interface {
	CreateAccount(ctx context.Context, email, password string) error
	SignIn(ctx context.Context, email, password string) error
	SignOut(ctx context.Context) error
	Subscribe(fn func(*models.Session)) func()
}

type BlobStore interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) error
	List(ctx context.Context, prefix string) ([]string, error)
	PublicURL(ctx context.Context, key string) (string, error)
}

type CatFetcher interface {
	FetchRandom(ctx context.Context) (string, error)
}

// State is everything a render needs.
type State struct {
	Records      []models.Record
	NewName      string
	CatURL       string
	Session      *models.Session
	Images       []models.UploadedImage
	SelectedFile *filex.LocalFile
	Board        *puzzle.Board
}

// Notice reports a failed operation.
type Notice struct {
	Op  string
	Err error
	At  time.Time
}

type Controller struct {
	records    RecordStore
	auth       Authenticator
	blobs      BlobStore
	cats       CatFetcher
	blobPrefix string
	logger     logging.Logger

	mu    sync.RWMutex
	state State

	subscribeOnce sync.Once
	closeOnce     sync.Once
	unsubscribe   func()

	noticeMu sync.Mutex
	closed   bool
	notices  chan Notice
}

func New(records RecordStore, authn Authenticator, blobs BlobStore, cats CatFetcher, cfg *config.Config, l logging.Logger) *Controller {
	return &Controller{
		records:    records,
		auth:       authn,
		blobs:      blobs,
		cats:       cats,
		blobPrefix: cfg.BlobPrefix,
		logger:     l.With("module", "view"),
		state:      State{Board: puzzle.NewBoard()},
		notices:    make(chan Notice, NoticeBuffer),
	}
}

// Mount starts the session subscription and runs the initial cat fetch,
// record listing and image enumeration concurrently. Failures of the
// individual loads are noticed, not returned.
func (c *Controller) Mount(ctx context.Context) {
	c.subscribeOnce.Do(func() {
		unsubscribe := c.auth.Subscribe(c.onSession)
		c.mu.Lock()
		c.unsubscribe = unsubscribe
		c.mu.Unlock()
	})

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, _ = c.FetchRandomCat(gCtx)
		return nil
	})
	g.Go(func() error {
		_, _ = c.ListRecords(gCtx)
		return nil
	})
	g.Go(func() error {
		_ = c.loadImages(gCtx)
		return nil
	})
	_ = g.Wait()

	c.logger.Debug(ctx, "mounted")
}

// Notices delivers failures. The channel is closed by Close.
func (c *Controller) Notices() <-chan Notice {
	return c.notices
}

// Snapshot returns a deep copy of the state.
func (c *Controller) Snapshot() State {
	c.mu.RLock()
	defer c.mu.RUnlock()

	s := State{
		NewName: c.state.NewName,
		CatURL:  c.state.CatURL,
		Board:   c.state.Board.Clone(),
	}
	if c.state.Records != nil {
		s.Records = append([]models.Record(nil), c.state.Records...)
	}
	if c.state.Images != nil {
		s.Images = append([]models.UploadedImage(nil), c.state.Images...)
	}
	if c.state.Session != nil {
		sess := *c.state.Session
		s.Session = &sess
	}
	if c.state.SelectedFile != nil {
		f := *c.state.SelectedFile
		s.SelectedFile = &f
	}
	return s
}

// Close stops the session subscription and closes the notice channel.
func (c *Controller) Close() {
	c.closeOnce.Do(func() {
		c.mu.Lock()
		unsubscribe := c.unsubscribe
		c.unsubscribe = nil
		c.mu.Unlock()

		if unsubscribe != nil {
			unsubscribe()
		}

		c.noticeMu.Lock()
		c.closed = true
		close(c.notices)
		c.noticeMu.Unlock()
	})
}

func (c *Controller) onSession(s *models.Session) {
	c.mu.Lock()
	c.state.Session = s
	c.mu.Unlock()

	if s == nil {
		c.logger.Debug(context.Background(), "session cleared")
		return
	}
	c.logger.Debug(context.Background(), "session changed", "email", s.Email)
}

// fail logs err, publishes it and hands it back.
func (c *Controller) fail(ctx context.Context, op string, err error) error {
	c.logger.Error(ctx, op+" failed", "error", err)
	c.publish(Notice{Op: op, Err: err, At: now()})
	return err
}

// publish never blocks; a full buffer drops the notice.
func (c *Controller) publish(n Notice) {
	c.noticeMu.Lock()
	defer c.noticeMu.Unlock()

	if c.closed {
		return
	}

	select {
	case c.notices <- n:
	default:
		c.logger.Warn(context.Background(), "notice dropped", "op", n.Op)
	}
}
