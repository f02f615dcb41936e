// Package auth implements email/password accounts and the current-session
// subscription the view observes.
//
// Accounts live in the document database (accounts table); passwords are
// argon2id hashed; a signed-in session carries an HS256 token. Sessions are
// held in memory only, like a client SDK's auth state.
package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/catboard/internal/common"
	"github.com/dmitrijs2005/catboard/internal/config"
	"github.com/dmitrijs2005/catboard/internal/cryptox"
	"github.com/dmitrijs2005/catboard/internal/dbx"
	"github.com/dmitrijs2005/catboard/internal/logging"
	"github.com/dmitrijs2005/catboard/internal/models"
	"github.com/dmitrijs2005/catboard/internal/repositories/accounts"
	"github.com/dmitrijs2005/catboard/internal/repositories/repomanager"
	"github.com/google/uuid"
)

// MinPasswordLength matches the hosted auth services' minimum.
const MinPasswordLength = 6

// Listener receives the current session; nil means signed out.
type Listener = func(*models.Session)

// Service owns the session state and notifies listeners on every change.
type Service struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	secretKey   []byte
	validity    time.Duration
	logger      logging.Logger

	mu        sync.Mutex
	current   *models.Session
	expiry    *time.Timer
	listeners map[int]Listener
	nextID    int
}

// afterFunc arms the session expiry timer.
var afterFunc = time.AfterFunc

func NewService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, l logging.Logger) *Service {
	return &Service{
		db:          db,
		repomanager: m,
		secretKey:   []byte(cfg.SecretKey),
		validity:    cfg.SessionValidityDuration,
		logger:      l.With("module", "auth"),
		listeners:   make(map[int]Listener),
	}
}

func (s *Service) repo() accounts.Repository {
	return s.repomanager.Accounts(s.db)
}

// CreateAccount registers email/password and signs the new account in.
func (s *Service) CreateAccount(ctx context.Context, email, password string) error {
	email, err := validateCredentials(email, password)
	if err != nil {
		return err
	}

	salt, err := cryptox.NewSalt()
	if err != nil {
		return fmt.Errorf("generate salt: %w", err)
	}

	account := &models.Account{
		ID:           uuid.NewString(),
		Email:        email,
		Salt:         salt,
		PasswordHash: cryptox.HashPassword([]byte(password), salt),
		CreatedAt:    time.Now().UTC(),
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Accounts(tx)

		_, err := repo.GetByEmail(ctx, email)
		switch {
		case err == nil:
			return common.ErrAlreadyExists
		case !errors.Is(err, common.ErrorNotFound):
			return err
		}

		_, err = repo.Create(ctx, account)
		return err
	})
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return err
		}
		return fmt.Errorf("create account: %w", err)
	}

	s.logger.Info(ctx, "account created", "email", email)
	return s.startSession(account)
}

// SignIn checks the password and replaces the current session.
func (s *Service) SignIn(ctx context.Context, email, password string) error {
	email, err := validateCredentials(email, password)
	if err != nil {
		return err
	}

	account, err := s.repo().GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorUnauthorized
		}
		return fmt.Errorf("lookup account: %w", err)
	}

	if !cryptox.VerifyPassword([]byte(password), account.Salt, account.PasswordHash) {
		return common.ErrorUnauthorized
	}

	s.logger.Info(ctx, "signed in", "email", email)
	return s.startSession(account)
}

// SignOut clears the session. Signing out while signed out is a no-op that
// still succeeds.
func (s *Service) SignOut(ctx context.Context) error {
	s.mu.Lock()
	wasSignedIn := s.current != nil
	s.current = nil
	s.stopExpiry()
	listeners := s.snapshotListeners()
	s.mu.Unlock()

	if wasSignedIn {
		s.logger.Info(ctx, "signed out")
		notify(listeners, nil)
	}
	return nil
}

// Current returns a copy of the live session, or nil. A session whose token
// has expired is dropped and listeners are told; the expiry timer normally
// does this first.
func (s *Service) Current() *models.Session {
	s.mu.Lock()
	cur := s.current
	if cur == nil {
		s.mu.Unlock()
		return nil
	}

	if _, err := ParseToken(cur.Token, s.secretKey); err != nil {
		s.current = nil
		s.stopExpiry()
		listeners := s.snapshotListeners()
		s.mu.Unlock()
		s.logger.Info(context.Background(), "session lapsed", "email", cur.Email, "reason", err.Error())
		notify(listeners, nil)
		return nil
	}
	s.mu.Unlock()

	c := *cur
	return &c
}

// Subscribe registers fn and immediately calls it with the current session.
// The returned func removes the listener.
func (s *Service) Subscribe(fn Listener) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	fn(s.Current())

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

func (s *Service) startSession(account *models.Account) error {
	token, expires, err := GenerateToken(account.ID, account.Email, s.secretKey, s.validity)
	if err != nil {
		return fmt.Errorf("sign token: %w", err)
	}

	session := &models.Session{UserID: account.ID, Email: account.Email, Token: token, ExpiresAt: expires}

	s.mu.Lock()
	s.stopExpiry()
	s.current = session
	listeners := s.snapshotListeners()
	s.mu.Unlock()

	notify(listeners, session)

	// Armed after the sign-in notification so a lapse is never heard first.
	s.mu.Lock()
	if s.current == session {
		s.expiry = afterFunc(time.Until(expires), func() { s.lapse(session) })
	}
	s.mu.Unlock()
	return nil
}

// lapse clears session if it is still the current one.
func (s *Service) lapse(session *models.Session) {
	s.mu.Lock()
	if s.current != session {
		s.mu.Unlock()
		return
	}
	s.current = nil
	s.expiry = nil
	listeners := s.snapshotListeners()
	s.mu.Unlock()

	s.logger.Info(context.Background(), "session expired", "email", session.Email)
	notify(listeners, nil)
}

// stopExpiry must be called with mu held.
func (s *Service) stopExpiry() {
	if s.expiry != nil {
		s.expiry.Stop()
		s.expiry = nil
	}
}

// snapshotListeners must be called with mu held.
func (s *Service) snapshotListeners() []Listener {
	out := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		out = append(out, l)
	}
	return out
}

func notify(listeners []Listener, session *models.Session) {
	for _, l := range listeners {
		if session == nil {
			l(nil)
			continue
		}
		c := *session
		l(&c)
	}
}

func validateCredentials(email, password string) (string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", fmt.Errorf("%w: email", common.ErrInvalidCredentialsFormat)
	}
	if len([]rune(password)) < MinPasswordLength {
		return "", fmt.Errorf("%w: password shorter than %d", common.ErrInvalidCredentialsFormat, MinPasswordLength)
	}
	return email, nil
}
