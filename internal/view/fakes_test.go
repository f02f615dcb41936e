package view

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/catboard/internal/common"
	"github.com/dmitrijs2005/catboard/internal/models"
)

type fakeRecords struct {
	mu      sync.Mutex
	recs    []models.Record
	seq     int
	updates int

	listErr, insertErr, updateErr, deleteErr error
}

func (f *fakeRecords) List(ctx context.Context) ([]models.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]models.Record(nil), f.recs...), nil
}

func (f *fakeRecords) Insert(ctx context.Context, name string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return "", f.insertErr
	}
	f.seq++
	id := fmt.Sprintf("r%d", f.seq)
	f.recs = append(f.recs, models.Record{ID: id, Name: name})
	return id, nil
}

func (f *fakeRecords) UpdateName(ctx context.Context, id, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates++
	if f.updateErr != nil {
		return f.updateErr
	}
	for i := range f.recs {
		if f.recs[i].ID == id {
			f.recs[i].Name = name
			return nil
		}
	}
	return common.ErrorNotFound
}

func (f *fakeRecords) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i := range f.recs {
		if f.recs[i].ID == id {
			f.recs = append(f.recs[:i], f.recs[i+1:]...)
			break
		}
	}
	return nil
}

// fakeAuth behaves like the hosted service: listeners hear every change.
type fakeAuth struct {
	mu         sync.Mutex
	passwords  map[string]string
	current    *models.Session
	listeners  map[int]func(*models.Session)
	next       int
	subscribes int
	signOutErr error
}

func newFakeAuth() *fakeAuth {
	return &fakeAuth{
		passwords: map[string]string{},
		listeners: map[int]func(*models.Session){},
	}
}

func (f *fakeAuth) CreateAccount(ctx context.Context, email, password string) error {
	f.mu.Lock()
	if _, ok := f.passwords[email]; ok {
		f.mu.Unlock()
		return common.ErrAlreadyExists
	}
	f.passwords[email] = password
	f.mu.Unlock()
	f.set(&models.Session{Email: email, UserID: "u-" + email})
	return nil
}

func (f *fakeAuth) SignIn(ctx context.Context, email, password string) error {
	f.mu.Lock()
	pw, ok := f.passwords[email]
	f.mu.Unlock()
	if !ok || pw != password {
		return common.ErrorUnauthorized
	}
	f.set(&models.Session{Email: email, UserID: "u-" + email})
	return nil
}

func (f *fakeAuth) SignOut(ctx context.Context) error {
	if f.signOutErr != nil {
		return f.signOutErr
	}
	f.set(nil)
	return nil
}

func (f *fakeAuth) Subscribe(fn func(*models.Session)) func() {
	f.mu.Lock()
	id := f.next
	f.next++
	f.subscribes++
	f.listeners[id] = fn
	cur := f.current
	f.mu.Unlock()

	fn(cur)
	return func() {
		f.mu.Lock()
		delete(f.listeners, id)
		f.mu.Unlock()
	}
}

func (f *fakeAuth) set(s *models.Session) {
	f.mu.Lock()
	f.current = s
	ls := make([]func(*models.Session), 0, len(f.listeners))
	for _, l := range f.listeners {
		ls = append(ls, l)
	}
	f.mu.Unlock()

	for _, l := range ls {
		l(s)
	}
}

type fakeBlobs struct {
	mu      sync.Mutex
	keys    []string
	data    map[string][]byte
	types   map[string]string
	listErr error
	putErr  error
	urlErr  map[string]error
}

func newFakeBlobs(keys ...string) *fakeBlobs {
	return &fakeBlobs{
		keys:   keys,
		data:   map[string][]byte{},
		types:  map[string]string{},
		urlErr: map[string]error{},
	}
}

func (f *fakeBlobs) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.putErr != nil {
		return f.putErr
	}
	f.keys = append(f.keys, key)
	f.data[key] = data
	f.types[key] = contentType
	return nil
}

func (f *fakeBlobs) List(ctx context.Context, prefix string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]string(nil), f.keys...), nil
}

func (f *fakeBlobs) PublicURL(ctx context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.urlErr[key]; err != nil {
		return "", err
	}
	return "http://blobs/" + key, nil
}

type fakeCats struct {
	url   string
	err   error
	calls int
}

func (f *fakeCats) FetchRandom(ctx context.Context) (string, error) {
	f.calls++
	return f.url, f.err
}
