// Package docstore exposes one collection of the document database to the
// view: list-all, insert with generated id, partial update by id and delete
// by id.
package docstore

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"

	"github.com/dmitrijs2005/catboard/internal/common"
	"github.com/dmitrijs2005/catboard/internal/logging"
	"github.com/dmitrijs2005/catboard/internal/models"
	"github.com/dmitrijs2005/catboard/internal/repositories/records"
	"github.com/dmitrijs2005/catboard/internal/repositories/repomanager"
)

var collectionName = regexp.MustCompile(`^[a-z_]+$`)

// Store is bound to a single collection.
type Store struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	collection  string
	logger      logging.Logger
}

// NewStore validates the collection name and binds a Store to it.
func NewStore(db *sql.DB, m repomanager.RepositoryManager, collection string, l logging.Logger) (*Store, error) {
	if !collectionName.MatchString(collection) {
		return nil, fmt.Errorf("%w: %q", common.ErrInvalidCollection, collection)
	}
	return &Store{
		db:          db,
		repomanager: m,
		collection:  collection,
		logger:      l.With("module", "docstore", "collection", collection),
	}, nil
}

func (s *Store) Collection() string {
	return s.collection
}

func (s *Store) repo() records.Repository {
	return s.repomanager.Records(s.db)
}

// List returns every record of the collection in store iteration order.
func (s *Store) List(ctx context.Context) ([]models.Record, error) {
	items, err := s.repo().List(ctx, s.collection)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.collection, err)
	}

	result := make([]models.Record, 0, len(items))
	for _, item := range items {
		result = append(result, *item)
	}
	return result, nil
}

// Insert stores a new record and returns its generated id.
func (s *Store) Insert(ctx context.Context, name string) (string, error) {
	rec, err := s.repo().Insert(ctx, s.collection, name)
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w", s.collection, err)
	}
	s.logger.Debug(ctx, "record inserted", "id", rec.ID)
	return rec.ID, nil
}

// UpdateName merges a new name into the record with the given id.
func (s *Store) UpdateName(ctx context.Context, id string, name string) error {
	if err := s.repo().Update(ctx, s.collection, id, records.Fields{Name: &name}); err != nil {
		return fmt.Errorf("update %s/%s: %w", s.collection, id, err)
	}
	s.logger.Debug(ctx, "record updated", "id", id)
	return nil
}

// Delete removes the record with the given id; a missing id is not an error.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.repo().Delete(ctx, s.collection, id); err != nil {
		return fmt.Errorf("delete %s/%s: %w", s.collection, id, err)
	}
	s.logger.Debug(ctx, "record deleted", "id", id)
	return nil
}
