// Package records stores the documents of a named collection.
package records

import (
	"context"
	"time"

	"github.com/dmitrijs2005/catboard/internal/models"
	"github.com/google/uuid"
)

// Fields is a partial update: nil fields are left as stored.
type Fields struct {
	Name *string
}

// Repository is the document-store contract the view relies on.
//
// Insert assigns ID and CreatedAt. Update on a missing id returns
// common.ErrorNotFound; Delete on a missing id is not an error.
type Repository interface {
	List(ctx context.Context, collection string) ([]*models.Record, error)
	Insert(ctx context.Context, collection string, name string) (*models.Record, error)
	Update(ctx context.Context, collection string, id string, fields Fields) error
	Delete(ctx context.Context, collection string, id string) error
}

// seams for tests
var (
	newID = uuid.NewString
	now   = func() time.Time { return time.Now().UTC() }
)
