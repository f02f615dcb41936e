// Package accounts persists email/password identities for the auth service.
package accounts

import (
	"context"

	"github.com/dmitrijs2005/catboard/internal/models"
)

// Repository stores accounts. Create returns common.ErrAlreadyExists for a
// duplicate email; GetByEmail returns common.ErrorNotFound when absent.
type Repository interface {
	Create(ctx context.Context, account *models.Account) (*models.Account, error)
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
}
