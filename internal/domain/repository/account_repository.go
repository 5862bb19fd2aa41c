// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"store/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for account persistence.
var (
	// ErrAccountNotFound is returned when an account is not found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrDuplicateAccount is returned when the nickname or email is already taken.
	ErrDuplicateAccount = errors.New("account already exists")
)

// AccountRepository defines the interface for account-related database operations.
type AccountRepository interface {
	// FindAll retrieves every account ordered by id.
	FindAll(ctx context.Context) ([]*entity.Account, error)

	// FindByID retrieves an account by its id.
	FindByID(ctx context.Context, id int64) (*entity.Account, error)

	// FindByNickname retrieves an account by its unique nickname.
	FindByNickname(ctx context.Context, nickname string) (*entity.Account, error)

	// Create persists a new account and sets its generated id.
	Create(ctx context.Context, account *entity.Account) error

	// Update overwrites the mutable fields of an existing account.
	Update(ctx context.Context, account *entity.Account) error

	// Delete removes an account by id.
	Delete(ctx context.Context, id int64) error
}
