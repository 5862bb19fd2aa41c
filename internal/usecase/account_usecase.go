package usecase

import (
	"context"

	"store/internal/domain/entity"
)

// AccountInput carries the writable account fields.
type AccountInput struct {
	Nickname  string
	FirstName string
	LastName  string
	Email     string
}

// AccountUsecase defines the interface for account management use cases
type AccountUsecase interface {
	GetAccounts(ctx context.Context) ([]*entity.Account, error)
	GetAccount(ctx context.Context, id int64) (*entity.Account, error)
	GetAccountByNickname(ctx context.Context, nickname string) (*entity.Account, error)
	CreateAccount(ctx context.Context, input *AccountInput) (*entity.Account, error)

	// UpdateAccount overwrites an existing account. It fails with not found when id is unknown.
	UpdateAccount(ctx context.Context, id int64, input *AccountInput) (*entity.Account, error)

	// DeleteAccount removes the account together with its orders and detaches its products.
	DeleteAccount(ctx context.Context, id int64) error
}
