package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Postgres SQLSTATE codes that are not translated by the gorm driver.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	return strings.Contains(err.Error(), pgUniqueViolation)
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	return strings.Contains(err.Error(), pgForeignKeyViolation)
}

// accountOrdersConstraint is the foreign key migrations put on orders.account_id.
const accountOrdersConstraint = "fk_accounts_orders"

// isUnknownAccountViolation reports a write that referenced a missing account.
func isUnknownAccountViolation(err error) bool {
	return isForeignKeyConstraintViolation(err) && strings.Contains(err.Error(), accountOrdersConstraint)
}

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated)
}
