package postgres

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintViolationHelpers(t *testing.T) {
	wrappedDup := fmt.Errorf("insert account: %w", gorm.ErrDuplicatedKey)
	rawDup := fmt.Errorf(`ERROR: duplicate key value violates unique constraint "idx_accounts_email" (SQLSTATE 23505)`)
	rawFK := fmt.Errorf(`ERROR: insert or update on table "order_product" violates foreign key constraint (SQLSTATE 23503)`)

	assert.True(t, isUniqueConstraintViolation(wrappedDup))
	assert.True(t, isUniqueConstraintViolation(rawDup))
	assert.False(t, isUniqueConstraintViolation(rawFK))

	assert.True(t, isForeignKeyConstraintViolation(rawFK))
	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))
	assert.False(t, isForeignKeyConstraintViolation(rawDup))

	rawAccountFK := fmt.Errorf(`ERROR: insert or update on table "orders" violates foreign key constraint "fk_accounts_orders" (SQLSTATE 23503)`)
	assert.True(t, isUnknownAccountViolation(rawAccountFK))
	assert.False(t, isUnknownAccountViolation(rawFK))
	assert.False(t, isUnknownAccountViolation(rawDup))

	assert.True(t, isCheckConstraintViolation(gorm.ErrCheckConstraintViolated))
	assert.False(t, isCheckConstraintViolation(rawDup))
}
