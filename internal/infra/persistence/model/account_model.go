package model

import "time"

// AccountModel is the GORM-specific struct for the 'accounts' table.
// Orders is only declared so that migrations add fk_accounts_orders to orders.account_id.
type AccountModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Nickname  string `gorm:"type:varchar(50);not null;uniqueIndex"`
	FirstName string `gorm:"type:varchar(100);not null"`
	LastName  string `gorm:"type:varchar(100);not null"`
	Email     string `gorm:"type:varchar(255);not null;uniqueIndex"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Orders    []OrderModel `gorm:"foreignKey:AccountID"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
