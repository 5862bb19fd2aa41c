package model

import "time"

// ProductModel is the GORM-specific struct for the 'products' table.
// AccountID is nullable so that deleting an account only clears the reference.
type ProductModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"type:varchar(255);not null"`
	Price     int64  `gorm:"not null;check:price > 0"`
	Category  string `gorm:"type:varchar(100);not null;index"`
	AccountID *int64 `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ProductModel) TableName() string {
	return "products"
}
