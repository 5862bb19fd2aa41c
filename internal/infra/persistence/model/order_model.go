package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
// Product links live in the 'order_product' join table.
type OrderModel struct {
	ID         int64           `gorm:"primaryKey;autoIncrement"`
	OrderDate  time.Time       `gorm:"not null"`
	TotalPrice decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0;check:total_price >= 0"`
	AccountID  int64           `gorm:"not null;index"`
	Products   []ProductModel  `gorm:"many2many:order_product;joinForeignKey:OrderID;joinReferences:ProductID"`
}

func (OrderModel) TableName() string {
	return "orders"
}

// OrderProductModel is a single row of the 'order_product' join table.
type OrderProductModel struct {
	OrderID   int64 `gorm:"primaryKey"`
	ProductID int64 `gorm:"primaryKey;index"`
}

func (OrderProductModel) TableName() string {
	return "order_product"
}

// All lists every model in migration order.
func All() []any {
	return []any{
		&AccountModel{},
		&ProductModel{},
		&CategoryModel{},
		&OrderModel{},
		&OrderProductModel{},
	}
}
