package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// The frontend expects totalPrice as a JSON number.
	decimal.MarshalJSONWithoutQuotes = true
}

// Order belongs to exactly one account and references at least one product.
type Order struct {
	ID         int64           `json:"id"`
	OrderDate  time.Time       `json:"orderDate"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
	AccountID  int64           `json:"accountId"`
	Products   []*Product      `json:"products"`
}

// ProductIDs returns the ids of the products attached to the order.
func (o *Order) ProductIDs() []int64 {
	ids := make([]int64, 0, len(o.Products))
	for _, product := range o.Products {
		ids = append(ids, product.ID)
	}

	return ids
}

// SumPrices adds up the prices of the given products.
func SumPrices(products []*Product) decimal.Decimal {
	total := decimal.Zero
	for _, product := range products {
		total = total.Add(decimal.NewFromInt(product.Price))
	}

	return total
}
