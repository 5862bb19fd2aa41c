package entity

// Product is a sellable item. AccountID is a weak reference and is cleared
// when the owning account is deleted.
type Product struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Category  string `json:"category"`
	AccountID *int64 `json:"accountId,omitempty"`
}

// Clone returns a copy that shares no memory with p.
func (p *Product) Clone() *Product {
	if p == nil {
		return nil
	}

	cloned := *p
	if p.AccountID != nil {
		accountID := *p.AccountID
		cloned.AccountID = &accountID
	}

	return &cloned
}
