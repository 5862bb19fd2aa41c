package entity

// Account is a customer of the store. Nickname and email are unique.
// Orders is filled on reads and is never persisted through the account.
type Account struct {
	ID        int64    `json:"id"`
	Nickname  string   `json:"nickname"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Email     string   `json:"email"`
	Orders    []*Order `json:"orders"`
}
