package entity

// Category groups products by name. Products is only populated on single-category reads.
type Category struct {
	ID       int64      `json:"id"`
	Name     string     `json:"name"`
	Products []*Product `json:"products,omitempty"`
}
