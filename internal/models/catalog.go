package models

// Service represents an entry of the service catalog
type Service struct {
	ID    int64    `json:"id"`
	Name  string   `json:"nome"`
	Price *float64 `json:"preco,omitempty"`
}
