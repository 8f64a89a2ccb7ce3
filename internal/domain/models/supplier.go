package models

type Supplier struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	CNPJ     string `json:"cnpj"`
	Category string `json:"category"`
	City     string `json:"city"`
	Phone    string `json:"phone"`
	Priority string `json:"priority"`
	Active   bool   `json:"active"`
}
