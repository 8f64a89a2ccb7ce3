package models

type AccessGroup struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Members     int    `json:"members"`
	Active      bool   `json:"active"`
	CreatedAt   string `json:"created_at"`
}
