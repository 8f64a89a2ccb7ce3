package models

// Procedure is an entry of the clinic's price table. Color is derived from
// Category when records are loaded.
type Procedure struct {
	ID              int64   `json:"id"`
	Code            string  `json:"code"`
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration_minutes"`
	Active          bool    `json:"active"`
	Color           string  `json:"color"`
}
