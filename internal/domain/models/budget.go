package models

// Budget is a treatment quote given to a patient.
type Budget struct {
	ID          int64   `json:"id"`
	Code        string  `json:"code"`
	PatientName string  `json:"patient_name"`
	Dentist     string  `json:"dentist"`
	Total       float64 `json:"total"`
	Status      string  `json:"status"`
	Priority    string  `json:"priority"`
	CreatedAt   string  `json:"created_at"`
	ValidUntil  string  `json:"valid_until"`
}
