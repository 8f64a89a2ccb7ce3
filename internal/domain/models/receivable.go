package models

// Receivable is an amount a patient owes the clinic.
type Receivable struct {
	ID            int64   `json:"id"`
	Code          string  `json:"code"`
	PatientName   string  `json:"patient_name"`
	Description   string  `json:"description"`
	Amount        float64 `json:"amount"`
	DueDate       string  `json:"due_date"`
	Status        string  `json:"status"`
	PaymentMethod string  `json:"payment_method"`
}
