package models

// PatientAccess is a patient's portal account as listed on the accesses screen.
type PatientAccess struct {
	ID          int64  `json:"id"`
	PatientName string `json:"patient_name"`
	Document    string `json:"document"`
	Email       string `json:"email"`
	AccessGroup string `json:"access_group"`
	RiskLevel   string `json:"risk_level"`
	Active      bool   `json:"active"`
	LastAccess  string `json:"last_access"`
}
