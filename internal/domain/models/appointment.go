package models

type Appointment struct {
	ID          int64  `json:"id"`
	PatientName string `json:"patient_name"`
	Dentist     string `json:"dentist"`
	Procedure   string `json:"procedure"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Room        string `json:"room"`
	Status      string `json:"status"`
}
