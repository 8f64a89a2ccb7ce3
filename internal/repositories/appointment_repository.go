package repositories

import (
	"context"
	"database/sql"

	"dentalclinic/internal/domain/models"
)

type AppointmentRepository struct {
	DB *sql.DB
}

func (r AppointmentRepository) FetchAll(ctx context.Context) ([]models.Appointment, error) {
	return fetchTable(ctx, dbOrDefault(r.DB), "appointments", `
		SELECT id,
			COALESCE(patient_name,''),
			COALESCE(dentist,''),
			COALESCE(procedure_name,''),
			COALESCE(DATE_FORMAT(date,'%Y-%m-%d'),''),
			COALESCE(TIME_FORMAT(time,'%H:%i'),''),
			COALESCE(room,''),
			COALESCE(status,'')
		FROM appointments
		ORDER BY date ASC, time ASC
	`, func(row rowScanner) (models.Appointment, error) {
		var a models.Appointment
		err := row.Scan(&a.ID, &a.PatientName, &a.Dentist, &a.Procedure, &a.Date, &a.Time, &a.Room, &a.Status)
		return a, err
	})
}
