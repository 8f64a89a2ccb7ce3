package repositories

import (
	"context"
	"database/sql"

	"dentalclinic/internal/domain/models"
)

type PatientAccessRepository struct {
	DB *sql.DB
}

// FetchAll lists every patient access, newest first.
func (r PatientAccessRepository) FetchAll(ctx context.Context) ([]models.PatientAccess, error) {
	return fetchTable(ctx, dbOrDefault(r.DB), "patient_accesses", `
		SELECT id,
			COALESCE(patient_name,''),
			COALESCE(document,''),
			COALESCE(email,''),
			COALESCE(access_group,''),
			COALESCE(risk_level,''),
			COALESCE(active,0),
			COALESCE(DATE_FORMAT(last_access,'%Y-%m-%d %H:%i'),'')
		FROM patient_accesses
		ORDER BY id DESC
	`, func(row rowScanner) (models.PatientAccess, error) {
		var p models.PatientAccess
		err := row.Scan(&p.ID, &p.PatientName, &p.Document, &p.Email, &p.AccessGroup, &p.RiskLevel, &p.Active, &p.LastAccess)
		return p, err
	})
}
