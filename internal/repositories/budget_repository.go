package repositories

import (
	"context"
	"database/sql"

	"dentalclinic/internal/domain/models"
)

type BudgetRepository struct {
	DB *sql.DB
}

func (r BudgetRepository) FetchAll(ctx context.Context) ([]models.Budget, error) {
	return fetchTable(ctx, dbOrDefault(r.DB), "budgets", `
		SELECT id,
			COALESCE(code,''),
			COALESCE(patient_name,''),
			COALESCE(dentist,''),
			COALESCE(total,0),
			COALESCE(status,''),
			COALESCE(priority,''),
			COALESCE(DATE_FORMAT(created_at,'%Y-%m-%d'),''),
			COALESCE(DATE_FORMAT(valid_until,'%Y-%m-%d'),'')
		FROM budgets
		ORDER BY created_at DESC, id DESC
	`, func(row rowScanner) (models.Budget, error) {
		var b models.Budget
		err := row.Scan(&b.ID, &b.Code, &b.PatientName, &b.Dentist, &b.Total, &b.Status, &b.Priority, &b.CreatedAt, &b.ValidUntil)
		return b, err
	})
}
