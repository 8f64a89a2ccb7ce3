package repositories

import (
	"context"
	"database/sql"

	"dentalclinic/internal/domain/models"
)

type ReceivableRepository struct {
	DB *sql.DB
}

func (r ReceivableRepository) FetchAll(ctx context.Context) ([]models.Receivable, error) {
	return fetchTable(ctx, dbOrDefault(r.DB), "receivables", `
		SELECT id,
			COALESCE(code,''),
			COALESCE(patient_name,''),
			COALESCE(description,''),
			COALESCE(amount,0),
			COALESCE(DATE_FORMAT(due_date,'%Y-%m-%d'),''),
			COALESCE(status,''),
			COALESCE(payment_method,'')
		FROM receivables
		ORDER BY due_date ASC, id ASC
	`, func(row rowScanner) (models.Receivable, error) {
		var rec models.Receivable
		err := row.Scan(&rec.ID, &rec.Code, &rec.PatientName, &rec.Description, &rec.Amount, &rec.DueDate, &rec.Status, &rec.PaymentMethod)
		return rec, err
	})
}
