package repositories

import (
	"context"
	"database/sql"

	"dentalclinic/internal/domain/models"
)

type SupplierRepository struct {
	DB *sql.DB
}

func (r SupplierRepository) FetchAll(ctx context.Context) ([]models.Supplier, error) {
	return fetchTable(ctx, dbOrDefault(r.DB), "suppliers", `
		SELECT id,
			COALESCE(name,''),
			COALESCE(cnpj,''),
			COALESCE(category,''),
			COALESCE(city,''),
			COALESCE(phone,''),
			COALESCE(priority,''),
			COALESCE(active,0)
		FROM suppliers
		ORDER BY name
	`, func(row rowScanner) (models.Supplier, error) {
		var s models.Supplier
		err := row.Scan(&s.ID, &s.Name, &s.CNPJ, &s.Category, &s.City, &s.Phone, &s.Priority, &s.Active)
		return s, err
	})
}
