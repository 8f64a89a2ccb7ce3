package repositories

import (
	"context"
	"database/sql"

	intdb "dentalclinic/internal/db"
	"dentalclinic/internal/domain"
	"dentalclinic/internal/domain/models"
)

type ProcedureRepository struct {
	DB *sql.DB
}

// FetchAll lists the price table. Older schemas have no color column; the
// badge color is then derived from the category.
func (r ProcedureRepository) FetchAll(ctx context.Context) ([]models.Procedure, error) {
	db := dbOrDefault(r.DB)
	colorExpr := "''"
	if db != nil {
		hasColor, err := intdb.HasColumn(ctx, db, "procedures", "color")
		if err != nil {
			return nil, domain.UnavailableError{Source: "procedures", Err: err}
		}
		if hasColor {
			colorExpr = "COALESCE(color,'')"
		}
	}

	return fetchTable(ctx, db, "procedures", `
		SELECT id,
			COALESCE(code,''),
			COALESCE(name,''),
			COALESCE(category,''),
			COALESCE(price,0),
			COALESCE(duration_minutes,0),
			COALESCE(active,0),
			`+colorExpr+`
		FROM procedures
		ORDER BY code
	`, func(row rowScanner) (models.Procedure, error) {
		var p models.Procedure
		if err := row.Scan(&p.ID, &p.Code, &p.Name, &p.Category, &p.Price, &p.DurationMinutes, &p.Active, &p.Color); err != nil {
			return p, err
		}
		if p.Color == "" {
			p.Color = domain.CategoryColor(p.Category)
		}
		return p, nil
	})
}
