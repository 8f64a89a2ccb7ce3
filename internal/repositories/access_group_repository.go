package repositories

import (
	"context"
	"database/sql"

	"dentalclinic/internal/domain/models"
)

type AccessGroupRepository struct {
	DB *sql.DB
}

func (r AccessGroupRepository) FetchAll(ctx context.Context) ([]models.AccessGroup, error) {
	return fetchTable(ctx, dbOrDefault(r.DB), "access_groups", `
		SELECT g.id,
			COALESCE(g.name,''),
			COALESCE(g.description,''),
			(SELECT COUNT(*) FROM patient_accesses a WHERE a.access_group = g.name),
			COALESCE(g.active,0),
			COALESCE(DATE_FORMAT(g.created_at,'%Y-%m-%d'),'')
		FROM access_groups g
		ORDER BY g.name
	`, func(row rowScanner) (models.AccessGroup, error) {
		var g models.AccessGroup
		err := row.Scan(&g.ID, &g.Name, &g.Description, &g.Members, &g.Active, &g.CreatedAt)
		return g, err
	})
}
