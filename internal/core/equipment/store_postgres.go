// Copyright (c) 2026 OWH Studio. All rights reserved.

package equipment

import (
	stdctx "context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/owhstudio/owh-api/internal/platform/database/schema"
	"github.com/owhstudio/owh-api/internal/platform/dberr"
	"github.com/owhstudio/owh-api/pkg/pointer"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListEquipment(context stdctx.Context) ([]Equipment, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s ASC, %s ASC;
	`,
		schema.RentalEquipment.ID,
		schema.RentalEquipment.Name,
		schema.RentalEquipment.Slug,
		schema.RentalEquipment.Category,
		schema.RentalEquipment.Description,
		schema.RentalEquipment.DailyRate,
		schema.RentalEquipment.ImageURL,
		schema.RentalEquipment.IsAvailable,
		schema.RentalEquipment.Table,
		schema.RentalEquipment.Category,
		schema.RentalEquipment.Name,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_equipment")
	}
	defer rows.Close()

	var items []Equipment
	for rows.Next() {
		var item Equipment
		var description, imageURL *string

		if err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Slug,
			&item.Category,
			&description,
			&item.DailyRate,
			&imageURL,
			&item.IsAvailable,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_equipment")
		}

		item.Description = pointer.Val(description)
		item.ImageURL = pointer.Val(imageURL)

		items = append(items, item)
	}

	return items, nil
}
