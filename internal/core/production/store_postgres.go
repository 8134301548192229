// Copyright (c) 2026 OWH Studio. All rights reserved.

package production

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

func (repository *PostgresRepository) ListProductions(context stdctx.Context) ([]Production, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s DESC, %s ASC;
	`,
		schema.Productions.ID,
		schema.Productions.Title,
		schema.Productions.Slug,
		schema.Productions.Description,
		schema.Productions.Category,
		schema.Productions.Client,
		schema.Productions.Year,
		schema.Productions.GifPreviewURL,
		schema.Productions.VideoURL,
		schema.Productions.Table,
		schema.Productions.Year,
		schema.Productions.Title,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_productions")
	}
	defer rows.Close()

	var productions []Production
	for rows.Next() {
		var item Production
		var description, client, previewURL, videoURL *string
		var year *int

		if err := rows.Scan(
			&item.ID,
			&item.Title,
			&item.Slug,
			&description,
			&item.Category,
			&client,
			&year,
			&previewURL,
			&videoURL,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_production")
		}

		item.Description = pointer.Val(description)
		item.Client = pointer.Val(client)
		item.Year = pointer.Val(year)
		item.PreviewMediaURL = pointer.Val(previewURL)
		item.VideoURL = pointer.Val(videoURL)

		productions = append(productions, item)
	}

	return productions, nil
}
