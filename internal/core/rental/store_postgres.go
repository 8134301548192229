// Copyright (c) 2026 OWH Studio. All rights reserved.

package rental

import (
	stdctx "context"
	"encoding/json"
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

func (repository *PostgresRepository) InsertRequest(context stdctx.Context, request *Request) error {
	items, err := json.Marshal(request.Items)
	if err != nil {
		return dberr.Wrap(err, "encode_rental_items")
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`,
		schema.RentalRequests.Table,
		schema.RentalRequests.ID,
		schema.RentalRequests.FullName,
		schema.RentalRequests.Email,
		schema.RentalRequests.Phone,
		schema.RentalRequests.StartDate,
		schema.RentalRequests.EndDate,
		schema.RentalRequests.EquipmentItems,
		schema.RentalRequests.Message,
		schema.RentalRequests.TotalAmount,
		schema.RentalRequests.Status,
		schema.RentalRequests.CreatedAt,
	)

	_, err = repository.db.Exec(context, query,
		request.ID,
		request.FullName,
		request.Email,
		request.Phone,
		request.StartDate,
		request.EndDate,
		items,
		request.Message,
		request.TotalAmount,
		request.Status,
		request.CreatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "insert_rental_request")
	}

	return nil
}

func (repository *PostgresRepository) ListRequests(context stdctx.Context) ([]Request, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s DESC;
	`,
		schema.RentalRequests.ID,
		schema.RentalRequests.FullName,
		schema.RentalRequests.Email,
		schema.RentalRequests.Phone,
		schema.RentalRequests.StartDate,
		schema.RentalRequests.EndDate,
		schema.RentalRequests.EquipmentItems,
		schema.RentalRequests.Message,
		schema.RentalRequests.TotalAmount,
		schema.RentalRequests.Status,
		schema.RentalRequests.CreatedAt,
		schema.RentalRequests.Table,
		schema.RentalRequests.CreatedAt,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_rental_requests")
	}
	defer rows.Close()

	var requests []Request
	for rows.Next() {
		var request Request
		var phone, message *string
		var items []byte

		if err := rows.Scan(
			&request.ID,
			&request.FullName,
			&request.Email,
			&phone,
			&request.StartDate,
			&request.EndDate,
			&items,
			&message,
			&request.TotalAmount,
			&request.Status,
			&request.CreatedAt,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_rental_request")
		}

		request.Phone = pointer.Val(phone)
		request.Message = pointer.Val(message)
		if len(items) > 0 {
			if err := json.Unmarshal(items, &request.Items); err != nil {
				return nil, dberr.Wrap(err, "decode_rental_items")
			}
		}

		requests = append(requests, request)
	}

	return requests, nil
}

func (repository *PostgresRepository) UpdateRequestStatus(context stdctx.Context, id, status string) error {
	query := fmt.Sprintf(`
		UPDATE %s SET %s = $1 WHERE %s = $2;
	`,
		schema.RentalRequests.Table,
		schema.RentalRequests.Status,
		schema.RentalRequests.ID,
	)

	tag, err := repository.db.Exec(context, query, status, id)
	if err != nil {
		return dberr.Wrap(err, "update_rental_status")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}
