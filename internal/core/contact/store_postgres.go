// Copyright (c) 2026 OWH Studio. All rights reserved.

package contact

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

func (repository *PostgresRepository) InsertSubmission(context stdctx.Context, submission *Submission) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`,
		schema.ContactSubmissions.Table,
		schema.ContactSubmissions.ID,
		schema.ContactSubmissions.FullName,
		schema.ContactSubmissions.Email,
		schema.ContactSubmissions.Phone,
		schema.ContactSubmissions.Subject,
		schema.ContactSubmissions.Message,
		schema.ContactSubmissions.Status,
		schema.ContactSubmissions.CreatedAt,
	)

	_, err := repository.db.Exec(context, query,
		submission.ID,
		submission.FullName,
		submission.Email,
		submission.Phone,
		submission.Subject,
		submission.Message,
		submission.Status,
		submission.CreatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "insert_contact_submission")
	}

	return nil
}

func (repository *PostgresRepository) ListSubmissions(context stdctx.Context) ([]Submission, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s DESC;
	`,
		schema.ContactSubmissions.ID,
		schema.ContactSubmissions.FullName,
		schema.ContactSubmissions.Email,
		schema.ContactSubmissions.Phone,
		schema.ContactSubmissions.Subject,
		schema.ContactSubmissions.Message,
		schema.ContactSubmissions.Status,
		schema.ContactSubmissions.CreatedAt,
		schema.ContactSubmissions.Table,
		schema.ContactSubmissions.CreatedAt,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_contact_submissions")
	}
	defer rows.Close()

	var submissions []Submission
	for rows.Next() {
		var submission Submission
		var phone, subject *string

		if err := rows.Scan(
			&submission.ID,
			&submission.FullName,
			&submission.Email,
			&phone,
			&subject,
			&submission.Message,
			&submission.Status,
			&submission.CreatedAt,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_contact_submission")
		}

		submission.Phone = pointer.Val(phone)
		submission.Subject = pointer.Val(subject)

		submissions = append(submissions, submission)
	}

	return submissions, nil
}
