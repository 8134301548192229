// Copyright (c) 2026 OWH Studio. All rights reserved.

package contact

import (
	stdctx "context"
	"log/slog"
	"time"

	"github.com/owhstudio/owh-api/internal/platform/validate"
	"github.com/owhstudio/owh-api/pkg/uuidv7"
)

// SubmitInput is the public contact-form payload.
type SubmitInput struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Subject  string `json:"subject"`
	Message  string `json:"message"`
}

type Service struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger, now: time.Now}
}

// Submit validates and stores a contact-form message. Phone and subject are
// optional; everything else is required.
func (service *Service) Submit(context stdctx.Context, input SubmitInput) (*Submission, error) {
	validator := &validate.Validator{}
	validator.
		Required("full_name", input.FullName).
		MaxLen("full_name", input.FullName, 200).
		Required("email", input.Email).
		Required("message", input.Message).
		MaxLen("message", input.Message, 5000)
	if input.Email != "" {
		validator.Email("email", input.Email)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	submission := &Submission{
		ID:        uuidv7.New(),
		FullName:  input.FullName,
		Email:     input.Email,
		Phone:     input.Phone,
		Subject:   input.Subject,
		Message:   input.Message,
		Status:    StatusNew,
		CreatedAt: service.now().UTC(),
	}

	if err := service.repo.InsertSubmission(context, submission); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "contact_submission_stored",
		slog.String("id", submission.ID),
	)

	return submission, nil
}

// List returns every stored submission, newest first.
func (service *Service) List(context stdctx.Context) ([]Submission, error) {
	return service.repo.ListSubmissions(context)
}
