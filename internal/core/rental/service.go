// Copyright (c) 2026 OWH Studio. All rights reserved.

package rental

import (
	stdctx "context"
	"log/slog"
	"time"

	"github.com/owhstudio/owh-api/internal/platform/validate"
	"github.com/owhstudio/owh-api/pkg/uuidv7"
)

// EquipmentInvalidator lets a submission drop the cached equipment views.
// Wired to the equipment service; availability edits often land together with
// a request being processed.
type EquipmentInvalidator interface {
	InvalidateViews(context stdctx.Context)
}

// SubmitInput is the public submission payload. Dates travel as YYYY-MM-DD
// strings and are parsed during validation.
type SubmitInput struct {
	FullName    string  `json:"full_name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Items       []Item  `json:"equipment_items"`
	Message     string  `json:"message"`
	TotalAmount float64 `json:"total_amount"`
}

type Service struct {
	repo      Repository
	equipment EquipmentInvalidator
	logger    *slog.Logger
	now       func() time.Time
}

func NewService(repo Repository, equipment EquipmentInvalidator, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		equipment: equipment,
		logger:    logger,
		now:       time.Now,
	}
}

// Submit validates and stores a new rental request. The total amount is
// recomputed server-side from the requested items and the rental interval;
// a client-sent total is ignored unless no item carries a daily rate.
func (service *Service) Submit(context stdctx.Context, input SubmitInput) (*Request, error) {
	validator := &validate.Validator{}
	validator.
		Required("full_name", input.FullName).
		MaxLen("full_name", input.FullName, 200).
		Required("email", input.Email).
		Required("start_date", input.StartDate).
		Date("start_date", input.StartDate).
		Required("end_date", input.EndDate).
		Date("end_date", input.EndDate).
		DateOrder("end_date", input.StartDate, input.EndDate).
		Custom("equipment_items", len(input.Items) == 0, "At least one item is required")
	if input.Email != "" {
		validator.Email("email", input.Email)
	}
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			validator.Custom("equipment_items", true, "Item quantities must be positive")
			break
		}
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	startDate, _ := time.Parse(validate.DateLayout, input.StartDate)
	endDate, _ := time.Parse(validate.DateLayout, input.EndDate)

	request := &Request{
		ID:          uuidv7.New(),
		FullName:    input.FullName,
		Email:       input.Email,
		Phone:       input.Phone,
		StartDate:   startDate,
		EndDate:     endDate,
		Items:       input.Items,
		Message:     input.Message,
		TotalAmount: totalAmount(input, startDate, endDate),
		Status:      StatusPending,
		CreatedAt:   service.now().UTC(),
	}

	if err := service.repo.InsertRequest(context, request); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "rental_request_submitted",
		slog.String("id", request.ID),
		slog.Int("items", len(request.Items)),
		slog.Float64("total_amount", request.TotalAmount),
	)

	if service.equipment != nil {
		service.equipment.InvalidateViews(context)
	}

	return request, nil
}

// List returns every stored request, newest first.
func (service *Service) List(context stdctx.Context) ([]Request, error) {
	return service.repo.ListRequests(context)
}

// UpdateStatus advances a request through its lifecycle.
func (service *Service) UpdateStatus(context stdctx.Context, id, status string) error {
	validator := &validate.Validator{}
	validator.
		Required("id", id).
		OneOf("status", status, Statuses()...)
	if err := validator.Err(); err != nil {
		return err
	}

	return service.repo.UpdateRequestStatus(context, id, status)
}

// totalAmount charges every requested item for each calendar day of the
// interval, both ends inclusive. Falls back to the client total when no item
// carries a rate, which covers gear priced on request.
func totalAmount(input SubmitInput, startDate, endDate time.Time) float64 {
	days := int(endDate.Sub(startDate).Hours()/24) + 1
	if days < 1 {
		days = 1
	}

	var perDay float64
	for _, item := range input.Items {
		perDay += item.DailyRate * float64(item.Quantity)
	}
	if perDay == 0 {
		return input.TotalAmount
	}

	return perDay * float64(days)
}
