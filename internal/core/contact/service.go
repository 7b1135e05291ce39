// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

package contact

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/wiwekaitech/wiweka/internal/platform/validate"
	"github.com/wiwekaitech/wiweka/pkg/pagination"
)

// ThankYouMessage accompanies every accepted submission.
const ThankYouMessage = "Thank you for contacting us! We will get back to you soon."

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// AdminView is a stored message plus its parsed client, as listed to staff.
type AdminView struct {
	*Message
	Client Client `json:"client"`
}

/*
Submit validates and stores a public contact form submission.

Parameters:
  - submission: The decoded form; trimmed and defaulted in place
  - origin: Caller address and user agent, stored for triage

Returns:
  - *Receipt: The acknowledgement returned to the submitter
  - error: VALIDATION_ERROR or storage failures
*/
func (service *Service) Submit(context context.Context, submission Submission, origin Origin) (*Receipt, error) {
	submission.normalize()
	if err := submission.validate(); err != nil {
		return nil, err
	}

	message := submission.toMessage(origin)
	if err := service.repo.Create(context, message); err != nil {
		return nil, fmt.Errorf("contact_service_submit_failed: %w", err)
	}

	service.logger.InfoContext(context, "contact_message_received",
		slog.Int64("contact_message_id", message.ID),
		slog.String("preferred_contact", message.PreferredContact),
	)

	return &Receipt{
		ID:        message.ID,
		Name:      message.Name,
		Email:     message.Email,
		Subject:   message.Subject,
		CreatedAt: message.CreatedAt,
	}, nil
}

// List pages through messages newest first, optionally restricted to one status.
func (service *Service) List(ctx context.Context, status Status, params pagination.Params) (pagination.Result[AdminView], error) {
	if status != "" && !status.Valid() {
		return pagination.Result[AdminView]{}, statusError()
	}

	page, err := pagination.Paginate(ctx, pagination.Funcs[*Message]{
		CountFunc: func(ctx context.Context) (int, error) {
			return service.repo.Count(ctx, status)
		},
		WindowFunc: func(ctx context.Context, offset, limit int) ([]*Message, error) {
			return service.repo.List(ctx, status, offset, limit)
		},
	}, params)
	if err != nil {
		return pagination.Result[AdminView]{}, fmt.Errorf("contact_service_list_failed: %w", err)
	}

	views := make([]AdminView, len(page.Items))
	for i, message := range page.Items {
		views[i] = adminView(message)
	}
	return pagination.Result[AdminView]{Items: views, Meta: page.Meta}, nil
}

// Get returns one message.
func (service *Service) Get(context context.Context, id int64) (AdminView, error) {
	message, err := service.repo.FindByID(context, id)
	if err != nil {
		return AdminView{}, err
	}
	return adminView(message), nil
}

// UpdateStatus moves a message to any known triage state.
func (service *Service) UpdateStatus(context context.Context, id int64, status Status) (AdminView, error) {
	if !status.Valid() {
		return AdminView{}, statusError()
	}

	message, err := service.repo.UpdateStatus(context, id, status)
	if err != nil {
		return AdminView{}, err
	}

	service.logger.InfoContext(context, "contact_message_status_updated",
		slog.Int64("contact_message_id", id),
		slog.String("status", string(status)),
	)
	return adminView(message), nil
}

func adminView(message *Message) AdminView {
	raw := ""
	if message.UserAgent != nil {
		raw = *message.UserAgent
	}
	return AdminView{Message: message, Client: DescribeClient(raw)}
}

func statusError() error {
	return validate.RequiredError(FieldStatus, "Must be one of: "+strings.Join(Statuses, ", "))
}
