// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

package account

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/wiwekaitech/wiweka/internal/platform/apperr"
	"github.com/wiwekaitech/wiweka/internal/platform/sec"
	"github.com/wiwekaitech/wiweka/internal/platform/validate"
	"github.com/wiwekaitech/wiweka/internal/users/auth"
	"github.com/wiwekaitech/wiweka/pkg/slice"
)

// # Account Service

// Service manages stored accounts on behalf of administrators.
type Service struct {
	repo     AccountRepository
	identity Identity
	logger   *slog.Logger
}

// NewService constructs a new [Service].
func NewService(repo AccountRepository, identity Identity, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		identity: identity,
		logger:   logger,
	}
}

// List returns every account ordered by id.
func (service *Service) List(context context.Context) ([]AdminView, error) {
	users, err := service.repo.List(context)
	if err != nil {
		return nil, fmt.Errorf("account_service_list_failed: %w", err)
	}
	return slice.Map(users, viewOf), nil
}

// Get returns one account.
func (service *Service) Get(context context.Context, id int64) (AdminView, error) {
	user, err := service.repo.FindByID(context, id)
	if err != nil {
		return AdminView{}, err
	}
	return viewOf(user), nil
}

/*
Create adds an account. The password is required.

Returns:
  - AdminView: The stored account
  - error: VALIDATION_ERROR, DUPLICATE_USERNAME, DUPLICATE_EMAIL or storage failures
*/
func (service *Service) Create(context context.Context, input CreateInput) (AdminView, error) {
	user, err := service.identity.CreateUser(context, auth.NewAccount{
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
		Role:     input.Role,
		IsActive: input.IsActive,
	})
	if err != nil {
		return AdminView{}, err
	}
	return viewOf(user), nil
}

/*
Update applies a partial change to an account.

Description: Null is rejected for every field except password, where null,
absent and blank all keep the current hash. A new password is re-hashed.

Returns:
  - AdminView: The updated account
  - error: VALIDATION_ERROR, USER_NOT_FOUND, DUPLICATE_USERNAME, DUPLICATE_EMAIL
*/
func (service *Service) Update(context context.Context, id int64, patch Patch) (AdminView, error) {
	user, err := service.repo.FindByID(context, id)
	if err != nil {
		return AdminView{}, err
	}

	validator := &validate.Validator{}
	rejectNull(validator, auth.FieldUsername, patch.Username.IsNull())
	rejectNull(validator, auth.FieldEmail, patch.Email.IsNull())
	rejectNull(validator, auth.FieldRole, patch.Role.IsNull())
	rejectNull(validator, "is_active", patch.IsActive.IsNull())
	if err := validator.Err(); err != nil {
		return AdminView{}, err
	}

	patch.Username.Apply(&user.Username)
	patch.Email.Apply(&user.Email)
	patch.Role.Apply(&user.Role)
	patch.IsActive.Apply(&user.IsActive)
	user.Username = strings.TrimSpace(user.Username)
	user.Email = strings.TrimSpace(user.Email)

	password := patch.Password.OrElse("")
	auth.ValidateIdentity(validator, user.Username, user.Email, user.Role)
	auth.ValidatePassword(validator, password)
	if err := validator.Err(); err != nil {
		return AdminView{}, err
	}

	if err := service.identity.CheckAvailable(context, user.Username, user.Email, user.ID); err != nil {
		return AdminView{}, err
	}

	if password != "" {
		hash, err := sec.HashPassword(password)
		if err != nil {
			return AdminView{}, apperr.Internal(err)
		}
		user.PasswordHash = hash
	}

	if err := service.repo.Update(context, user); err != nil {
		return AdminView{}, fmt.Errorf("account_service_update_failed: %w", err)
	}

	service.logger.InfoContext(context, "user_updated",
		slog.Int64("user_id", user.ID),
		slog.Bool("password_changed", password != ""),
	)
	return viewOf(user), nil
}

/*
Delete removes an account.

Returns:
  - error: SELF_DELETE when actor targets their own account, USER_NOT_FOUND
*/
func (service *Service) Delete(context context.Context, actor *sec.Principal, id int64) error {
	if actor.ID == id {
		return apperr.SelfDelete()
	}

	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.InfoContext(context, "user_deleted",
		slog.Int64("user_id", id),
		slog.Int64("deleted_by", actor.ID),
	)
	return nil
}

func rejectNull(validator *validate.Validator, field string, null bool) {
	validator.Custom(field, null, "Must not be null")
}
