// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

package auth

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/wiwekaitech/wiweka/internal/platform/apperr"
	"github.com/wiwekaitech/wiweka/internal/platform/middleware"
	"github.com/wiwekaitech/wiweka/internal/platform/sec"
	"github.com/wiwekaitech/wiweka/internal/platform/validate"
)

// # Auth Service

// Service implements the identity lifecycle of the admin surface.
type Service struct {
	users  UserRepository
	tokens *sec.TokenService
	logger *slog.Logger
}

// NewService constructs a new [Service] with its dependencies.
func NewService(users UserRepository, tokens *sec.TokenService, logger *slog.Logger) *Service {
	return &Service{
		users:  users,
		tokens: tokens,
		logger: logger,
	}
}

// ErrInvalidLogin is returned for every failed login, whatever the reason.
func ErrInvalidLogin() *apperr.AppError {
	return apperr.Unauthorized("Invalid username or password")
}

// decoyHash is compared against when the username is unknown, so a miss costs
// the same bcrypt work as a wrong password.
var decoyHash = sync.OnceValue(func() string {
	hash, _ := sec.HashPassword("wiweka-decoy-password")
	return hash
})

/*
Authenticate verifies a username and password pair.

Description: Unknown users, inactive users and wrong passwords all yield a
nil user without error, so callers cannot tell them apart.

Returns:
  - *User: The verified account, or nil
  - error: Storage failures only
*/
func (service *Service) Authenticate(context context.Context, username, password string) (*User, error) {
	user, err := service.users.FindByUsername(context, username)
	if err != nil {
		if apperr.IsNotFound(err) {
			sec.CheckPassword(password, decoyHash())
			return nil, nil
		}
		return nil, fmt.Errorf("auth_service_authenticate_failed: %w", err)
	}

	if !sec.CheckPassword(password, user.PasswordHash) || !user.IsActive {
		return nil, nil
	}

	return user, nil
}

/*
Login authenticates a user and issues an access token.

Returns:
  - *User: The signed-in account
  - string: The signed access token
  - error: 401 "Invalid username or password" on any credential failure
*/
func (service *Service) Login(context context.Context, username, password string) (*User, string, error) {
	user, err := service.Authenticate(context, username, password)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		service.logger.InfoContext(context, "auth_login_rejected", slog.String("username", username))
		return nil, "", ErrInvalidLogin()
	}

	token, err := service.IssueToken(user)
	if err != nil {
		return nil, "", err
	}

	service.logger.InfoContext(context, "auth_login_succeeded",
		slog.Int64("user_id", user.ID),
		slog.String("role", string(user.Role)),
	)
	return user, token, nil
}

// IssueToken signs an access token for user.
func (service *Service) IssueToken(user *User) (string, error) {
	token, err := service.tokens.IssueToken(user.ID, user.Username, string(user.Role))
	if err != nil {
		return "", apperr.Internal(err)
	}
	return token, nil
}

// VerifyToken checks an access token. It fails closed.
func (service *Service) VerifyToken(token string) (*sec.AuthClaims, bool) {
	return service.tokens.VerifyToken(token)
}

// TokenTTL is the lifetime of issued tokens.
func (service *Service) TokenTTL() time.Duration {
	return service.tokens.TTL()
}

/*
ResolvePrincipal loads the live user behind a token subject.

Returns:
  - *sec.Principal: The identity, or nil when the user is missing or inactive
  - error: Storage failures only
*/
func (service *Service) ResolvePrincipal(context context.Context, userID int64) (*sec.Principal, error) {
	user, err := service.users.FindByID(context, userID)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("auth_service_resolve_failed: %w", err)
	}

	if !user.IsActive {
		return nil, nil
	}
	return user.Principal(), nil
}

// Authenticator returns the middleware guarding protected routes.
func (service *Service) Authenticator() func(http.Handler) http.Handler {
	return middleware.Authenticate(service, service)
}

// Me returns the account behind principal.
func (service *Service) Me(context context.Context, principal *sec.Principal) (*User, error) {
	user, err := service.users.FindByID(context, principal.ID)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// # Account Creation

// NewAccount is the input to [Service.CreateUser].
type NewAccount struct {
	Username string
	Email    string
	Password string
	// Role defaults to viewer.
	Role sec.UserRole
	// IsActive defaults to true.
	IsActive *bool
}

/*
CreateUser validates, hashes and stores a new account.

Returns:
  - *User: The stored account
  - error: VALIDATION_ERROR, DUPLICATE_USERNAME, DUPLICATE_EMAIL or storage failures
*/
func (service *Service) CreateUser(context context.Context, account NewAccount) (*User, error) {
	account.Username = strings.TrimSpace(account.Username)
	account.Email = strings.TrimSpace(account.Email)
	if account.Role == "" {
		account.Role = sec.RoleViewer
	}

	validator := &validate.Validator{}
	ValidateIdentity(validator, account.Username, account.Email, account.Role)
	validator.Required(FieldPassword, account.Password)
	ValidatePassword(validator, account.Password)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.CheckAvailable(context, account.Username, account.Email, 0); err != nil {
		return nil, err
	}

	hash, err := sec.HashPassword(account.Password)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	user := &User{
		Username:     account.Username,
		Email:        account.Email,
		PasswordHash: hash,
		Role:         account.Role,
		IsActive:     account.IsActive == nil || *account.IsActive,
	}
	if err := service.users.Create(context, user); err != nil {
		return nil, fmt.Errorf("auth_service_create_user_failed: %w", err)
	}

	service.logger.InfoContext(context, "user_created",
		slog.Int64("user_id", user.ID),
		slog.String("role", string(user.Role)),
	)
	return user, nil
}

// CheckAvailable fails when username or email belongs to an account other than excludeID.
func (service *Service) CheckAvailable(context context.Context, username, email string, excludeID int64) error {
	taken, err := service.users.UsernameTaken(context, username, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return apperr.DuplicateUsername()
	}

	taken, err = service.users.EmailTaken(context, email, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return apperr.DuplicateEmail()
	}
	return nil
}

// # Validation

// ValidateIdentity checks the username, email and role of an account.
func ValidateIdentity(validator *validate.Validator, username, email string, role sec.UserRole) {
	validator.
		Required(FieldUsername, username).
		MinLen(FieldUsername, username, UsernameMinLength).
		MaxLen(FieldUsername, username, UsernameMaxLength).
		Required(FieldEmail, email).
		Email(FieldEmail, email).
		MaxLen(FieldEmail, email, EmailMaxLength).
		OneOf(FieldRole, string(role), sec.RoleStrings()...)
}

// ValidatePassword checks the length of a non-empty password.
func ValidatePassword(validator *validate.Validator, password string) {
	if password == "" {
		return
	}
	validator.
		MinLen(FieldPassword, password, PasswordMinLength).
		MaxLen(FieldPassword, password, PasswordMaxLength)
}
