// Copyright (c) 2026 StoreRatings. All rights reserved.

// Credential verification use cases.
//
// # Architecture
//
// The service orchestrates the [User] entity and the [UserRepository]
// interface. It is technology-agnostic and does not know about HTTP or SQL.
package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/iamMohdZiya/storeratings/internal/platform/apperr"
	"github.com/iamMohdZiya/storeratings/internal/platform/sec"
	"github.com/iamMohdZiya/storeratings/internal/platform/validate"
)

// TokenIssuer defines the contract for producing signed session tokens.
type TokenIssuer interface {
	// Encode creates a signed token string embedding the principal's
	// identity and role.
	Encode(userID int64, name string, role sec.Role) (string, error)
}

// Service implements account and credential-verification use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, signup,
// or login logic must be reviewed carefully.
type Service struct {
	users  UserRepository
	tokens TokenIssuer
}

// NewService constructs a new [Service] with necessary dependencies.
func NewService(users UserRepository, tokens TokenIssuer) *Service {
	return &Service{
		users:  users,
		tokens: tokens,
	}
}

// SignupInput holds the data required to enroll a new account.
type SignupInput struct {
	Name     string
	Email    string
	Password string
	Address  string
}

// Signup validates, hashes, and persists a brand new NORMAL_USER account.
//
// # Business Rules
//   - Name must be 20-60 characters.
//   - Password must be 8-16 characters with one uppercase and one special character.
//   - Address is limited to 400 characters.
//   - Emails are unique and stored lowercase.
//   - Self-service signup always yields the NORMAL_USER role; other roles
//     are assigned only through the admin surface.
//
// # Returns
//   - The newly created [*User].
//   - [apperr.ValidationError] if a rule fails, [apperr.Conflict] on a
//     duplicate email.
func (service *Service) Signup(ctx context.Context, input SignupInput) (*User, error) {
	return service.createAccount(ctx, input, sec.RoleNormalUser)
}

// CreateUser enrolls an account with an explicit role. Reserved for the
// admin surface; the handler layer guards it with the ADMIN role check.
func (service *Service) CreateUser(ctx context.Context, input SignupInput, role sec.Role) (*User, error) {
	v := &validate.Validator{}
	v.Custom("role", !role.Valid(), "Must be one of: ADMIN, NORMAL_USER, STORE_OWNER")
	if err := v.Err(); err != nil {
		return nil, err
	}
	return service.createAccount(ctx, input, role)
}

// createAccount is the shared signup path behind [Signup] and [CreateUser].
func (service *Service) createAccount(ctx context.Context, input SignupInput, role sec.Role) (*User, error) {
	// ── 1. Boundary Validation ────────────────────────────────────────────

	email := NormalizeEmail(input.Email)

	v := &validate.Validator{}
	err := v.
		Required("name", input.Name).
		MinLen("name", input.Name, 20).
		MaxLen("name", input.Name, 60).
		Email("email", email).
		Password("password", input.Password).
		MaxLen("address", input.Address, 400).
		Err()
	if err != nil {
		return nil, err
	}

	// ── 2. Security ───────────────────────────────────────────────────────

	// Prevent storing plain-text passwords. Default cost is used for balance
	// between security and CPU utilization during signup spikes.
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	// ── 3. Entity Construction & Persistence ──────────────────────────────

	user := &User{
		Name:         input.Name,
		Email:        email,
		PasswordHash: hashedPassword,
		Address:      input.Address,
		Role:         role,
	}

	// Duplicate emails are caught by the unique constraint, not a prior
	// SELECT: two concurrent signups for the same email cannot both pass.
	if err := service.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// LoginResult represents a successfully established session.
type LoginResult struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// Login validates credentials and issues a signed session token.
//
// # Flow
//  1. Lookup user by case-normalized email.
//  2. Verify password hash using bcrypt.
//  3. Encode the signed session token carrying {id, name, role}.
//
// # Returns
//   - [apperr.Unauthorized] if credentials do not match. The error is
//     identical for an unknown email and a wrong password, so the response
//     never reveals which check failed.
func (service *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	// ── 1. Fetch Account ──────────────────────────────────────────────────

	user, err := service.users.FindByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	// ── 2. Security Verification ──────────────────────────────────────────

	// bcrypt compares in constant time, limiting timing side-channels.
	if !sec.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	// ── 3. Token Issuance ─────────────────────────────────────────────────

	token, err := service.tokens.Encode(user.ID, user.Name, user.Role)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_issuance_failed: %w", err)
	}

	return &LoginResult{Token: token, User: user}, nil
}

// ChangePassword re-authenticates with the old password before accepting a
// new one.
//
// Already-issued tokens stay valid until they expire: the platform holds no
// server-side session state to revoke.
//
// # Returns
//   - [apperr.Unauthorized] if the old password does not match.
//   - [apperr.ValidationError] if the new password violates the policy.
func (service *Service) ChangePassword(ctx context.Context, userID int64, oldPassword, newPassword string) error {
	// ── 1. Re-authentication ──────────────────────────────────────────────

	user, err := service.users.FindByID(ctx, userID)
	if err != nil {
		return apperr.Unauthorized("Invalid credentials")
	}

	if !sec.CheckPasswordHash(oldPassword, user.PasswordHash) {
		return apperr.Unauthorized("Invalid credentials")
	}

	// ── 2. Policy Check ───────────────────────────────────────────────────

	v := &validate.Validator{}
	if err := v.Password("new_password", newPassword).Err(); err != nil {
		return err
	}

	// ── 3. Persistence ────────────────────────────────────────────────────

	newHash, err := sec.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	if err := service.users.UpdatePassword(ctx, user.ID, newHash); err != nil {
		return fmt.Errorf("auth_service_change_password_failed: %w", err)
	}

	return nil
}

// NormalizeEmail lowercases and trims an email address so lookups and the
// unique constraint operate on a canonical form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
