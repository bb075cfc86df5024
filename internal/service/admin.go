package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/glowmart/catalog-service/internal/auth"
	"github.com/glowmart/catalog-service/internal/domain"
	"github.com/glowmart/catalog-service/internal/repository"
	apperrors "github.com/glowmart/catalog-service/pkg/errors"
)

// AdminService implements signup and login for catalog administrators.
type AdminService struct {
	admins repository.AdminRepository
	jwt    *auth.JWTManager
	logger *slog.Logger
}

// NewAdminService creates a new admin service.
func NewAdminService(admins repository.AdminRepository, jwt *auth.JWTManager, logger *slog.Logger) *AdminService {
	return &AdminService{
		admins: admins,
		jwt:    jwt,
		logger: logger,
	}
}

// SignupInput holds the parameters for creating an admin account.
type SignupInput struct {
	FullName string
	Role     string
	Email    string
	Password string
}

// LoginResult carries the authenticated admin and their access token.
type LoginResult struct {
	Admin *domain.Admin `json:"admin"`
	Token string        `json:"token"`
}

// Signup creates a new admin account with a bcrypt-hashed password.
func (s *AdminService) Signup(ctx context.Context, input *SignupInput) (*domain.Admin, error) {
	if input.FullName == "" {
		return nil, apperrors.InvalidInput("full name is required")
	}
	if input.Email == "" {
		return nil, apperrors.InvalidInput("email is required")
	}
	if len(input.Password) < 8 {
		return nil, apperrors.InvalidInput("password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	role := input.Role
	if role == "" {
		role = "admin"
	}

	admin := &domain.Admin{
		FullName:     input.FullName,
		Role:         role,
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash: string(hash),
	}

	if err := s.admins.Create(ctx, admin); err != nil {
		return nil, fmt.Errorf("create admin: %w", err)
	}

	s.logger.InfoContext(ctx, "admin account created",
		slog.Int64("admin_id", admin.ID),
		slog.String("email", admin.Email),
	)

	return admin, nil
}

// Login verifies the credentials and issues an access token. Unknown emails
// and wrong passwords both come back as an unauthorized error, so a caller
// cannot probe which accounts exist.
func (s *AdminService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	admin, err := s.admins.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.Unauthorized("invalid email or password")
		}
		return nil, fmt.Errorf("get admin by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.Unauthorized("invalid email or password")
	}

	token, err := s.jwt.Generate(admin.ID, admin.Email, admin.Role)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	s.logger.InfoContext(ctx, "admin logged in", slog.Int64("admin_id", admin.ID))

	return &LoginResult{Admin: admin, Token: token}, nil
}
