package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/glowmart/catalog-service/internal/domain"
	"github.com/glowmart/catalog-service/pkg/database"
	apperrors "github.com/glowmart/catalog-service/pkg/errors"
)

// AdminRepository implements repository.AdminRepository using PostgreSQL.
type AdminRepository struct {
	db database.DB
}

// NewAdminRepository creates a new PostgreSQL-backed admin repository.
func NewAdminRepository(db database.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

// GetByEmail retrieves an admin account by email.
func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	query := `
		SELECT id, fullname, role, email, password, created_at
		FROM admins
		WHERE email = $1`

	var a domain.Admin
	err := r.db.QueryRow(ctx, query, email).
		Scan(&a.ID, &a.FullName, &a.Role, &a.Email, &a.PasswordHash, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("get admin by email: %w", err)
	}

	return &a, nil
}

// Create inserts a new admin account and fills in its generated ID and
// timestamp. A duplicate email maps to an already-exists error.
func (r *AdminRepository) Create(ctx context.Context, a *domain.Admin) error {
	query := `
		INSERT INTO admins (fullname, role, email, password)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	err := r.db.QueryRow(ctx, query, a.FullName, a.Role, a.Email, a.PasswordHash).
		Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.AlreadyExists("admin", "email", a.Email)
		}
		return fmt.Errorf("insert admin: %w", err)
	}

	return nil
}
