package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/glowmart/catalog-service/internal/auth"
	"github.com/glowmart/catalog-service/internal/domain"
	apperrors "github.com/glowmart/catalog-service/pkg/errors"
)

type mockAdminRepository struct {
	mock.Mock
}

func (m *mockAdminRepository) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Admin), args.Error(1)
}

func (m *mockAdminRepository) Create(ctx context.Context, a *domain.Admin) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func newTestAdminService(admins *mockAdminRepository) *AdminService {
	jwt := auth.NewJWTManager("test-secret", time.Hour)
	return NewAdminService(admins, jwt, newTestLogger())
}

func TestAdminSignup_HashesPasswordAndNormalizesEmail(t *testing.T) {
	admins := new(mockAdminRepository)
	svc := newTestAdminService(admins)

	admins.On("Create", mock.Anything, mock.MatchedBy(func(a *domain.Admin) bool {
		if a.Email != "dana@glowmart.dev" || a.Role != "admin" {
			return false
		}
		return bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte("hunter2hunter2")) == nil
	})).Return(nil).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Admin).ID = 5
	})

	admin, err := svc.Signup(context.Background(), &SignupInput{
		FullName: "Dana Keller",
		Email:    "  Dana@GlowMart.dev ",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), admin.ID)
	assert.Equal(t, "dana@glowmart.dev", admin.Email)
	admins.AssertExpectations(t)
}

func TestAdminSignup_ShortPassword(t *testing.T) {
	admins := new(mockAdminRepository)
	svc := newTestAdminService(admins)

	_, err := svc.Signup(context.Background(), &SignupInput{
		FullName: "Dana Keller",
		Email:    "dana@glowmart.dev",
		Password: "short",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	admins.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAdminSignup_DuplicateEmail(t *testing.T) {
	admins := new(mockAdminRepository)
	svc := newTestAdminService(admins)

	admins.On("Create", mock.Anything, mock.Anything).
		Return(apperrors.AlreadyExists("admin", "email", "dana@glowmart.dev"))

	_, err := svc.Signup(context.Background(), &SignupInput{
		FullName: "Dana Keller",
		Email:    "dana@glowmart.dev",
		Password: "hunter2hunter2",
	})
	assert.ErrorIs(t, err, apperrors.ErrAlreadyExists)
}

func TestAdminLogin_Success(t *testing.T) {
	admins := new(mockAdminRepository)
	svc := newTestAdminService(admins)

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	admins.On("GetByEmail", mock.Anything, "dana@glowmart.dev").Return(&domain.Admin{
		ID:           5,
		FullName:     "Dana Keller",
		Role:         "admin",
		Email:        "dana@glowmart.dev",
		PasswordHash: string(hash),
	}, nil)

	result, err := svc.Login(context.Background(), "Dana@GlowMart.dev", "hunter2hunter2")
	require.NoError(t, err)
	assert.Equal(t, int64(5), result.Admin.ID)
	assert.NotEmpty(t, result.Token)

	jwt := auth.NewJWTManager("test-secret", time.Hour)
	claims, err := jwt.Validate(result.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(5), claims.AdminID)
	assert.Equal(t, "admin", claims.Role)
}

func TestAdminLogin_WrongPassword(t *testing.T) {
	admins := new(mockAdminRepository)
	svc := newTestAdminService(admins)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	require.NoError(t, err)

	admins.On("GetByEmail", mock.Anything, "dana@glowmart.dev").Return(&domain.Admin{
		ID:           5,
		Email:        "dana@glowmart.dev",
		PasswordHash: string(hash),
	}, nil)

	result, err := svc.Login(context.Background(), "dana@glowmart.dev", "wrong-password")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestAdminLogin_UnknownEmailIndistinguishable(t *testing.T) {
	admins := new(mockAdminRepository)
	svc := newTestAdminService(admins)

	admins.On("GetByEmail", mock.Anything, "ghost@glowmart.dev").Return(nil, apperrors.ErrNotFound)

	result, err := svc.Login(context.Background(), "ghost@glowmart.dev", "whatever-password")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	assert.NotErrorIs(t, err, apperrors.ErrNotFound)
}
