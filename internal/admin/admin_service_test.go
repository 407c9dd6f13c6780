package admin_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/TrueLearn-Academy/Emp-agent/internal/admin"
	adminerrors "github.com/TrueLearn-Academy/Emp-agent/internal/admin/errors"
	adminMock "github.com/TrueLearn-Academy/Emp-agent/internal/admin/mock"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func setupAdminTest(t *testing.T) (admin.Service, *adminMock.MockRepository) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	ctrl := gomock.NewController(t)
	repo := adminMock.NewMockRepository(ctrl)
	return admin.NewService(repo), repo
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(h)
}

func TestAdminService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc, repo := setupAdminTest(t)
		adminID := uuid.New()

		repo.EXPECT().GetByEmail(ctx, "ops@truelearn.example").Return(&admin.AdminUser{
			ID:       adminID,
			Name:     "Ops Admin",
			Email:    "ops@truelearn.example",
			Password: hashed(t, "s3cret-pass"),
			Role:     "ADMIN",
			IsActive: true,
		}, nil)

		access, refresh, resp, err := svc.Login(ctx, "ops@truelearn.example", "s3cret-pass")

		assert.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
		assert.Equal(t, adminID.String(), resp.ID)
		assert.Equal(t, "ADMIN", resp.Role)

		token, err := jwt.Parse(access, func(token *jwt.Token) (interface{}, error) {
			return []byte("test-secret"), nil
		})
		assert.NoError(t, err)
		claims := token.Claims.(jwt.MapClaims)
		assert.Equal(t, adminID.String(), claims["user_id"])
		assert.Equal(t, "ADMIN", claims["role"])
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, repo := setupAdminTest(t)

		repo.EXPECT().GetByEmail(ctx, "ops@truelearn.example").Return(&admin.AdminUser{
			ID:       uuid.New(),
			Email:    "ops@truelearn.example",
			Password: hashed(t, "s3cret-pass"),
			IsActive: true,
		}, nil)

		_, _, _, err := svc.Login(ctx, "ops@truelearn.example", "wrong")

		assert.ErrorIs(t, err, adminerrors.ErrInvalidCredentials)
	})

	t.Run("unknown email maps to same error", func(t *testing.T) {
		svc, repo := setupAdminTest(t)

		repo.EXPECT().
			GetByEmail(ctx, "ghost@truelearn.example").
			Return(nil, errors.New("record not found"))

		_, _, _, err := svc.Login(ctx, "ghost@truelearn.example", "whatever")

		assert.ErrorIs(t, err, adminerrors.ErrInvalidCredentials)
	})

	t.Run("inactive account rejected", func(t *testing.T) {
		svc, repo := setupAdminTest(t)

		repo.EXPECT().GetByEmail(ctx, "former@truelearn.example").Return(&admin.AdminUser{
			ID:       uuid.New(),
			Email:    "former@truelearn.example",
			Password: hashed(t, "s3cret-pass"),
			IsActive: false,
		}, nil)

		_, _, _, err := svc.Login(ctx, "former@truelearn.example", "s3cret-pass")

		assert.ErrorIs(t, err, adminerrors.ErrInvalidCredentials)
	})
}

func TestAdminService_RefreshToken(t *testing.T) {
	ctx := context.Background()

	signToken := func(t *testing.T, adminID uuid.UUID, exp time.Time) string {
		t.Helper()
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"user_id": adminID.String(),
			"exp":     exp.Unix(),
		})
		signed, err := token.SignedString([]byte("test-secret"))
		assert.NoError(t, err)
		return signed
	}

	t.Run("success rotates the pair", func(t *testing.T) {
		svc, repo := setupAdminTest(t)
		adminID := uuid.New()

		repo.EXPECT().GetByID(ctx, adminID).Return(&admin.AdminUser{
			ID:       adminID,
			Email:    "ops@truelearn.example",
			Role:     "SUPER_ADMIN",
			IsActive: true,
		}, nil)

		access, refresh, resp, err := svc.RefreshToken(ctx,
			signToken(t, adminID, time.Now().Add(time.Hour)))

		assert.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
		assert.Equal(t, "SUPER_ADMIN", resp.Role)
	})

	t.Run("expired token", func(t *testing.T) {
		svc, _ := setupAdminTest(t)

		_, _, _, err := svc.RefreshToken(ctx,
			signToken(t, uuid.New(), time.Now().Add(-time.Hour)))

		assert.ErrorIs(t, err, adminerrors.ErrInvalidRefreshToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		svc, _ := setupAdminTest(t)

		_, _, _, err := svc.RefreshToken(ctx, "not.a.jwt")

		assert.ErrorIs(t, err, adminerrors.ErrInvalidRefreshToken)
	})
}

func TestAdminService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("password is hashed and role defaults to ADMIN", func(t *testing.T) {
		svc, repo := setupAdminTest(t)

		repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, user *admin.AdminUser) error {
				assert.NotEqual(t, "s3cret-pass", user.Password)
				assert.NoError(t, bcrypt.CompareHashAndPassword(
					[]byte(user.Password), []byte("s3cret-pass")))
				assert.Equal(t, "ADMIN", user.Role)
				assert.Equal(t, "new@truelearn.example", user.Email)
				assert.True(t, user.IsActive)
				return nil
			})

		resp, err := svc.Register(ctx, admin.RegisterRequest{
			Name:     "New Admin",
			Email:    " New@TrueLearn.example ",
			Password: "s3cret-pass",
		})

		assert.NoError(t, err)
		assert.Equal(t, "New Admin", resp.Name)
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc, repo := setupAdminTest(t)

		repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(errors.New("duplicate key value violates unique constraint"))

		_, err := svc.Register(ctx, admin.RegisterRequest{
			Name:     "Dup",
			Email:    "ops@truelearn.example",
			Password: "s3cret-pass",
		})

		assert.ErrorIs(t, err, adminerrors.ErrEmailAlreadyRegistered)
	})
}

func TestAdminService_GetMe(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc, repo := setupAdminTest(t)
		adminID := uuid.New()

		repo.EXPECT().GetByID(ctx, adminID).Return(&admin.AdminUser{
			ID:    adminID,
			Name:  "Ops Admin",
			Email: "ops@truelearn.example",
			Role:  "ADMIN",
		}, nil)

		resp, err := svc.GetMe(ctx, adminID.String())

		assert.NoError(t, err)
		assert.Equal(t, "Ops Admin", resp.Name)
	})

	t.Run("invalid id", func(t *testing.T) {
		svc, _ := setupAdminTest(t)

		_, err := svc.GetMe(ctx, "42")

		assert.ErrorIs(t, err, adminerrors.ErrInvalidAdminID)
	})
}
