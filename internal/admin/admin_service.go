package admin

import (
	"context"
	"os"
	"strings"
	"time"

	adminerrors "github.com/TrueLearn-Academy/Emp-agent/internal/admin/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=admin_service.go -destination=mock/admin_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, email, password string) (accessToken, refreshToken string, resp AdminResponse, err error)

	RefreshToken(ctx context.Context, refreshToken string) (newAccessToken, newRefreshToken string, resp AdminResponse, err error)

	GetMe(ctx context.Context, adminID string) (*AdminResponse, error)

	Register(ctx context.Context, req RegisterRequest) (AdminResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("admin.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("admin.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Login(ctx context.Context, email, password string) (string, string, AdminResponse, error) {
	// 1. Ambil admin
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return "", "", AdminResponse{}, adminerrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return "", "", AdminResponse{}, adminerrors.ErrInvalidCredentials
	}

	// 2. Verify password
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", "", AdminResponse{}, adminerrors.ErrInvalidCredentials
	}

	// 3. Generate token pair
	accessToken, err := s.generateToken(user, time.Minute*15)
	if err != nil {
		return "", "", AdminResponse{}, adminerrors.ErrTokenGenerationFailed
	}
	refreshToken, err := s.generateToken(user, time.Hour*24*7)
	if err != nil {
		return "", "", AdminResponse{}, adminerrors.ErrTokenGenerationFailed
	}

	s.logger.Info("admin logged in",
		zap.String("admin_id", user.ID.String()),
		zap.String("role", user.Role),
	)

	return accessToken, refreshToken, mapToResponse(user), nil
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (string, string, AdminResponse, error) {
	token, err := jwt.Parse(refreshToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, adminerrors.ErrInvalidToken
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return "", "", AdminResponse{}, adminerrors.ErrInvalidRefreshToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", AdminResponse{}, adminerrors.ErrInvalidToken
	}

	adminIDStr, ok := claims["user_id"].(string)
	if !ok {
		return "", "", AdminResponse{}, adminerrors.ErrInvalidToken
	}

	adminID, err := uuid.Parse(adminIDStr)
	if err != nil {
		return "", "", AdminResponse{}, adminerrors.ErrInvalidAdminID
	}

	user, err := s.repo.GetByID(ctx, adminID)
	if err != nil {
		return "", "", AdminResponse{}, adminerrors.ErrAdminNotFound
	}

	newAccessToken, err := s.generateToken(user, time.Minute*15)
	if err != nil {
		return "", "", AdminResponse{}, adminerrors.ErrTokenGenerationFailed
	}
	newRefreshToken, err := s.generateToken(user, time.Hour*24*7)
	if err != nil {
		return "", "", AdminResponse{}, adminerrors.ErrTokenGenerationFailed
	}

	return newAccessToken, newRefreshToken, mapToResponse(user), nil
}

func (s *service) GetMe(ctx context.Context, adminID string) (*AdminResponse, error) {
	id, err := uuid.Parse(adminID)
	if err != nil {
		return nil, adminerrors.ErrInvalidAdminID
	}

	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, adminerrors.ErrAdminNotFound
	}

	resp := mapToResponse(u)
	return &resp, nil
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (AdminResponse, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return AdminResponse{}, err
	}

	role := strings.ToUpper(strings.TrimSpace(req.Role))
	if role == "" {
		role = "ADMIN"
	}

	user := &AdminUser{
		ID:       uuid.New(),
		Name:     req.Name,
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: string(hashed),
		Role:     role,
		IsActive: true,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return AdminResponse{}, adminerrors.ErrEmailAlreadyRegistered
	}

	s.logger.Info("admin registered",
		zap.String("admin_id", user.ID.String()),
		zap.String("role", user.Role),
	)

	return mapToResponse(user), nil
}

// reusable token generator
func (s *service) generateToken(user *AdminUser, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID.String(),
		"email":   user.Email,
		"role":    user.Role,
		"exp":     time.Now().Add(expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
