package admin

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=admin_repo.go -destination=mock/admin_repo_mock.go -package=mock

type Repository interface {
	Create(ctx context.Context, user *AdminUser) error
	GetByEmail(ctx context.Context, email string) (*AdminUser, error)
	GetByID(ctx context.Context, id uuid.UUID) (*AdminUser, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, user *AdminUser) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *repository) GetByEmail(ctx context.Context, email string) (*AdminUser, error) {
	var user AdminUser
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*AdminUser, error) {
	var user AdminUser
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	return &user, err
}
