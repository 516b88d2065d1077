package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-site/internal/domain/catalog"
	"github.com/BruksfildServices01/barbershop-site/internal/models"
)

type AdminGormRepository struct {
	db *gorm.DB
}

func NewAdminGormRepository(db *gorm.DB) *AdminGormRepository {
	return &AdminGormRepository{db: db}
}

func (r *AdminGormRepository) FindByUsername(ctx context.Context, username string) (*models.AdminUser, error) {
	var u models.AdminUser
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *AdminGormRepository) FindByID(ctx context.Context, id uint) (*models.AdminUser, error) {
	var u models.AdminUser
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

var _ catalog.AdminRepository = (*AdminGormRepository)(nil)
