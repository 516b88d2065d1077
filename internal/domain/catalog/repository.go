package catalog

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/barbershop-site/internal/models"
)

// ErrNotFound is returned by repositories when the addressed row does not exist.
var ErrNotFound = errors.New("record not found")

type ServiceRepository interface {
	List(ctx context.Context) ([]models.Service, error)
	Get(ctx context.Context, id uint) (*models.Service, error)
	Create(ctx context.Context, s *models.Service) error
	Save(ctx context.Context, s *models.Service) error
	Delete(ctx context.Context, id uint) error
}

type MasterRepository interface {
	List(ctx context.Context) ([]models.Master, error)
	Get(ctx context.Context, id uint) (*models.Master, error)
	Create(ctx context.Context, m *models.Master) error
	Save(ctx context.Context, m *models.Master) error
	Delete(ctx context.Context, id uint) error
	PhotoPaths(ctx context.Context) ([]string, error)
}

type GalleryRepository interface {
	List(ctx context.Context) ([]models.GalleryItem, error)
	Get(ctx context.Context, id uint) (*models.GalleryItem, error)
	Create(ctx context.Context, item *models.GalleryItem) error
	Delete(ctx context.Context, id uint) error
	ImagePaths(ctx context.Context) ([]string, error)
}

type ReviewRepository interface {
	List(ctx context.Context) ([]models.Review, error)
	Get(ctx context.Context, id uint) (*models.Review, error)
	Create(ctx context.Context, r *models.Review) error
	Save(ctx context.Context, r *models.Review) error
	Delete(ctx context.Context, id uint) error
}

type BookingRepository interface {
	List(ctx context.Context) ([]models.Booking, error)
	Get(ctx context.Context, id uint) (*models.Booking, error)
	Create(ctx context.Context, b *models.Booking) error
	Save(ctx context.Context, b *models.Booking) error
	Delete(ctx context.Context, id uint) error
}

type SettingRepository interface {
	All(ctx context.Context) (map[string]string, error)
	Values(ctx context.Context, keys ...string) (map[string]string, error)
	Upsert(ctx context.Context, key, value string) error
}

type AdminRepository interface {
	FindByUsername(ctx context.Context, username string) (*models.AdminUser, error)
	FindByID(ctx context.Context, id uint) (*models.AdminUser, error)
}
