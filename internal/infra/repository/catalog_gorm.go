package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-site/internal/domain/catalog"
	"github.com/BruksfildServices01/barbershop-site/internal/models"
)

// --------------------------------------------------
// Services
// --------------------------------------------------

type ServiceGormRepository struct {
	gormCRUD[models.Service]
}

func NewServiceGormRepository(db *gorm.DB) *ServiceGormRepository {
	return &ServiceGormRepository{gormCRUD[models.Service]{db: db, order: "id ASC"}}
}

// --------------------------------------------------
// Masters
// --------------------------------------------------

type MasterGormRepository struct {
	gormCRUD[models.Master]
}

func NewMasterGormRepository(db *gorm.DB) *MasterGormRepository {
	return &MasterGormRepository{gormCRUD[models.Master]{db: db, order: "id ASC"}}
}

func (r *MasterGormRepository) PhotoPaths(ctx context.Context) ([]string, error) {
	var paths []string
	err := r.db.WithContext(ctx).
		Model(&models.Master{}).
		Where("photo_url IS NOT NULL AND photo_url <> ''").
		Pluck("photo_url", &paths).Error
	return paths, err
}

// --------------------------------------------------
// Gallery
// --------------------------------------------------

type GalleryGormRepository struct {
	gormCRUD[models.GalleryItem]
}

func NewGalleryGormRepository(db *gorm.DB) *GalleryGormRepository {
	return &GalleryGormRepository{gormCRUD[models.GalleryItem]{db: db, order: "created_at DESC, id DESC"}}
}

func (r *GalleryGormRepository) ImagePaths(ctx context.Context) ([]string, error) {
	var paths []string
	err := r.db.WithContext(ctx).
		Model(&models.GalleryItem{}).
		Pluck("image_url", &paths).Error
	return paths, err
}

// --------------------------------------------------
// Reviews
// --------------------------------------------------

type ReviewGormRepository struct {
	gormCRUD[models.Review]
}

func NewReviewGormRepository(db *gorm.DB) *ReviewGormRepository {
	return &ReviewGormRepository{gormCRUD[models.Review]{db: db, order: "created_at DESC, id DESC"}}
}

// --------------------------------------------------
// Bookings
// --------------------------------------------------

type BookingGormRepository struct {
	gormCRUD[models.Booking]
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{gormCRUD[models.Booking]{db: db, order: "booking_date DESC, booking_time DESC, id DESC"}}
}

// Compile-time checks
var (
	_ catalog.ServiceRepository = (*ServiceGormRepository)(nil)
	_ catalog.MasterRepository  = (*MasterGormRepository)(nil)
	_ catalog.GalleryRepository = (*GalleryGormRepository)(nil)
	_ catalog.ReviewRepository  = (*ReviewGormRepository)(nil)
	_ catalog.BookingRepository = (*BookingGormRepository)(nil)
)
