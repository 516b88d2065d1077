package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-site/internal/domain/catalog"
)

// gormCRUD implements the single-row operations shared by every resource.
type gormCRUD[T any] struct {
	db    *gorm.DB
	order string
}

func (r gormCRUD[T]) List(ctx context.Context) ([]T, error) {
	var rows []T
	if err := r.db.WithContext(ctx).Order(r.order).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r gormCRUD[T]) Get(ctx context.Context, id uint) (*T, error) {
	var row T
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

func (r gormCRUD[T]) Create(ctx context.Context, row *T) error {
	return r.db.WithContext(ctx).Create(row).Error
}

// Save writes every column of an existing row. It never inserts: a row
// deleted since it was read yields catalog.ErrNotFound.
func (r gormCRUD[T]) Save(ctx context.Context, row *T) error {
	res := r.db.WithContext(ctx).
		Model(row).
		Select("*").
		Omit("created_at").
		Updates(row)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

// Delete removes the row by id. A concurrent delete of the same id loses
// with catalog.ErrNotFound.
func (r gormCRUD[T]) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(new(T), id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return catalog.ErrNotFound
	}
	return nil
}
