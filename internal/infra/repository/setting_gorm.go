package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/barbershop-site/internal/domain/catalog"
	"github.com/BruksfildServices01/barbershop-site/internal/models"
)

type SettingGormRepository struct {
	db *gorm.DB
}

func NewSettingGormRepository(db *gorm.DB) *SettingGormRepository {
	return &SettingGormRepository{db: db}
}

func (r *SettingGormRepository) All(ctx context.Context) (map[string]string, error) {
	var rows []models.Setting
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return toMap(rows), nil
}

func (r *SettingGormRepository) Values(ctx context.Context, keys ...string) (map[string]string, error) {
	var rows []models.Setting
	if err := r.db.WithContext(ctx).
		Where(map[string]any{"key": keys}).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return toMap(rows), nil
}

// Upsert inserts key or replaces its value and refreshes updated_at.
func (r *SettingGormRepository) Upsert(ctx context.Context, key, value string) error {
	now := time.Now()
	row := models.Setting{Key: key, Value: value, UpdatedAt: now}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "key"}},
			DoUpdates: clause.Assignments(map[string]any{
				"value":      value,
				"updated_at": now,
			}),
		}).
		Create(&row).Error
}

func toMap(rows []models.Setting) map[string]string {
	out := make(map[string]string, len(rows))
	for _, s := range rows {
		out[s.Key] = s.Value
	}
	return out
}

var _ catalog.SettingRepository = (*SettingGormRepository)(nil)
