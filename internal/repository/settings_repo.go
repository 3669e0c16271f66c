package repository

import (
	"context"
	"errors"

	"getexposure/internal/entity"

	"gorm.io/gorm"
)

// SettingsRepository exposes site settings as a named singleton. UpdateFields
// supports partial writes (the admin panel edits one section at a time).
type SettingsRepository interface {
	Get(ctx context.Context) (*entity.Settings, error)
	UpdateFields(ctx context.Context, fields map[string]any) (*entity.Settings, error)
}

type settingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) Get(ctx context.Context) (*entity.Settings, error) {
	var settings entity.Settings
	err := r.db.WithContext(ctx).Order("id asc").First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &settings, err
}

func (r *settingsRepository) UpdateFields(ctx context.Context, fields map[string]any) (*entity.Settings, error) {
	settings, err := r.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = &entity.Settings{}
		if err := r.db.WithContext(ctx).Create(settings).Error; err != nil {
			return nil, err
		}
	}
	if len(fields) > 0 {
		if err := r.db.WithContext(ctx).Model(settings).Updates(fields).Error; err != nil {
			return nil, err
		}
	}
	return settings, nil
}
