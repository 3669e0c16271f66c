package repository

import (
	"context"
	"errors"

	"getexposure/internal/entity"

	"gorm.io/gorm"
)

// StatsContentRepository exposes the stats section heading as a named singleton.
type StatsContentRepository interface {
	Get(ctx context.Context) (*entity.StatsContent, error)
	Put(ctx context.Context, content *entity.StatsContent) error
}

type statsContentRepository struct {
	db *gorm.DB
}

func NewStatsContentRepository(db *gorm.DB) StatsContentRepository {
	return &statsContentRepository{db: db}
}

func (r *statsContentRepository) Get(ctx context.Context) (*entity.StatsContent, error) {
	var content entity.StatsContent
	err := r.db.WithContext(ctx).Order("id asc").First(&content).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &content, err
}

func (r *statsContentRepository) Put(ctx context.Context, content *entity.StatsContent) error {
	existing, err := r.Get(ctx)
	if err != nil {
		return err
	}
	if existing != nil {
		content.ID = existing.ID
		content.CreatedAt = existing.CreatedAt
		return r.db.WithContext(ctx).Save(content).Error
	}
	return r.db.WithContext(ctx).Create(content).Error
}

type StatItemRepository interface {
	List(ctx context.Context, activeOnly bool) ([]entity.StatItem, error)
	Create(ctx context.Context, item *entity.StatItem) error
	Update(ctx context.Context, id uint, fields map[string]any) (*entity.StatItem, error)
	Delete(ctx context.Context, id uint) (bool, error)
}

type statItemRepository struct {
	db *gorm.DB
}

func NewStatItemRepository(db *gorm.DB) StatItemRepository {
	return &statItemRepository{db: db}
}

func (r *statItemRepository) List(ctx context.Context, activeOnly bool) ([]entity.StatItem, error) {
	var items []entity.StatItem
	query := r.db.WithContext(ctx).Order("display_order asc, id asc")
	if activeOnly {
		query = query.Where("is_active = true")
	}
	err := query.Find(&items).Error
	return items, err
}

func (r *statItemRepository) Create(ctx context.Context, item *entity.StatItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *statItemRepository) Update(ctx context.Context, id uint, fields map[string]any) (*entity.StatItem, error) {
	var item entity.StatItem
	err := r.db.WithContext(ctx).First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		if err := r.db.WithContext(ctx).Model(&item).Updates(fields).Error; err != nil {
			return nil, err
		}
	}
	return &item, nil
}

func (r *statItemRepository) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&entity.StatItem{}, id)
	return result.RowsAffected > 0, result.Error
}
