package repository

import (
	"context"
	"errors"

	"getexposure/internal/entity"

	"gorm.io/gorm"
)

// HomeContentRepository exposes the home page copy as a named singleton.
// Put creates the row on first write and updates it afterwards.
type HomeContentRepository interface {
	Get(ctx context.Context) (*entity.HomeContent, error)
	Put(ctx context.Context, content *entity.HomeContent) error
}

type homeContentRepository struct {
	db *gorm.DB
}

func NewHomeContentRepository(db *gorm.DB) HomeContentRepository {
	return &homeContentRepository{db: db}
}

func (r *homeContentRepository) Get(ctx context.Context) (*entity.HomeContent, error) {
	var content entity.HomeContent
	err := r.db.WithContext(ctx).Order("id asc").First(&content).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &content, err
}

func (r *homeContentRepository) Put(ctx context.Context, content *entity.HomeContent) error {
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
