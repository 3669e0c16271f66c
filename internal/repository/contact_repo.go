package repository

import (
	"context"
	"errors"

	"getexposure/internal/entity"

	"gorm.io/gorm"
)

// ContactContentRepository exposes the contact page copy as a named singleton.
type ContactContentRepository interface {
	Get(ctx context.Context) (*entity.ContactContent, error)
	Put(ctx context.Context, content *entity.ContactContent) error
}

type contactContentRepository struct {
	db *gorm.DB
}

func NewContactContentRepository(db *gorm.DB) ContactContentRepository {
	return &contactContentRepository{db: db}
}

func (r *contactContentRepository) Get(ctx context.Context) (*entity.ContactContent, error) {
	var content entity.ContactContent
	err := r.db.WithContext(ctx).Order("id asc").First(&content).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &content, err
}

func (r *contactContentRepository) Put(ctx context.Context, content *entity.ContactContent) error {
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

type ContactInfoRepository interface {
	ListByType(ctx context.Context, infoType entity.ContactInfoType, activeOnly bool) ([]entity.ContactInfo, error)
	Create(ctx context.Context, item *entity.ContactInfo) error
	Update(ctx context.Context, id uint, fields map[string]any) (*entity.ContactInfo, error)
	Delete(ctx context.Context, id uint) (bool, error)
}

type contactInfoRepository struct {
	db *gorm.DB
}

func NewContactInfoRepository(db *gorm.DB) ContactInfoRepository {
	return &contactInfoRepository{db: db}
}

func (r *contactInfoRepository) ListByType(ctx context.Context, infoType entity.ContactInfoType, activeOnly bool) ([]entity.ContactInfo, error) {
	var items []entity.ContactInfo
	query := r.db.WithContext(ctx).
		Where("type = ?", infoType).
		Order("display_order asc, id asc")
	if activeOnly {
		query = query.Where("is_active = true")
	}
	err := query.Find(&items).Error
	return items, err
}

func (r *contactInfoRepository) Create(ctx context.Context, item *entity.ContactInfo) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *contactInfoRepository) Update(ctx context.Context, id uint, fields map[string]any) (*entity.ContactInfo, error) {
	var item entity.ContactInfo
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

func (r *contactInfoRepository) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&entity.ContactInfo{}, id)
	return result.RowsAffected > 0, result.Error
}
