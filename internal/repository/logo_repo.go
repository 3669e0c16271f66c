package repository

import (
	"context"
	"errors"

	"getexposure/internal/entity"

	"gorm.io/gorm"
)

type LogoRepository interface {
	List(ctx context.Context, activeOnly bool) ([]entity.LogoImage, error)
	FindByID(ctx context.Context, id uint) (*entity.LogoImage, error)
	Create(ctx context.Context, logo *entity.LogoImage) error
	Update(ctx context.Context, id uint, fields map[string]any) (*entity.LogoImage, error)
	Delete(ctx context.Context, id uint) (bool, error)
}

type logoRepository struct {
	db *gorm.DB
}

func NewLogoRepository(db *gorm.DB) LogoRepository {
	return &logoRepository{db: db}
}

func (r *logoRepository) List(ctx context.Context, activeOnly bool) ([]entity.LogoImage, error) {
	var logos []entity.LogoImage
	query := r.db.WithContext(ctx).Order("display_order asc, id asc")
	if activeOnly {
		query = query.Where("is_active = true")
	}
	err := query.Find(&logos).Error
	return logos, err
}

func (r *logoRepository) FindByID(ctx context.Context, id uint) (*entity.LogoImage, error) {
	var logo entity.LogoImage
	err := r.db.WithContext(ctx).First(&logo, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &logo, err
}

func (r *logoRepository) Create(ctx context.Context, logo *entity.LogoImage) error {
	return r.db.WithContext(ctx).Create(logo).Error
}

func (r *logoRepository) Update(ctx context.Context, id uint, fields map[string]any) (*entity.LogoImage, error) {
	logo, err := r.FindByID(ctx, id)
	if err != nil || logo == nil {
		return nil, err
	}
	if len(fields) > 0 {
		if err := r.db.WithContext(ctx).Model(logo).Updates(fields).Error; err != nil {
			return nil, err
		}
	}
	return logo, nil
}

func (r *logoRepository) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&entity.LogoImage{}, id)
	return result.RowsAffected > 0, result.Error
}
