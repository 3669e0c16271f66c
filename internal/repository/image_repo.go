package repository

import (
	"context"
	"errors"

	"getexposure/internal/entity"

	"gorm.io/gorm"
)

type ImageRepository interface {
	List(ctx context.Context) ([]entity.GeneralImage, error)
	FindByID(ctx context.Context, id uint) (*entity.GeneralImage, error)
	Create(ctx context.Context, image *entity.GeneralImage) error
	Delete(ctx context.Context, id uint) (bool, error)
}

type imageRepository struct {
	db *gorm.DB
}

func NewImageRepository(db *gorm.DB) ImageRepository {
	return &imageRepository{db: db}
}

func (r *imageRepository) List(ctx context.Context) ([]entity.GeneralImage, error) {
	var images []entity.GeneralImage
	err := r.db.WithContext(ctx).Order("created_at desc").Find(&images).Error
	return images, err
}

func (r *imageRepository) FindByID(ctx context.Context, id uint) (*entity.GeneralImage, error) {
	var image entity.GeneralImage
	err := r.db.WithContext(ctx).First(&image, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &image, err
}

func (r *imageRepository) Create(ctx context.Context, image *entity.GeneralImage) error {
	return r.db.WithContext(ctx).Create(image).Error
}

func (r *imageRepository) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&entity.GeneralImage{}, id)
	return result.RowsAffected > 0, result.Error
}
