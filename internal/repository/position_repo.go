package repository

import (
	"context"
	"errors"

	"getexposure/internal/entity"

	"gorm.io/gorm"
)

type PositionRepository interface {
	List(ctx context.Context) ([]entity.Position, error)
	FindByID(ctx context.Context, id uint) (*entity.Position, error)
	Create(ctx context.Context, position *entity.Position) error
	Update(ctx context.Context, id uint, fields map[string]any) (*entity.Position, error)
	Delete(ctx context.Context, id uint) (bool, error)
}

type positionRepository struct {
	db *gorm.DB
}

func NewPositionRepository(db *gorm.DB) PositionRepository {
	return &positionRepository{db: db}
}

func (r *positionRepository) List(ctx context.Context) ([]entity.Position, error) {
	var positions []entity.Position
	err := r.db.WithContext(ctx).
		Order("display_order asc, id asc").
		Find(&positions).Error
	return positions, err
}

func (r *positionRepository) FindByID(ctx context.Context, id uint) (*entity.Position, error) {
	var position entity.Position
	err := r.db.WithContext(ctx).First(&position, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &position, err
}

func (r *positionRepository) Create(ctx context.Context, position *entity.Position) error {
	return r.db.WithContext(ctx).Create(position).Error
}

func (r *positionRepository) Update(ctx context.Context, id uint, fields map[string]any) (*entity.Position, error) {
	position, err := r.FindByID(ctx, id)
	if err != nil || position == nil {
		return nil, err
	}
	if len(fields) > 0 {
		if err := r.db.WithContext(ctx).Model(position).Updates(fields).Error; err != nil {
			return nil, err
		}
	}
	return position, nil
}

func (r *positionRepository) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&entity.Position{}, id)
	return result.RowsAffected > 0, result.Error
}
