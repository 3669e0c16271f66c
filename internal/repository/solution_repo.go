package repository

import (
	"context"
	"errors"

	"getexposure/internal/entity"

	"gorm.io/gorm"
)

type SolutionRepository interface {
	List(ctx context.Context) ([]entity.SolutionType, error)
	FindByID(ctx context.Context, id uint) (*entity.SolutionType, error)
	FindBySlug(ctx context.Context, slug string) (*entity.SolutionType, error)
	Create(ctx context.Context, solution *entity.SolutionType) error
	Update(ctx context.Context, id uint, fields map[string]any) (*entity.SolutionType, error)
	Delete(ctx context.Context, id uint) (bool, error)

	CreateStep(ctx context.Context, step *entity.SolutionStep) error
	FindStepByID(ctx context.Context, id uint) (*entity.SolutionStep, error)
	UpdateStep(ctx context.Context, id uint, fields map[string]any) (*entity.SolutionStep, error)
	DeleteStep(ctx context.Context, id uint) (bool, error)
}

type solutionRepository struct {
	db *gorm.DB
}

func NewSolutionRepository(db *gorm.DB) SolutionRepository {
	return &solutionRepository{db: db}
}

func orderedSteps(db *gorm.DB) *gorm.DB {
	return db.Order("step_order asc, id asc")
}

func (r *solutionRepository) List(ctx context.Context) ([]entity.SolutionType, error) {
	var solutions []entity.SolutionType
	err := r.db.WithContext(ctx).
		Preload("Steps", orderedSteps).
		Order("id asc").
		Find(&solutions).Error
	return solutions, err
}

func (r *solutionRepository) FindByID(ctx context.Context, id uint) (*entity.SolutionType, error) {
	var solution entity.SolutionType
	err := r.db.WithContext(ctx).Preload("Steps", orderedSteps).First(&solution, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &solution, err
}

func (r *solutionRepository) FindBySlug(ctx context.Context, slug string) (*entity.SolutionType, error) {
	var solution entity.SolutionType
	err := r.db.WithContext(ctx).
		Preload("Steps", orderedSteps).
		Where("slug = ?", slug).
		First(&solution).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &solution, err
}

func (r *solutionRepository) Create(ctx context.Context, solution *entity.SolutionType) error {
	return r.db.WithContext(ctx).Create(solution).Error
}

func (r *solutionRepository) Update(ctx context.Context, id uint, fields map[string]any) (*entity.SolutionType, error) {
	solution, err := r.FindByID(ctx, id)
	if err != nil || solution == nil {
		return nil, err
	}
	if len(fields) > 0 {
		if err := r.db.WithContext(ctx).Model(solution).Updates(fields).Error; err != nil {
			return nil, err
		}
	}
	return solution, nil
}

// Delete removes a solution type; the steps go with it through the
// ON DELETE CASCADE foreign key, not application code.
func (r *solutionRepository) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&entity.SolutionType{}, id)
	return result.RowsAffected > 0, result.Error
}

func (r *solutionRepository) CreateStep(ctx context.Context, step *entity.SolutionStep) error {
	return r.db.WithContext(ctx).Create(step).Error
}

func (r *solutionRepository) FindStepByID(ctx context.Context, id uint) (*entity.SolutionStep, error) {
	var step entity.SolutionStep
	err := r.db.WithContext(ctx).First(&step, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &step, err
}

func (r *solutionRepository) UpdateStep(ctx context.Context, id uint, fields map[string]any) (*entity.SolutionStep, error) {
	step, err := r.FindStepByID(ctx, id)
	if err != nil || step == nil {
		return nil, err
	}
	if len(fields) > 0 {
		if err := r.db.WithContext(ctx).Model(step).Updates(fields).Error; err != nil {
			return nil, err
		}
	}
	return step, nil
}

func (r *solutionRepository) DeleteStep(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&entity.SolutionStep{}, id)
	return result.RowsAffected > 0, result.Error
}
