package repository

import (
	"context"
	"errors"

	"getexposure/internal/entity"

	"gorm.io/gorm"
)

type CaseStudyRepository interface {
	List(ctx context.Context, publishedOnly bool) ([]entity.CaseStudy, error)
	FindByID(ctx context.Context, id uint) (*entity.CaseStudy, error)
	Create(ctx context.Context, study *entity.CaseStudy) error
	Update(ctx context.Context, id uint, fields map[string]any) (*entity.CaseStudy, error)
	Delete(ctx context.Context, id uint) (bool, error)
}

type caseStudyRepository struct {
	db *gorm.DB
}

func NewCaseStudyRepository(db *gorm.DB) CaseStudyRepository {
	return &caseStudyRepository{db: db}
}

func (r *caseStudyRepository) List(ctx context.Context, publishedOnly bool) ([]entity.CaseStudy, error) {
	var studies []entity.CaseStudy
	query := r.db.WithContext(ctx).Order("display_order asc, id asc")
	if publishedOnly {
		query = query.Where("is_published = true")
	}
	err := query.Find(&studies).Error
	return studies, err
}

func (r *caseStudyRepository) FindByID(ctx context.Context, id uint) (*entity.CaseStudy, error) {
	var study entity.CaseStudy
	err := r.db.WithContext(ctx).First(&study, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &study, err
}

func (r *caseStudyRepository) Create(ctx context.Context, study *entity.CaseStudy) error {
	return r.db.WithContext(ctx).Create(study).Error
}

func (r *caseStudyRepository) Update(ctx context.Context, id uint, fields map[string]any) (*entity.CaseStudy, error) {
	study, err := r.FindByID(ctx, id)
	if err != nil || study == nil {
		return nil, err
	}
	if len(fields) > 0 {
		if err := r.db.WithContext(ctx).Model(study).Updates(fields).Error; err != nil {
			return nil, err
		}
	}
	return study, nil
}

func (r *caseStudyRepository) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&entity.CaseStudy{}, id)
	return result.RowsAffected > 0, result.Error
}
