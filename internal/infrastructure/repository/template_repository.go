package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/minhducmx/banhang-api/internal/domain/entity"
	domainRepo "github.com/minhducmx/banhang-api/internal/domain/repository"
	"gorm.io/gorm"
)

type templateRepository struct {
	db *gorm.DB
}

// NewTemplateRepository creates a new receipt template repository
func NewTemplateRepository(db *gorm.DB) domainRepo.TemplateRepository {
	return &templateRepository{db: db}
}

func (r *templateRepository) Create(ctx context.Context, template *entity.ReceiptTemplate) error {
	return r.db.WithContext(ctx).Create(template).Error
}

func (r *templateRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ReceiptTemplate, error) {
	var template entity.ReceiptTemplate
	err := r.db.WithContext(ctx).First(&template, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &template, err
}

func (r *templateRepository) GetDefault(ctx context.Context, paperSize string) (*entity.ReceiptTemplate, error) {
	var template entity.ReceiptTemplate
	err := r.db.WithContext(ctx).
		First(&template, "paper_size = ? AND is_default = ?", paperSize, true).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Fall back to any template for the size
		err = r.db.WithContext(ctx).First(&template, "paper_size = ?", paperSize).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
	}
	return &template, err
}

func (r *templateRepository) Update(ctx context.Context, template *entity.ReceiptTemplate) error {
	return r.db.WithContext(ctx).Save(template).Error
}

func (r *templateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.ReceiptTemplate{}, "id = ?", id).Error
}

func (r *templateRepository) List(ctx context.Context) ([]entity.ReceiptTemplate, error) {
	var templates []entity.ReceiptTemplate
	err := r.db.WithContext(ctx).Order("paper_size ASC, name ASC").Find(&templates).Error
	return templates, err
}

// SetDefault marks the template as default for its paper size, clearing the
// previous default in the same transaction.
func (r *templateRepository) SetDefault(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var template entity.ReceiptTemplate
		if err := tx.First(&template, "id = ?", id).Error; err != nil {
			return err
		}

		if err := tx.Model(&entity.ReceiptTemplate{}).
			Where("paper_size = ? AND is_default = ?", template.PaperSize, true).
			Update("is_default", false).Error; err != nil {
			return err
		}

		return tx.Model(&template).Update("is_default", true).Error
	})
}
