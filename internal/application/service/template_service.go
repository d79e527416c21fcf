package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/minhducmx/banhang-api/internal/domain/entity"
	"github.com/minhducmx/banhang-api/internal/domain/repository"
	"github.com/minhducmx/banhang-api/pkg/apperror"
	"github.com/minhducmx/banhang-api/pkg/receipt"
)

// TemplateService manages receipt templates. Template content is stored
// as-is; tokens are resolved only at render time, so a bad token never
// breaks saving.
type TemplateService struct {
	templateRepo repository.TemplateRepository
}

// NewTemplateService creates a new template service
func NewTemplateService(templateRepo repository.TemplateRepository) *TemplateService {
	return &TemplateService{templateRepo: templateRepo}
}

func validPaperSize(s string) bool {
	switch receipt.Size(s) {
	case receipt.SizeA4, receipt.Size80m, receipt.Size57m:
		return true
	}
	return false
}

// CreateTemplateInput represents the create template input
type CreateTemplateInput struct {
	Name      string
	PaperSize string
	Content   string
	IsDefault bool
}

// CreateTemplate creates a new receipt template
func (s *TemplateService) CreateTemplate(ctx context.Context, input *CreateTemplateInput) (*entity.ReceiptTemplate, error) {
	if input.Name == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{{Field: "name", Message: "Name is required"}})
	}
	if !validPaperSize(input.PaperSize) {
		return nil, apperror.NewValidationError([]apperror.FieldError{{Field: "paper_size", Message: "Paper size must be a4, k80 or k57"}})
	}

	template := &entity.ReceiptTemplate{
		Name:      input.Name,
		PaperSize: input.PaperSize,
		Content:   input.Content,
	}
	if err := s.templateRepo.Create(ctx, template); err != nil {
		return nil, err
	}

	if input.IsDefault {
		if err := s.templateRepo.SetDefault(ctx, template.ID); err != nil {
			return nil, err
		}
		template.IsDefault = true
	}

	return template, nil
}

// GetTemplate retrieves a template by ID
func (s *TemplateService) GetTemplate(ctx context.Context, id uuid.UUID) (*entity.ReceiptTemplate, error) {
	template, err := s.templateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, apperror.NewNotFoundError("Receipt template")
	}
	return template, nil
}

// UpdateTemplateInput represents the update template input
type UpdateTemplateInput struct {
	Name      *string
	PaperSize *string
	Content   *string
}

// UpdateTemplate updates an existing template
func (s *TemplateService) UpdateTemplate(ctx context.Context, id uuid.UUID, input *UpdateTemplateInput) (*entity.ReceiptTemplate, error) {
	template, err := s.GetTemplate(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		template.Name = *input.Name
	}
	if input.PaperSize != nil {
		if !validPaperSize(*input.PaperSize) {
			return nil, apperror.NewValidationError([]apperror.FieldError{{Field: "paper_size", Message: "Paper size must be a4, k80 or k57"}})
		}
		template.PaperSize = *input.PaperSize
	}
	if input.Content != nil {
		template.Content = *input.Content
	}

	if err := s.templateRepo.Update(ctx, template); err != nil {
		return nil, err
	}

	return template, nil
}

// DeleteTemplate soft deletes a template
func (s *TemplateService) DeleteTemplate(ctx context.Context, id uuid.UUID) error {
	template, err := s.templateRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if template == nil {
		return apperror.NewNotFoundError("Receipt template")
	}
	if template.IsDefault {
		return apperror.NewBadRequestError("Cannot delete the default template for a paper size")
	}
	return s.templateRepo.Delete(ctx, id)
}

// ListTemplates retrieves all templates
func (s *TemplateService) ListTemplates(ctx context.Context) ([]entity.ReceiptTemplate, error) {
	return s.templateRepo.List(ctx)
}

// SetDefaultTemplate marks a template as the default for its paper size
func (s *TemplateService) SetDefaultTemplate(ctx context.Context, id uuid.UUID) error {
	template, err := s.templateRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if template == nil {
		return apperror.NewNotFoundError("Receipt template")
	}
	return s.templateRepo.SetDefault(ctx, id)
}
