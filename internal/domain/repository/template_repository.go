package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/minhducmx/banhang-api/internal/domain/entity"
)

// TemplateRepository defines the interface for receipt template access
type TemplateRepository interface {
	Create(ctx context.Context, template *entity.ReceiptTemplate) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ReceiptTemplate, error)
	GetDefault(ctx context.Context, paperSize string) (*entity.ReceiptTemplate, error)
	Update(ctx context.Context, template *entity.ReceiptTemplate) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]entity.ReceiptTemplate, error)
	SetDefault(ctx context.Context, id uuid.UUID) error
}
