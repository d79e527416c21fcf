package service

import (
	"context"

	"github.com/minhducmx/banhang-api/internal/domain/entity"
	"github.com/minhducmx/banhang-api/internal/domain/repository"
	"github.com/minhducmx/banhang-api/pkg/apperror"
	"github.com/minhducmx/banhang-api/pkg/receipt"
)

// SettingsService handles store settings
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// GetSettings retrieves the store settings, creating defaults if not exists
func (s *SettingsService) GetSettings(ctx context.Context) (*entity.StoreSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	if settings == nil {
		settings = &entity.StoreSettings{
			StoreName:        "Cửa hàng",
			FooterNote:       "Cảm ơn quý khách!",
			DefaultPaperSize: string(receipt.Size80m),
		}
		if err := s.settingsRepo.Create(ctx, settings); err != nil {
			return nil, err
		}
	}

	return settings, nil
}

// UpdateSettingsInput represents the input for updating store settings
type UpdateSettingsInput struct {
	StoreName        *string
	StoreAddress     *string
	StorePhone       *string
	TaxCode          *string
	FooterNote       *string
	BankID           *string
	BankAccountNo    *string
	BankAccountName  *string
	DefaultPaperSize *string
}

// UpdateSettings updates the store settings
func (s *SettingsService) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*entity.StoreSettings, error) {
	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	if input.StoreName != nil {
		if *input.StoreName == "" {
			return nil, apperror.NewValidationError([]apperror.FieldError{{Field: "store_name", Message: "Store name is required"}})
		}
		settings.StoreName = *input.StoreName
	}
	if input.StoreAddress != nil {
		settings.StoreAddress = *input.StoreAddress
	}
	if input.StorePhone != nil {
		settings.StorePhone = *input.StorePhone
	}
	if input.TaxCode != nil {
		settings.TaxCode = *input.TaxCode
	}
	if input.FooterNote != nil {
		settings.FooterNote = *input.FooterNote
	}
	if input.BankID != nil {
		settings.BankID = *input.BankID
	}
	if input.BankAccountNo != nil {
		settings.BankAccountNo = *input.BankAccountNo
	}
	if input.BankAccountName != nil {
		settings.BankAccountName = *input.BankAccountName
	}
	if input.DefaultPaperSize != nil {
		switch receipt.Size(*input.DefaultPaperSize) {
		case receipt.SizeA4, receipt.Size80m, receipt.Size57m:
			settings.DefaultPaperSize = *input.DefaultPaperSize
		default:
			return nil, apperror.NewValidationError([]apperror.FieldError{{Field: "default_paper_size", Message: "Paper size must be a4, k80 or k57"}})
		}
	}

	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, err
	}

	return settings, nil
}
