package repository

import (
	"context"

	"github.com/minhducmx/banhang-api/internal/domain/entity"
)

// SettingsRepository defines the interface for store settings access.
// The store has exactly one settings row.
type SettingsRepository interface {
	Get(ctx context.Context) (*entity.StoreSettings, error)
	Create(ctx context.Context, settings *entity.StoreSettings) error
	Update(ctx context.Context, settings *entity.StoreSettings) error
}
