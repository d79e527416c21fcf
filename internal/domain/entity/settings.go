package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StoreSettings is the single-row store configuration consumed by the receipt
// context builder and the payment QR builder.
type StoreSettings struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Store identity printed on receipts
	StoreName    string `gorm:"size:255;default:'Cửa hàng'" json:"store_name"`
	StoreAddress string `gorm:"size:500" json:"store_address"`
	StorePhone   string `gorm:"size:50" json:"store_phone"`
	TaxCode      string `gorm:"size:50" json:"tax_code"`
	FooterNote   string `gorm:"size:500;default:'Cảm ơn quý khách!'" json:"footer_note"`

	// Bank account for transfer-payment QR codes
	BankID          string `gorm:"size:50" json:"bank_id"`
	BankAccountNo   string `gorm:"size:50" json:"bank_account_no"`
	BankAccountName string `gorm:"size:255" json:"bank_account_name"`

	// Default receipt paper size: a4, k80 or k57
	DefaultPaperSize string `gorm:"size:10;default:'k80'" json:"default_paper_size"`
}

// BeforeCreate generates a UUID before creating new settings
func (s *StoreSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the StoreSettings model
func (StoreSettings) TableName() string {
	return "store_settings"
}
