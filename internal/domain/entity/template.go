package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReceiptTemplate is a user-editable receipt layout: literal markup plus
// placeholder tokens like (Ten_Cua_Hang) and one alternation form
// (Da_Thanh_Toan A|B). One template per paper size may be the default.
type ReceiptTemplate struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	PaperSize string         `gorm:"size:10;not null;index" json:"paper_size"` // a4, k80, k57
	Content   string         `gorm:"type:text;not null" json:"content"`
	IsDefault bool           `gorm:"default:false;index" json:"is_default"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new template
func (t *ReceiptTemplate) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ReceiptTemplate model
func (ReceiptTemplate) TableName() string {
	return "receipt_templates"
}
