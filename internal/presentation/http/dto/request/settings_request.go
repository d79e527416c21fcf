package request

// UpdateSettingsRequest represents a store settings update request
type UpdateSettingsRequest struct {
	StoreName        *string `json:"store_name" binding:"omitempty,min=1,max=255"`
	StoreAddress     *string `json:"store_address" binding:"omitempty,max=500"`
	StorePhone       *string `json:"store_phone" binding:"omitempty,max=50"`
	TaxCode          *string `json:"tax_code" binding:"omitempty,max=50"`
	FooterNote       *string `json:"footer_note" binding:"omitempty,max=500"`
	BankID           *string `json:"bank_id" binding:"omitempty,max=50"`
	BankAccountNo    *string `json:"bank_account_no" binding:"omitempty,max=50"`
	BankAccountName  *string `json:"bank_account_name" binding:"omitempty,max=255"`
	DefaultPaperSize *string `json:"default_paper_size" binding:"omitempty,oneof=a4 k80 k57"`
}

// CreateTemplateRequest represents a receipt template creation request
type CreateTemplateRequest struct {
	Name      string `json:"name" binding:"required,min=1,max=255"`
	PaperSize string `json:"paper_size" binding:"required,oneof=a4 k80 k57"`
	Content   string `json:"content" binding:"required"`
	IsDefault bool   `json:"is_default"`
}

// UpdateTemplateRequest represents a receipt template update request
type UpdateTemplateRequest struct {
	Name      *string `json:"name" binding:"omitempty,min=1,max=255"`
	PaperSize *string `json:"paper_size" binding:"omitempty,oneof=a4 k80 k57"`
	Content   *string `json:"content"`
}
