package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/minhducmx/banhang-api/internal/application/service"
	"github.com/minhducmx/banhang-api/internal/presentation/http/dto/request"
	"github.com/minhducmx/banhang-api/internal/presentation/http/dto/response"
)

// SettingsHandler handles store settings and receipt template requests
type SettingsHandler struct {
	settingsService *service.SettingsService
	templateService *service.TemplateService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService, templateService *service.TemplateService) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
		templateService: templateService,
	}
}

// Get returns the store settings
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings retrieved successfully", settings)
}

// Update updates the store settings
func (h *SettingsHandler) Update(c *gin.Context) {
	var req request.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), &service.UpdateSettingsInput{
		StoreName:        req.StoreName,
		StoreAddress:     req.StoreAddress,
		StorePhone:       req.StorePhone,
		TaxCode:          req.TaxCode,
		FooterNote:       req.FooterNote,
		BankID:           req.BankID,
		BankAccountNo:    req.BankAccountNo,
		BankAccountName:  req.BankAccountName,
		DefaultPaperSize: req.DefaultPaperSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings updated successfully", settings)
}

// ListTemplates returns all receipt templates
func (h *SettingsHandler) ListTemplates(c *gin.Context) {
	templates, err := h.templateService.ListTemplates(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Templates retrieved successfully", templates)
}

// GetTemplate returns a single template
func (h *SettingsHandler) GetTemplate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid template ID")
		return
	}

	template, err := h.templateService.GetTemplate(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Template retrieved successfully", template)
}

// CreateTemplate creates a receipt template
func (h *SettingsHandler) CreateTemplate(c *gin.Context) {
	var req request.CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	template, err := h.templateService.CreateTemplate(c.Request.Context(), &service.CreateTemplateInput{
		Name:      req.Name,
		PaperSize: req.PaperSize,
		Content:   req.Content,
		IsDefault: req.IsDefault,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Template created successfully", template)
}

// UpdateTemplate updates a receipt template
func (h *SettingsHandler) UpdateTemplate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid template ID")
		return
	}

	var req request.UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	template, err := h.templateService.UpdateTemplate(c.Request.Context(), id, &service.UpdateTemplateInput{
		Name:      req.Name,
		PaperSize: req.PaperSize,
		Content:   req.Content,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Template updated successfully", template)
}

// DeleteTemplate deletes a receipt template
func (h *SettingsHandler) DeleteTemplate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid template ID")
		return
	}

	if err := h.templateService.DeleteTemplate(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Template deleted successfully", nil)
}

// SetDefaultTemplate marks a template as default for its paper size
func (h *SettingsHandler) SetDefaultTemplate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid template ID")
		return
	}

	if err := h.templateService.SetDefaultTemplate(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Default template updated", nil)
}
