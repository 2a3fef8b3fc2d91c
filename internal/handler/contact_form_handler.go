package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/autodrive/catalogo-api/internal/service"
	appErrors "github.com/autodrive/catalogo-api/pkg/errors"
	"github.com/autodrive/catalogo-api/pkg/response"
)

// ContactFormHandler exposes lead submission and export endpoints.
type ContactFormHandler struct {
	forms   *service.ContactFormService
	exports *service.ExportService
}

// NewContactFormHandler constructs ContactFormHandler. exports may be nil
// when the export endpoint is disabled.
func NewContactFormHandler(forms *service.ContactFormService, exports *service.ExportService) *ContactFormHandler {
	return &ContactFormHandler{forms: forms, exports: exports}
}

// Create godoc
// @Summary Submit a contact form for a vehicle
// @Tags ContactForm
// @Accept json
// @Produce json
// @Param payload body service.CreateContactFormRequest true "Lead payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 429 {object} response.Envelope
// @Router /external/contact-form [post]
func (h *ContactFormHandler) Create(c *gin.Context) {
	var req service.CreateContactFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalidPayload"))
		return
	}

	receipt, err := h.forms.Submit(c.Request.Context(), req, c.ClientIP())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, receipt)
}

// Export godoc
// @Summary Export received leads
// @Tags ContactForm
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} file
// @Router /internal/contact-form/export [get]
func (h *ContactFormHandler) Export(c *gin.Context) {
	if h.exports == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "exportDisabled"))
		return
	}

	result, err := h.exports.Generate(c.Request.Context(), c.DefaultQuery("format", service.ExportFormatCSV))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(http.StatusOK, result.ContentType, result.Content)
}
