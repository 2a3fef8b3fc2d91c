package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/autodrive/catalogo-api/internal/models"
	"github.com/autodrive/catalogo-api/internal/service"
	appErrors "github.com/autodrive/catalogo-api/pkg/errors"
	"github.com/autodrive/catalogo-api/pkg/response"
)

// VehicleHandler exposes the catalog listing endpoints.
type VehicleHandler struct {
	catalog *service.CatalogService
}

// NewVehicleHandler constructs VehicleHandler.
func NewVehicleHandler(catalog *service.CatalogService) *VehicleHandler {
	return &VehicleHandler{catalog: catalog}
}

// List godoc
// @Summary List vehicles
// @Tags Vehicles
// @Produce json
// @Param page query int false "Page number"
// @Param pageSize query int false "Items per page (12, 24, 36, 48)"
// @Param marcas query string false "Comma-separated brand names"
// @Param modelos query string false "Comma-separated model names"
// @Param anoMin query int false "Minimum year"
// @Param anoMax query int false "Maximum year"
// @Param precoMin query number false "Minimum price"
// @Param precoMax query number false "Maximum price"
// @Param cambios query string false "Comma-separated transmission types"
// @Param sortOrder query string false "relevancia, preco_asc, preco_desc, ano_desc, ano_asc, modelo_asc, modelo_desc"
// @Success 200 {object} response.Envelope
// @Router /internal/vehicle [get]
func (h *VehicleHandler) List(c *gin.Context) {
	page := 1
	if v, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil {
		page = v
	}
	pageSize := 12
	if v, err := strconv.Atoi(c.DefaultQuery("pageSize", "12")); err == nil {
		pageSize = v
	}

	if !models.PageSizeAllowed(pageSize) {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "pageSizeMustBe12_24_36_or48"))
		return
	}
	if page < 1 {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "pageMustBeGreaterThanZero"))
		return
	}

	params := models.VehicleListParams{
		Page:      page,
		PageSize:  pageSize,
		SortOrder: models.ParseSortOrder(c.Query("sortOrder")),
	}

	params.Filters.Marcas = splitList(c.Query("marcas"))
	params.Filters.Modelos = splitList(c.Query("modelos"))
	params.Filters.Cambios = splitList(c.Query("cambios"))

	if raw := c.Query("anoMin"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			params.Filters.AnoMin = &v
		}
	}
	if raw := c.Query("anoMax"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			params.Filters.AnoMax = &v
		}
	}
	if raw := c.Query("precoMin"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			params.Filters.PrecoMin = &v
		}
	}
	if raw := c.Query("precoMax"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			params.Filters.PrecoMax = &v
		}
	}

	if params.Filters.AnoMin != nil && params.Filters.AnoMax != nil && *params.Filters.AnoMin > *params.Filters.AnoMax {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "anoMinCannotBeGreaterThanAnoMax"))
		return
	}
	if params.Filters.PrecoMin != nil && params.Filters.PrecoMax != nil && *params.Filters.PrecoMin > *params.Filters.PrecoMax {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "precoMinCannotBeGreaterThanPrecoMax"))
		return
	}

	result, err := h.catalog.List(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, &response.Meta{
		Page:     result.Page,
		PageSize: result.PageSize,
		Total:    result.Total,
	})
}

// FilterOptions godoc
// @Summary Get available filter options
// @Tags Vehicles
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /internal/vehicle/filter-options [get]
func (h *VehicleHandler) FilterOptions(c *gin.Context) {
	options, err := h.catalog.FilterOptions(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, options, nil)
}

// ModelosByMarcas godoc
// @Summary Get models filtered by selected brands
// @Tags Vehicles
// @Produce json
// @Param marcas query string false "Comma-separated brand names"
// @Success 200 {object} response.Envelope
// @Router /internal/vehicle/modelos-by-marcas [get]
func (h *VehicleHandler) ModelosByMarcas(c *gin.Context) {
	modelos, err := h.catalog.ModelosByMarcas(c.Request.Context(), splitList(c.Query("marcas")))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"modelos": modelos}, nil)
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}
