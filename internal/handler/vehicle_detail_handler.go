package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/autodrive/catalogo-api/internal/service"
	appErrors "github.com/autodrive/catalogo-api/pkg/errors"
	"github.com/autodrive/catalogo-api/pkg/response"
)

// VehicleDetailHandler exposes the vehicle detail endpoint.
type VehicleDetailHandler struct {
	details *service.VehicleDetailService
}

// NewVehicleDetailHandler constructs VehicleDetailHandler.
func NewVehicleDetailHandler(details *service.VehicleDetailService) *VehicleDetailHandler {
	return &VehicleDetailHandler{details: details}
}

// Get godoc
// @Summary Get complete vehicle details
// @Tags Vehicles
// @Produce json
// @Param id path int true "Vehicle ID"
// @Success 200 {object} response.Envelope
// @Router /internal/vehicle-detail/{id} [get]
func (h *VehicleDetailHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalidVehicleId"))
		return
	}

	detail, err := h.details.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, detail, nil)
}
