package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/autodrive/catalogo-api/internal/models"
	"github.com/autodrive/catalogo-api/internal/repository"
	"github.com/autodrive/catalogo-api/internal/service"
	appErrors "github.com/autodrive/catalogo-api/pkg/errors"
)

func newDetailTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := service.NewVehicleDetailService(repository.NewMemoryVehicleDetailRepository(nil), zap.NewNop())
	h := NewVehicleDetailHandler(svc)

	r := gin.New()
	r.GET("/internal/vehicle-detail/:id", h.Get)
	return r
}

func TestVehicleDetailHandlerGet(t *testing.T) {
	r := newDetailTestRouter()

	w, env := doGet(t, r, "/internal/vehicle-detail/1")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)

	var detail models.VehicleDetailResponse
	require.NoError(t, json.Unmarshal(env.Data, &detail))
	assert.Equal(t, 1, detail.Vehicle.IDVehicle)
	assert.Equal(t, "Civic", detail.Vehicle.Modelo)
}

func TestVehicleDetailHandlerInvalidID(t *testing.T) {
	r := newDetailTestRouter()

	for _, raw := range []string{"abc", "0", "-1"} {
		w := httptest.NewRecorder()
		req, err := http.NewRequest(http.MethodGet, "/internal/vehicle-detail/"+raw, nil)
		require.NoError(t, err)
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusBadRequest, w.Code)

		var env envelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		require.NotNil(t, env.Error)
		assert.Equal(t, appErrors.ErrValidation.Code, env.Error.Code)
		assert.Equal(t, "invalidVehicleId", env.Error.Message)
	}
}

func TestVehicleDetailHandlerNotFound(t *testing.T) {
	r := newDetailTestRouter()

	w, env := doGet(t, r, "/internal/vehicle-detail/999")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "vehicleNotFound", env.Error.Message)
}
