package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/autodrive/catalogo-api/internal/repository"
	appErrors "github.com/autodrive/catalogo-api/pkg/errors"
)

func TestVehicleDetailGet(t *testing.T) {
	svc := NewVehicleDetailService(repository.NewMemoryVehicleDetailRepository(nil), zap.NewNop())

	detail, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, detail.Vehicle.IDVehicle)
	assert.Equal(t, "Civic", detail.Vehicle.Modelo)
	assert.Equal(t, "Honda", detail.Vehicle.Marca)
	assert.NotEmpty(t, detail.Photos)
	assert.NotEmpty(t, detail.Items)
}

func TestVehicleDetailGetNotFound(t *testing.T) {
	svc := NewVehicleDetailService(repository.NewMemoryVehicleDetailRepository(nil), zap.NewNop())

	_, err := svc.Get(context.Background(), 999)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
	assert.Equal(t, "vehicleNotFound", appErr.Message)
}
