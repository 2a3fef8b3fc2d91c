package service

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	"github.com/autodrive/catalogo-api/internal/models"
	appErrors "github.com/autodrive/catalogo-api/pkg/errors"
)

type vehicleDetailRepository interface {
	FindByVehicleID(ctx context.Context, id int) (*models.VehicleDetailResponse, error)
}

// VehicleDetailService serves the full detail aggregate for a vehicle.
type VehicleDetailService struct {
	repo   vehicleDetailRepository
	logger *zap.Logger
}

// NewVehicleDetailService constructs the detail service.
func NewVehicleDetailService(repo vehicleDetailRepository, logger *zap.Logger) *VehicleDetailService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &VehicleDetailService{repo: repo, logger: logger}
}

// Get returns the detail aggregate for the given vehicle identifier.
func (s *VehicleDetailService) Get(ctx context.Context, id int) (*models.VehicleDetailResponse, error) {
	detail, err := s.repo.FindByVehicleID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "vehicleNotFound")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load vehicle detail")
	}
	return detail, nil
}
