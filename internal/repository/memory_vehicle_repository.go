package repository

import (
	"context"
	"database/sql"
	"sync"

	"github.com/autodrive/catalogo-api/internal/models"
)

// MemoryVehicleRepository serves the catalog from an in-memory reference
// list. The collection is append-only in principle and never mutated after
// construction; reads hand out snapshot copies so callers can filter and
// sort freely.
type MemoryVehicleRepository struct {
	mu       sync.RWMutex
	vehicles []models.Vehicle
}

// NewMemoryVehicleRepository builds a repository over the given collection.
// Passing nil seeds the default catalog.
func NewMemoryVehicleRepository(vehicles []models.Vehicle) *MemoryVehicleRepository {
	if vehicles == nil {
		vehicles = SeedVehicles()
	}
	return &MemoryVehicleRepository{vehicles: vehicles}
}

// List returns a snapshot of the full collection in insertion order.
func (r *MemoryVehicleRepository) List(ctx context.Context) ([]models.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	snapshot := make([]models.Vehicle, len(r.vehicles))
	copy(snapshot, r.vehicles)
	return snapshot, nil
}

// FindByID returns the vehicle with the given identifier or sql.ErrNoRows.
func (r *MemoryVehicleRepository) FindByID(ctx context.Context, id int) (*models.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, v := range r.vehicles {
		if v.ID == id {
			found := v
			return &found, nil
		}
	}
	return nil, sql.ErrNoRows
}

func intPtr(v int) *int { return &v }

func cambioPtr(c models.Cambio) *models.Cambio { return &c }

// SeedVehicles returns the mock catalog used until a real inventory feed
// replaces it.
func SeedVehicles() []models.Vehicle {
	return []models.Vehicle{
		{
			ID:              1,
			Modelo:          "Civic",
			Marca:           "Honda",
			Ano:             2023,
			Preco:           145000,
			ImagemPrincipal: "https://example.com/civic.jpg",
			Quilometragem:   intPtr(5000),
			Cambio:          cambioPtr(models.CambioAutomatico),
		},
		{
			ID:              2,
			Modelo:          "Corolla",
			Marca:           "Toyota",
			Ano:             2022,
			Preco:           135000,
			ImagemPrincipal: "https://example.com/corolla.jpg",
			Quilometragem:   intPtr(15000),
			Cambio:          cambioPtr(models.CambioCVT),
		},
		{
			ID:              3,
			Modelo:          "Onix",
			Marca:           "Chevrolet",
			Ano:             2023,
			Preco:           85000,
			ImagemPrincipal: "https://example.com/onix.jpg",
			Quilometragem:   intPtr(2000),
			Cambio:          cambioPtr(models.CambioManual),
		},
		{
			ID:              4,
			Modelo:          "HB20",
			Marca:           "Hyundai",
			Ano:             2021,
			Preco:           75000,
			ImagemPrincipal: "https://example.com/hb20.jpg",
			Quilometragem:   intPtr(30000),
			Cambio:          cambioPtr(models.CambioManual),
		},
		{
			ID:              5,
			Modelo:          "Compass",
			Marca:           "Jeep",
			Ano:             2023,
			Preco:           185000,
			ImagemPrincipal: "https://example.com/compass.jpg",
			Quilometragem:   intPtr(8000),
			Cambio:          cambioPtr(models.CambioAutomatico),
		},
	}
}
