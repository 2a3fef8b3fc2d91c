package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/autodrive/catalogo-api/internal/models"
)

// PostgresVehicleRepository reads the catalog from PostgreSQL. Filtering and
// sorting stay in the query engine, so the store only hands over snapshots.
type PostgresVehicleRepository struct {
	db *sqlx.DB
}

// NewPostgresVehicleRepository constructs a PostgresVehicleRepository.
func NewPostgresVehicleRepository(db *sqlx.DB) *PostgresVehicleRepository {
	return &PostgresVehicleRepository{db: db}
}

// List returns the full collection in insertion order.
func (r *PostgresVehicleRepository) List(ctx context.Context) ([]models.Vehicle, error) {
	const query = `SELECT id, modelo, marca, ano, preco, imagem_principal, quilometragem, cambio FROM vehicles ORDER BY id`
	var vehicles []models.Vehicle
	if err := r.db.SelectContext(ctx, &vehicles, query); err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	return vehicles, nil
}

// FindByID fetches a vehicle by ID.
func (r *PostgresVehicleRepository) FindByID(ctx context.Context, id int) (*models.Vehicle, error) {
	const query = `SELECT id, modelo, marca, ano, preco, imagem_principal, quilometragem, cambio FROM vehicles WHERE id = $1`
	var vehicle models.Vehicle
	if err := r.db.GetContext(ctx, &vehicle, query, id); err != nil {
		return nil, err
	}
	return &vehicle, nil
}
