package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "postgres")
	return sqlxDB, mock, func() {
		sqlxDB.Close()
		db.Close()
	}
}

func vehicleColumns() []string {
	return []string{"id", "modelo", "marca", "ano", "preco", "imagem_principal", "quilometragem", "cambio"}
}

func TestPostgresVehicleRepositoryList(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewPostgresVehicleRepository(db)
	rows := sqlmock.NewRows(vehicleColumns()).
		AddRow(1, "Civic", "Honda", 2023, 145000.0, "https://example.com/civic.jpg", 5000, "Automático").
		AddRow(2, "Corolla", "Toyota", 2022, 135000.0, "https://example.com/corolla.jpg", 15000, "CVT")
	mock.ExpectQuery("SELECT id, modelo, marca").WillReturnRows(rows)

	vehicles, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, vehicles, 2)
	assert.Equal(t, "Civic", vehicles[0].Modelo)
	assert.Equal(t, "Toyota", vehicles[1].Marca)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresVehicleRepositoryListNullCambio(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewPostgresVehicleRepository(db)
	rows := sqlmock.NewRows(vehicleColumns()).
		AddRow(1, "Civic", "Honda", 2023, 145000.0, "https://example.com/civic.jpg", nil, nil)
	mock.ExpectQuery("SELECT id, modelo, marca").WillReturnRows(rows)

	vehicles, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, vehicles, 1)
	assert.Nil(t, vehicles[0].Cambio)
	assert.Nil(t, vehicles[0].Quilometragem)
}

func TestPostgresVehicleRepositoryFindByID(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewPostgresVehicleRepository(db)
	rows := sqlmock.NewRows(vehicleColumns()).
		AddRow(1, "Civic", "Honda", 2023, 145000.0, "https://example.com/civic.jpg", 5000, "Automático")
	mock.ExpectQuery("SELECT id, modelo, marca").WithArgs(1).WillReturnRows(rows)

	vehicle, err := repo.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Civic", vehicle.Modelo)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresVehicleRepositoryFindByIDNotFound(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewPostgresVehicleRepository(db)
	mock.ExpectQuery("SELECT id, modelo, marca").WithArgs(99).WillReturnRows(sqlmock.NewRows(vehicleColumns()))

	_, err := repo.FindByID(context.Background(), 99)
	assert.Equal(t, sql.ErrNoRows, err)
}
