package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autodrive/catalogo-api/internal/models"
)

func TestPostgresContactFormNextID(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewPostgresContactFormRepository(db)
	mock.ExpectQuery("SELECT nextval").
		WillReturnRows(sqlmock.NewRows([]string{"nextval"}).AddRow(42))

	id, err := repo.NextID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, id)
}

func TestPostgresContactFormHasRecentFromIP(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewPostgresContactFormRepository(db)
	cutoff := time.Date(2026, 9, 1, 11, 50, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("203.0.113.7", cutoff).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	recent, err := repo.HasRecentFromIP(context.Background(), "203.0.113.7", cutoff)
	require.NoError(t, err)
	assert.True(t, recent)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresContactFormCreate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewPostgresContactFormRepository(db)
	created := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	form := &models.ContactForm{
		ID:                 1,
		Protocolo:          "2026090100001",
		Status:             models.StatusNovo,
		DateCreated:        created,
		IDVehicle:          1,
		NomeCompleto:       "João da Silva",
		Email:              "joao@example.com",
		Telefone:           "(11) 98765-4321",
		PreferenciaContato: models.PreferenciaTelefone,
		MelhorHorario:      models.HorarioQualquer,
		Assunto:            models.AssuntoInformacoes,
		Mensagem:           "Tenho interesse neste veículo, aguardo contato.",
		IPUsuario:          "203.0.113.7",
	}

	mock.ExpectExec("INSERT INTO contact_forms").
		WithArgs(
			form.ID, form.Protocolo, form.Status, form.DateCreated, form.IDVehicle,
			form.NomeCompleto, form.Email, form.Telefone, form.PreferenciaContato,
			form.MelhorHorario, form.Assunto, form.Mensagem, form.Financiamento,
			form.ReceberNovidades, form.IPUsuario,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Create(context.Background(), form))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresContactFormList(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewPostgresContactFormRepository(db)
	columns := []string{
		"id", "protocolo", "status", "date_created", "id_vehicle", "nome_completo",
		"email", "telefone", "preferencia_contato", "melhor_horario", "assunto",
		"mensagem", "financiamento", "receber_novidades", "ip_usuario",
	}
	rows := sqlmock.NewRows(columns).
		AddRow(1, "2026090100001", "Novo", time.Now(), 1, "João da Silva",
			"joao@example.com", "(11) 98765-4321", "Telefone", "Qualquer horário",
			"Financiamento", "Tenho interesse neste veículo.", true, false, "203.0.113.7")
	mock.ExpectQuery("SELECT id, protocolo").WillReturnRows(rows)

	forms, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, forms, 1)
	assert.Equal(t, "2026090100001", forms[0].Protocolo)
	assert.True(t, forms[0].Financiamento)
}
