package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/autodrive/catalogo-api/internal/models"
)

// PostgresContactFormRepository persists lead submissions in PostgreSQL.
// The submission sequence lives in the database so it survives restarts and
// stays monotonic across replicas.
type PostgresContactFormRepository struct {
	db *sqlx.DB
}

// NewPostgresContactFormRepository constructs a PostgresContactFormRepository.
func NewPostgresContactFormRepository(db *sqlx.DB) *PostgresContactFormRepository {
	return &PostgresContactFormRepository{db: db}
}

// NextID reserves the next value of the contact_forms sequence.
func (r *PostgresContactFormRepository) NextID(ctx context.Context) (int, error) {
	const query = `SELECT nextval('contact_forms_id_seq')`
	var id int
	if err := r.db.GetContext(ctx, &id, query); err != nil {
		return 0, fmt.Errorf("next contact form id: %w", err)
	}
	return id, nil
}

// HasRecentFromIP reports whether any submission from ip was created at or
// after cutoff. The boundary is inclusive.
func (r *PostgresContactFormRepository) HasRecentFromIP(ctx context.Context, ip string, cutoff time.Time) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM contact_forms WHERE ip_usuario = $1 AND date_created >= $2)`
	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, ip, cutoff); err != nil {
		return false, fmt.Errorf("check recent submission: %w", err)
	}
	return exists, nil
}

// Create inserts a fully populated submission record under the identifier
// reserved via NextID.
func (r *PostgresContactFormRepository) Create(ctx context.Context, form *models.ContactForm) error {
	const query = `INSERT INTO contact_forms (
		id, protocolo, status, date_created, id_vehicle, nome_completo, email, telefone,
		preferencia_contato, melhor_horario, assunto, mensagem, financiamento, receber_novidades, ip_usuario
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	if _, err := r.db.ExecContext(ctx, query,
		form.ID,
		form.Protocolo,
		form.Status,
		form.DateCreated,
		form.IDVehicle,
		form.NomeCompleto,
		form.Email,
		form.Telefone,
		form.PreferenciaContato,
		form.MelhorHorario,
		form.Assunto,
		form.Mensagem,
		form.Financiamento,
		form.ReceberNovidades,
		form.IPUsuario,
	); err != nil {
		return fmt.Errorf("create contact form: %w", err)
	}
	return nil
}

// List returns all stored submissions ordered by identifier.
func (r *PostgresContactFormRepository) List(ctx context.Context) ([]models.ContactForm, error) {
	const query = `SELECT id, protocolo, status, date_created, id_vehicle, nome_completo, email, telefone,
		preferencia_contato, melhor_horario, assunto, mensagem, financiamento, receber_novidades, ip_usuario
		FROM contact_forms ORDER BY id`
	var forms []models.ContactForm
	if err := r.db.SelectContext(ctx, &forms, query); err != nil {
		return nil, fmt.Errorf("list contact forms: %w", err)
	}
	return forms, nil
}
