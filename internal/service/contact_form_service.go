package service

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/autodrive/catalogo-api/internal/models"
	appErrors "github.com/autodrive/catalogo-api/pkg/errors"
)

type contactFormRepository interface {
	NextID(ctx context.Context) (int, error)
	HasRecentFromIP(ctx context.Context, ip string, cutoff time.Time) (bool, error)
	Create(ctx context.Context, form *models.ContactForm) error
	List(ctx context.Context) ([]models.ContactForm, error)
}

// Brazilian landline/mobile number with area code, e.g. (11) 98765-4321.
var brPhonePattern = regexp.MustCompile(`^\(?\d{2}\)?\s?\d{4,5}-?\d{4}$`)

// CreateContactFormRequest holds the lead payload submitted by the frontend.
type CreateContactFormRequest struct {
	IDVehicle          int    `json:"idVehicle" validate:"required,gt=0"`
	NomeCompleto       string `json:"nomeCompleto" validate:"required,min=3,max=100,fullname"`
	Email              string `json:"email" validate:"required,email,max=100"`
	Telefone           string `json:"telefone" validate:"required,min=10,brphone"`
	PreferenciaContato string `json:"preferenciaContato" validate:"required,oneof=Telefone E-mail WhatsApp"`
	MelhorHorario      string `json:"melhorHorario" validate:"omitempty,oneof='Manhã' 'Tarde' 'Noite' 'Qualquer horário'"`
	Assunto            string `json:"assunto" validate:"required,oneof='Informações gerais' 'Agendamento de test drive' 'Negociação de preço' 'Financiamento' 'Outro'"`
	Mensagem           string `json:"mensagem" validate:"required,min=10,max=1000"`
	Financiamento      bool   `json:"financiamento"`
	ReceberNovidades   bool   `json:"receberNovidades"`
	TermosPrivacidade  bool   `json:"termos_privacidade" validate:"eq=true"`
}

// ContactFormService processes lead submissions: referential check,
// duplicate-window rate limiting, the financing business rule, protocol
// generation and persistence.
type ContactFormService struct {
	repo      contactFormRepository
	vehicles  vehicleRepository
	validator *validator.Validate
	logger    *zap.Logger
	window    time.Duration
	now       func() time.Time

	// mu serializes the duplicate-check-then-append sequence, which is a
	// check-then-act race without a single-writer discipline.
	mu sync.Mutex
}

// NewContactFormService constructs the contact form service.
func NewContactFormService(repo contactFormRepository, vehicles vehicleRepository, validate *validator.Validate, window time.Duration, logger *zap.Logger) *ContactFormService {
	if validate == nil {
		validate = validator.New()
	}
	registerContactFormValidations(validate)
	if logger == nil {
		logger = zap.NewNop()
	}
	if window <= 0 {
		window = 10 * time.Minute
	}
	return &ContactFormService{
		repo:      repo,
		vehicles:  vehicles,
		validator: validate,
		logger:    logger,
		window:    window,
		now:       time.Now,
	}
}

// registerContactFormValidations installs the custom rules used by the
// request tags. Safe to call repeatedly on a shared validator instance.
func registerContactFormValidations(v *validator.Validate) {
	_ = v.RegisterValidation("fullname", func(fl validator.FieldLevel) bool {
		return len(strings.Fields(strings.TrimSpace(fl.Field().String()))) >= 2
	})
	_ = v.RegisterValidation("brphone", func(fl validator.FieldLevel) bool {
		return brPhonePattern.MatchString(fl.Field().String())
	})
}

// Submit validates and persists a lead submission, returning the receipt
// with the generated protocol and the referenced vehicle's display fields.
func (s *ContactFormService) Submit(ctx context.Context, req CreateContactFormRequest, sourceIP string) (*models.ContactFormReceipt, error) {
	if req.MelhorHorario == "" {
		req.MelhorHorario = models.HorarioQualquer
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, translateValidationError(err)
	}

	vehicle, err := s.vehicles.FindByID(ctx, req.IDVehicle)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "vehicleNotFound")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load vehicle")
	}

	// Subject "Financiamento" always implies financing interest.
	if req.Assunto == models.AssuntoFinanciamento {
		req.Financiamento = true
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	cutoff := now.Add(-s.window)
	recent, err := s.repo.HasRecentFromIP(ctx, sourceIP, cutoff)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check recent submissions")
	}
	if recent {
		return nil, appErrors.Clone(appErrors.ErrRateLimit, "duplicateSubmissionDetected")
	}

	id, err := s.repo.NextID(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to reserve submission id")
	}

	form := &models.ContactForm{
		ID:                 id,
		Protocolo:          formatProtocolo(now, id),
		Status:             models.StatusNovo,
		DateCreated:        now,
		IDVehicle:          req.IDVehicle,
		NomeCompleto:       req.NomeCompleto,
		Email:              req.Email,
		Telefone:           req.Telefone,
		PreferenciaContato: req.PreferenciaContato,
		MelhorHorario:      req.MelhorHorario,
		Assunto:            req.Assunto,
		Mensagem:           req.Mensagem,
		Financiamento:      req.Financiamento,
		ReceberNovidades:   req.ReceberNovidades,
		IPUsuario:          sourceIP,
	}

	if err := s.repo.Create(ctx, form); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store contact form")
	}

	s.logger.Info("contact form created",
		zap.Int("id", form.ID),
		zap.String("protocolo", form.Protocolo),
		zap.Int("vehicle", form.IDVehicle),
	)

	return &models.ContactFormReceipt{
		IDContactForm: form.ID,
		Protocolo:     form.Protocolo,
		Status:        form.Status,
		DateCreated:   form.DateCreated,
		Modelo:        vehicle.Modelo,
		Marca:         vehicle.Marca,
		AnoModelo:     vehicle.Ano,
	}, nil
}

// List returns every stored submission, oldest first.
func (s *ContactFormService) List(ctx context.Context) ([]models.ContactForm, error) {
	forms, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list contact forms")
	}
	return forms, nil
}

// formatProtocolo builds the externally visible tracking code: current UTC
// date plus the zero-padded lifetime sequence number. The sequence does not
// reset daily even though the prefix looks like it might.
func formatProtocolo(now time.Time, sequence int) string {
	return fmt.Sprintf("%s%05d", now.UTC().Format("20060102"), sequence)
}

// translateValidationError maps the first struct violation onto the
// machine-readable message keys the frontend expects.
func translateValidationError(err error) error {
	violations, ok := err.(validator.ValidationErrors)
	if !ok || len(violations) == 0 {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}

	first := violations[0]
	key := "invalidPayload"
	switch first.StructField() {
	case "IDVehicle":
		key = "idVehicleInvalido"
	case "NomeCompleto":
		switch first.Tag() {
		case "min", "required":
			key = "nomeDeveConterPeloMenos3Caracteres"
		case "max":
			key = "nomeDeveConterNoMaximo100Caracteres"
		case "fullname":
			key = "nomeDeveConterNomeESobrenome"
		}
	case "Email":
		switch first.Tag() {
		case "max":
			key = "emailDeveConterNoMaximo100Caracteres"
		default:
			key = "emailInvalido"
		}
	case "Telefone":
		switch first.Tag() {
		case "min", "required":
			key = "telefoneDeveConterPeloMenos10Digitos"
		default:
			key = "telefoneInvalido"
		}
	case "PreferenciaContato":
		key = "preferenciaContatoInvalida"
	case "MelhorHorario":
		key = "melhorHorarioInvalido"
	case "Assunto":
		key = "assuntoInvalido"
	case "Mensagem":
		switch first.Tag() {
		case "max":
			key = "mensagemDeveConterNoMaximo1000Caracteres"
		default:
			key = "mensagemDeveConterPeloMenos10Caracteres"
		}
	case "TermosPrivacidade":
		key = "termosPrivacidadeDevemSerAceitos"
	}

	return appErrors.Clone(appErrors.ErrValidation, key)
}
