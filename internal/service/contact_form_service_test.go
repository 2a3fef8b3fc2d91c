package service

import (
	"context"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/autodrive/catalogo-api/internal/models"
	"github.com/autodrive/catalogo-api/internal/repository"
	appErrors "github.com/autodrive/catalogo-api/pkg/errors"
)

var protocoloPattern = regexp.MustCompile(`^\d{13}$`)

func validContactRequest() CreateContactFormRequest {
	return CreateContactFormRequest{
		IDVehicle:          1,
		NomeCompleto:       "João da Silva",
		Email:              "joao@example.com",
		Telefone:           "(11) 98765-4321",
		PreferenciaContato: models.PreferenciaTelefone,
		Assunto:            models.AssuntoInformacoes,
		Mensagem:           "Tenho interesse neste veículo, aguardo contato.",
		TermosPrivacidade:  true,
	}
}

func newTestContactFormService(window time.Duration) (*ContactFormService, *repository.MemoryContactFormRepository) {
	repo := repository.NewMemoryContactFormRepository(window)
	vehicles := &mockVehicleRepo{vehicles: testCatalog()}
	svc := NewContactFormService(repo, vehicles, validator.New(), window, zap.NewNop())
	return svc, repo
}

func TestContactFormSubmit(t *testing.T) {
	svc, _ := newTestContactFormService(10 * time.Minute)
	svc.now = func() time.Time { return time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC) }

	receipt, err := svc.Submit(context.Background(), validContactRequest(), "203.0.113.7")
	require.NoError(t, err)
	assert.Equal(t, 1, receipt.IDContactForm)
	assert.Equal(t, "2026090100001", receipt.Protocolo)
	assert.Regexp(t, protocoloPattern, receipt.Protocolo)
	assert.Equal(t, models.StatusNovo, receipt.Status)
	assert.Equal(t, "Civic", receipt.Modelo)
	assert.Equal(t, "Honda", receipt.Marca)
	assert.Equal(t, 2023, receipt.AnoModelo)
}

func TestContactFormSubmitDefaultsMelhorHorario(t *testing.T) {
	svc, repo := newTestContactFormService(10 * time.Minute)

	req := validContactRequest()
	req.MelhorHorario = ""
	_, err := svc.Submit(context.Background(), req, "203.0.113.7")
	require.NoError(t, err)

	forms, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, forms, 1)
	assert.Equal(t, models.HorarioQualquer, forms[0].MelhorHorario)
}

func TestContactFormSubmitVehicleNotFound(t *testing.T) {
	svc, _ := newTestContactFormService(10 * time.Minute)

	req := validContactRequest()
	req.IDVehicle = 999
	_, err := svc.Submit(context.Background(), req, "203.0.113.7")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
	assert.Equal(t, "vehicleNotFound", appErr.Message)
}

func TestContactFormSubmitFinancingAutoFlag(t *testing.T) {
	svc, repo := newTestContactFormService(10 * time.Minute)

	req := validContactRequest()
	req.Assunto = models.AssuntoFinanciamento
	req.Financiamento = false
	_, err := svc.Submit(context.Background(), req, "203.0.113.7")
	require.NoError(t, err)

	forms, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, forms, 1)
	assert.True(t, forms[0].Financiamento)
}

func TestContactFormDuplicateWindow(t *testing.T) {
	base := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	window := 10 * time.Minute

	cases := []struct {
		name    string
		elapsed time.Duration
		blocked bool
	}{
		{"inside window", 5 * time.Minute, true},
		{"exactly at boundary", window, true},
		{"just past window", window + time.Second, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, _ := newTestContactFormService(window)
			svc.now = func() time.Time { return base }

			_, err := svc.Submit(context.Background(), validContactRequest(), "203.0.113.7")
			require.NoError(t, err)

			svc.now = func() time.Time { return base.Add(tc.elapsed) }
			_, err = svc.Submit(context.Background(), validContactRequest(), "203.0.113.7")
			if tc.blocked {
				require.Error(t, err)
				appErr := appErrors.FromError(err)
				assert.Equal(t, appErrors.ErrRateLimit.Code, appErr.Code)
				assert.Equal(t, "duplicateSubmissionDetected", appErr.Message)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestContactFormDuplicateWindowPerIP(t *testing.T) {
	svc, _ := newTestContactFormService(10 * time.Minute)

	_, err := svc.Submit(context.Background(), validContactRequest(), "203.0.113.7")
	require.NoError(t, err)

	// a different source address is not affected
	_, err = svc.Submit(context.Background(), validContactRequest(), "203.0.113.8")
	require.NoError(t, err)
}

func TestContactFormProtocolSequenceSurvivesDateChange(t *testing.T) {
	svc, _ := newTestContactFormService(10 * time.Minute)

	protocols := make(map[string]struct{})
	for i := 0; i < 3; i++ {
		day := time.Date(2026, 9, 1+i, 12, 0, 0, 0, time.UTC)
		svc.now = func() time.Time { return day }
		receipt, err := svc.Submit(context.Background(), validContactRequest(), fmt.Sprintf("203.0.113.%d", i))
		require.NoError(t, err)
		protocols[receipt.Protocolo] = struct{}{}
		// the sequence suffix keeps climbing across the date rollover
		assert.Equal(t, fmt.Sprintf("202609%02d%05d", 1+i, i+1), receipt.Protocolo)
	}
	assert.Len(t, protocols, 3)
}

func TestContactFormValidationKeys(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*CreateContactFormRequest)
		key    string
	}{
		{"short name", func(r *CreateContactFormRequest) { r.NomeCompleto = "Jo" }, "nomeDeveConterPeloMenos3Caracteres"},
		{"single name", func(r *CreateContactFormRequest) { r.NomeCompleto = "Jonathan" }, "nomeDeveConterNomeESobrenome"},
		{"invalid email", func(r *CreateContactFormRequest) { r.Email = "not-an-email" }, "emailInvalido"},
		{"short phone", func(r *CreateContactFormRequest) { r.Telefone = "123" }, "telefoneDeveConterPeloMenos10Digitos"},
		{"malformed phone", func(r *CreateContactFormRequest) { r.Telefone = "abcdefghijk" }, "telefoneInvalido"},
		{"bad preference", func(r *CreateContactFormRequest) { r.PreferenciaContato = "Fax" }, "preferenciaContatoInvalida"},
		{"bad horario", func(r *CreateContactFormRequest) { r.MelhorHorario = "Madrugada" }, "melhorHorarioInvalido"},
		{"bad assunto", func(r *CreateContactFormRequest) { r.Assunto = "Spam" }, "assuntoInvalido"},
		{"short message", func(r *CreateContactFormRequest) { r.Mensagem = "curta" }, "mensagemDeveConterPeloMenos10Caracteres"},
		{"terms not accepted", func(r *CreateContactFormRequest) { r.TermosPrivacidade = false }, "termosPrivacidadeDevemSerAceitos"},
		{"missing vehicle", func(r *CreateContactFormRequest) { r.IDVehicle = 0 }, "idVehicleInvalido"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, _ := newTestContactFormService(10 * time.Minute)
			req := validContactRequest()
			tc.mutate(&req)

			_, err := svc.Submit(context.Background(), req, "203.0.113.7")
			require.Error(t, err)
			appErr := appErrors.FromError(err)
			assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
			assert.Equal(t, tc.key, appErr.Message)
		})
	}
}

func TestFormatProtocolo(t *testing.T) {
	now := time.Date(2026, 9, 1, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "2026090100042", formatProtocolo(now, 42))
	assert.Equal(t, "2026090112345", formatProtocolo(now, 12345))
}
