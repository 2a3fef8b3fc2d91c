package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/autodrive/catalogo-api/internal/models"
	"github.com/autodrive/catalogo-api/internal/repository"
	"github.com/autodrive/catalogo-api/internal/service"
	appErrors "github.com/autodrive/catalogo-api/pkg/errors"
)

func newContactTestRouter(withExports bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	vehicles := repository.NewMemoryVehicleRepository(nil)
	forms := repository.NewMemoryContactFormRepository(0)
	contactSvc := service.NewContactFormService(forms, vehicles, validator.New(), 0, zap.NewNop())

	var exportSvc *service.ExportService
	if withExports {
		exportSvc = service.NewExportService(forms, vehicles, zap.NewNop(), nil, nil)
	}

	h := NewContactFormHandler(contactSvc, exportSvc)
	r := gin.New()
	r.POST("/external/contact-form", h.Create)
	r.GET("/internal/contact-form/export", h.Export)
	return r
}

func contactPayload() map[string]interface{} {
	return map[string]interface{}{
		"idVehicle":          1,
		"nomeCompleto":       "João da Silva",
		"email":              "joao@example.com",
		"telefone":           "(11) 98765-4321",
		"preferenciaContato": "Telefone",
		"assunto":            "Informações gerais",
		"mensagem":           "Tenho interesse neste veículo, aguardo contato.",
		"termos_privacidade": true,
	}
}

func postContactForm(t *testing.T, r *gin.Engine, body []byte, ip string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodPost, "/external/contact-form", bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = ip + ":51234"
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestContactFormCreate(t *testing.T) {
	r := newContactTestRouter(false)
	body, _ := json.Marshal(contactPayload())

	w, env := postContactForm(t, r, body, "203.0.113.7")
	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, env.Success)

	var receipt models.ContactFormReceipt
	require.NoError(t, json.Unmarshal(env.Data, &receipt))
	assert.Equal(t, 1, receipt.IDContactForm)
	assert.Regexp(t, `^\d{13}$`, receipt.Protocolo)
	assert.Equal(t, models.StatusNovo, receipt.Status)
	assert.Equal(t, "Civic", receipt.Modelo)
}

func TestContactFormCreateInvalidJSON(t *testing.T) {
	r := newContactTestRouter(false)

	w, env := postContactForm(t, r, []byte(`{invalid`), "203.0.113.7")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "invalidPayload", env.Error.Message)
}

func TestContactFormCreateVehicleNotFound(t *testing.T) {
	r := newContactTestRouter(false)
	payload := contactPayload()
	payload["idVehicle"] = 999
	body, _ := json.Marshal(payload)

	w, env := postContactForm(t, r, body, "203.0.113.7")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, appErrors.ErrNotFound.Code, env.Error.Code)
	assert.Equal(t, "vehicleNotFound", env.Error.Message)
}

func TestContactFormCreateDuplicateBlocked(t *testing.T) {
	r := newContactTestRouter(false)
	body, _ := json.Marshal(contactPayload())

	w, _ := postContactForm(t, r, body, "203.0.113.7")
	require.Equal(t, http.StatusCreated, w.Code)

	w, env := postContactForm(t, r, body, "203.0.113.7")
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, appErrors.ErrRateLimit.Code, env.Error.Code)
	assert.Equal(t, "duplicateSubmissionDetected", env.Error.Message)
}

func TestContactFormCreateValidationKey(t *testing.T) {
	r := newContactTestRouter(false)
	payload := contactPayload()
	payload["nomeCompleto"] = "Jo"
	body, _ := json.Marshal(payload)

	w, env := postContactForm(t, r, body, "203.0.113.7")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "nomeDeveConterPeloMenos3Caracteres", env.Error.Message)
}

func TestContactFormExportCSV(t *testing.T) {
	r := newContactTestRouter(true)
	body, _ := json.Marshal(contactPayload())
	w, _ := postContactForm(t, r, body, "203.0.113.7")
	require.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/internal/contact-form/export?format=csv", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, w.Body.String(), "Protocolo,Data,Nome")
}

func TestContactFormExportDisabled(t *testing.T) {
	r := newContactTestRouter(false)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/internal/contact-form/export", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusNotFound, w.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.NotNil(t, env.Error)
	assert.Equal(t, "exportDisabled", env.Error.Message)
}
