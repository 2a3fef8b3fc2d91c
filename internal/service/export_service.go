package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/autodrive/catalogo-api/internal/models"
	appErrors "github.com/autodrive/catalogo-api/pkg/errors"
	"github.com/autodrive/catalogo-api/pkg/export"
)

// Export formats accepted by the lead export endpoint.
const (
	ExportFormatCSV = "csv"
	ExportFormatPDF = "pdf"
)

var leadExportHeaders = []string{"Protocolo", "Data", "Nome", "Email", "Telefone", "Veículo", "Assunto", "Financiamento"}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

// ExportResult carries rendered export bytes plus response metadata.
type ExportResult struct {
	Content     []byte
	ContentType string
	Filename    string
}

// ExportService renders the stored lead submissions as downloadable files.
type ExportService struct {
	forms    contactFormRepository
	vehicles vehicleRepository
	csv      csvRenderer
	pdf      pdfRenderer
	logger   *zap.Logger
	now      func() time.Time
}

// NewExportService constructs an ExportService.
func NewExportService(forms contactFormRepository, vehicles vehicleRepository, logger *zap.Logger, csv csvRenderer, pdf pdfRenderer) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &ExportService{forms: forms, vehicles: vehicles, csv: csv, pdf: pdf, logger: logger, now: time.Now}
}

// Generate renders all submissions in the requested format.
func (s *ExportService) Generate(ctx context.Context, format string) (*ExportResult, error) {
	if format != ExportFormatCSV && format != ExportFormatPDF {
		return nil, appErrors.Clone(appErrors.ErrValidation, "formatoDeExportacaoInvalido")
	}

	forms, err := s.forms.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list contact forms")
	}

	dataset := s.buildDataset(ctx, forms)
	stamp := s.now().UTC().Format("20060102-150405")

	switch format {
	case ExportFormatCSV:
		content, err := s.csv.Render(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return &ExportResult{
			Content:     content,
			ContentType: "text/csv",
			Filename:    fmt.Sprintf("leads-%s.csv", stamp),
		}, nil
	default:
		content, err := s.pdf.Render(dataset, "Leads recebidos")
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return &ExportResult{
			Content:     content,
			ContentType: "application/pdf",
			Filename:    fmt.Sprintf("leads-%s.pdf", stamp),
		}, nil
	}
}

func (s *ExportService) buildDataset(ctx context.Context, forms []models.ContactForm) export.Dataset {
	rows := make([]map[string]string, 0, len(forms))
	for _, form := range forms {
		veiculo := fmt.Sprintf("#%d", form.IDVehicle)
		if vehicle, err := s.vehicles.FindByID(ctx, form.IDVehicle); err == nil {
			veiculo = fmt.Sprintf("%s %s %d", vehicle.Marca, vehicle.Modelo, vehicle.Ano)
		}
		rows = append(rows, map[string]string{
			"Protocolo":     form.Protocolo,
			"Data":          form.DateCreated.UTC().Format(time.RFC3339),
			"Nome":          form.NomeCompleto,
			"Email":         form.Email,
			"Telefone":      form.Telefone,
			"Veículo":       veiculo,
			"Assunto":       form.Assunto,
			"Financiamento": strconv.FormatBool(form.Financiamento),
		})
	}
	return export.Dataset{Headers: leadExportHeaders, Rows: rows}
}
