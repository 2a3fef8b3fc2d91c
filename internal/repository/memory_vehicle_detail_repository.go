package repository

import (
	"context"
	"database/sql"
	"sync"

	"github.com/autodrive/catalogo-api/internal/models"
)

// MemoryVehicleDetailRepository serves the detail aggregates from memory.
// Only vehicles with a fully curated detail page are present; catalog
// entries without one yield sql.ErrNoRows.
type MemoryVehicleDetailRepository struct {
	mu      sync.RWMutex
	details map[int]models.VehicleDetailResponse
}

// NewMemoryVehicleDetailRepository builds the repository. Passing nil seeds
// the default detail data.
func NewMemoryVehicleDetailRepository(details map[int]models.VehicleDetailResponse) *MemoryVehicleDetailRepository {
	if details == nil {
		details = SeedVehicleDetails()
	}
	return &MemoryVehicleDetailRepository{details: details}
}

// FindByVehicleID returns the detail aggregate for a vehicle.
func (r *MemoryVehicleDetailRepository) FindByVehicleID(ctx context.Context, id int) (*models.VehicleDetailResponse, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	detail, ok := r.details[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &detail, nil
}

func strPtr(s string) *string { return &s }

// SeedVehicleDetails returns the curated detail pages.
func SeedVehicleDetails() map[int]models.VehicleDetailResponse {
	return map[int]models.VehicleDetailResponse{
		1: {
			Vehicle: models.VehicleDetail{
				IDVehicle:             1,
				Modelo:                "Civic",
				Marca:                 "Honda",
				AnoFabricacao:         2023,
				AnoModelo:             2023,
				Preco:                 145000,
				Quilometragem:         5000,
				Combustivel:           "Flex",
				Cambio:                "Automático",
				Potencia:              "155 cv",
				Cor:                   "Prata",
				Portas:                4,
				Carroceria:            "Sedan",
				Motor:                 "2.0",
				FinalPlaca:            1,
				StatusVeiculo:         "Disponível",
				Procedencia:           "Concessionária",
				Proprietarios:         0,
				Garantia:              strPtr("3 anos ou 100.000 km"),
				AceitaTroca:           true,
				ObservacoesVenda:      strPtr("Aceita veículo como parte do pagamento"),
				TituloAnuncio:         "Honda Civic 2023",
				URLCompartilhamento:   "/veiculos/honda-civic-2023-1",
				TextoCompartilhamento: "Confira este Honda Civic 2023 por R$ 145.000,00",
			},
			Photos: []models.VehiclePhoto{
				{IDVehiclePhoto: 1, FotoURL: "https://example.com/civic-front.jpg", Legenda: strPtr("Vista frontal"), Principal: true, Ordem: 1},
				{IDVehiclePhoto: 2, FotoURL: "https://example.com/civic-side.jpg", Legenda: strPtr("Vista lateral"), Principal: false, Ordem: 2},
				{IDVehiclePhoto: 3, FotoURL: "https://example.com/civic-interior.jpg", Legenda: strPtr("Interior"), Principal: false, Ordem: 3},
			},
			Items: []models.VehicleItem{
				{IDVehicleItem: 1, Descricao: "Ar-condicionado digital", Categoria: "Conforto", Serie: true},
				{IDVehicleItem: 2, Descricao: "Bancos de couro", Categoria: "Conforto", Serie: true},
				{IDVehicleItem: 3, Descricao: "Freios ABS", Categoria: "Segurança", Serie: true},
				{IDVehicleItem: 4, Descricao: "Airbags frontais e laterais", Categoria: "Segurança", Serie: true},
				{IDVehicleItem: 5, Descricao: "Central multimídia", Categoria: "Tecnologia", Serie: true},
				{IDVehicleItem: 6, Descricao: "Sensor de estacionamento", Categoria: "Tecnologia", Serie: false},
			},
			Revisoes: []models.VehicleRevisao{
				{IDVehicleRevisao: 1, DataRevisao: "2023-06-15", Quilometragem: 5000, Local: "Concessionária Honda"},
			},
			Sinistros: []models.VehicleSinistro{},
			LaudoTecnico: models.VehicleLaudoTecnico{
				IDVehicleLaudoTecnico: 1,
				DataInspecao:          "2023-11-01",
				ResultadoGeral:        "Aprovado - Veículo em excelente estado",
			},
			FormasPagamento: []models.VehicleFormaPagamento{
				{IDVehicleFormaPagamento: 1, FormaPagamento: "À vista"},
				{IDVehicleFormaPagamento: 2, FormaPagamento: "Financiamento"},
			},
			CondicaoFinanciamento: models.VehicleCondicaoFinanciamento{
				IDVehicleCondicaoFinanciamento: 1,
				EntradaMinima:                  29000,
				TaxaJuros:                      1.99,
				PrazoMaximo:                    60,
			},
			Documentacao: []models.VehicleDocumentacao{
				{IDVehicleDocumentacao: 1, NomeDocumento: "RG e CPF", Observacoes: strPtr("Documentos originais")},
				{IDVehicleDocumentacao: 2, NomeDocumento: "Comprovante de residência", Observacoes: strPtr("Atualizado (últimos 3 meses)")},
				{IDVehicleDocumentacao: 3, NomeDocumento: "Comprovante de renda", Observacoes: strPtr("Para financiamento")},
			},
			SituacaoDocumental: models.VehicleSituacaoDocumental{
				IDVehicleSituacaoDocumental: 1,
				StatusRegularizacao:         "Regular",
				Pendencias:                  nil,
				Observacoes:                 strPtr("Toda documentação em dia"),
			},
		},
	}
}
