package models

// VehicleDetail holds the complete information shown on a detail page.
type VehicleDetail struct {
	IDVehicle            int     `json:"idVehicle"`
	Modelo               string  `json:"modelo"`
	Marca                string  `json:"marca"`
	AnoFabricacao        int     `json:"anoFabricacao"`
	AnoModelo            int     `json:"anoModelo"`
	Preco                float64 `json:"preco"`
	Quilometragem        int     `json:"quilometragem"`
	Combustivel          string  `json:"combustivel"`
	Cambio               string  `json:"cambio"`
	Potencia             string  `json:"potencia"`
	Cor                  string  `json:"cor"`
	Portas               int     `json:"portas"`
	Carroceria           string  `json:"carroceria"`
	Motor                string  `json:"motor"`
	FinalPlaca           int     `json:"finalPlaca"`
	StatusVeiculo        string  `json:"statusVeiculo"`
	Procedencia          string  `json:"procedencia"`
	Proprietarios        int     `json:"proprietarios"`
	Garantia             *string `json:"garantia"`
	AceitaTroca          bool    `json:"aceitaTroca"`
	ObservacoesVenda     *string `json:"observacoesVenda"`
	TituloAnuncio        string  `json:"tituloAnuncio"`
	URLCompartilhamento  string  `json:"urlCompartilhamento"`
	TextoCompartilhamento string `json:"textoCompartilhamento"`
}

// VehiclePhoto is one gallery image.
type VehiclePhoto struct {
	IDVehiclePhoto int     `json:"idVehiclePhoto"`
	FotoURL        string  `json:"fotoUrl"`
	Legenda        *string `json:"legenda"`
	Principal      bool    `json:"principal"`
	Ordem          int     `json:"ordem"`
}

// VehicleItem is an equipment item or optional.
type VehicleItem struct {
	IDVehicleItem int    `json:"idVehicleItem"`
	Descricao     string `json:"descricao"`
	Categoria     string `json:"categoria"`
	Serie         bool   `json:"serie"`
}

// VehicleRevisao is one maintenance record.
type VehicleRevisao struct {
	IDVehicleRevisao int    `json:"idVehicleRevisao"`
	DataRevisao      string `json:"dataRevisao"`
	Quilometragem    int    `json:"quilometragem"`
	Local            string `json:"local"`
}

// VehicleSinistro is one accident record.
type VehicleSinistro struct {
	IDVehicleSinistro int    `json:"idVehicleSinistro"`
	DataSinistro      string `json:"dataSinistro"`
	Tipo              string `json:"tipo"`
	Descricao         string `json:"descricao"`
}

// VehicleLaudoTecnico is the technical inspection report.
type VehicleLaudoTecnico struct {
	IDVehicleLaudoTecnico int    `json:"idVehicleLaudoTecnico"`
	DataInspecao          string `json:"dataInspecao"`
	ResultadoGeral        string `json:"resultadoGeral"`
}

// VehicleFormaPagamento is one accepted payment method.
type VehicleFormaPagamento struct {
	IDVehicleFormaPagamento int    `json:"idVehicleFormaPagamento"`
	FormaPagamento          string `json:"formaPagamento"`
}

// VehicleCondicaoFinanciamento holds financing terms.
type VehicleCondicaoFinanciamento struct {
	IDVehicleCondicaoFinanciamento int     `json:"idVehicleCondicaoFinanciamento"`
	EntradaMinima                  float64 `json:"entradaMinima"`
	TaxaJuros                      float64 `json:"taxaJuros"`
	PrazoMaximo                    int     `json:"prazoMaximo"`
}

// VehicleDocumentacao is one required purchase document.
type VehicleDocumentacao struct {
	IDVehicleDocumentacao int     `json:"idVehicleDocumentacao"`
	NomeDocumento         string  `json:"nomeDocumento"`
	Observacoes           *string `json:"observacoes"`
}

// VehicleSituacaoDocumental is the documentation status of the vehicle.
type VehicleSituacaoDocumental struct {
	IDVehicleSituacaoDocumental int     `json:"idVehicleSituacaoDocumental"`
	StatusRegularizacao         string  `json:"statusRegularizacao"`
	Pendencias                  *string `json:"pendencias"`
	Observacoes                 *string `json:"observacoes"`
}

// VehicleDetailResponse aggregates everything the detail page renders.
type VehicleDetailResponse struct {
	Vehicle              VehicleDetail                 `json:"vehicle"`
	Photos               []VehiclePhoto                `json:"photos"`
	Items                []VehicleItem                 `json:"items"`
	Revisoes             []VehicleRevisao              `json:"revisoes"`
	Sinistros            []VehicleSinistro             `json:"sinistros"`
	LaudoTecnico         VehicleLaudoTecnico           `json:"laudoTecnico"`
	FormasPagamento      []VehicleFormaPagamento       `json:"formasPagamento"`
	CondicaoFinanciamento VehicleCondicaoFinanciamento `json:"condicaoFinanciamento"`
	Documentacao         []VehicleDocumentacao         `json:"documentacao"`
	SituacaoDocumental   VehicleSituacaoDocumental     `json:"situacaoDocumental"`
}
