package models

// Cambio represents a transmission type. Records without a known
// transmission carry a nil pointer and are excluded from cambio filters.
type Cambio string

const (
	CambioManual     Cambio = "Manual"
	CambioAutomatico Cambio = "Automático"
	CambioCVT        Cambio = "CVT"
)

// Vehicle represents a catalog entry.
type Vehicle struct {
	ID               int     `db:"id" json:"id"`
	Modelo           string  `db:"modelo" json:"modelo"`
	Marca            string  `db:"marca" json:"marca"`
	Ano              int     `db:"ano" json:"ano"`
	Preco            float64 `db:"preco" json:"preco"`
	ImagemPrincipal  string  `db:"imagem_principal" json:"imagemPrincipal"`
	Quilometragem    *int    `db:"quilometragem" json:"quilometragem"`
	Cambio           *Cambio `db:"cambio" json:"cambio"`
}

// SortOrder enumerates the supported listing orders.
type SortOrder string

const (
	SortRelevancia SortOrder = "relevancia"
	SortPrecoAsc   SortOrder = "preco_asc"
	SortPrecoDesc  SortOrder = "preco_desc"
	SortAnoDesc    SortOrder = "ano_desc"
	SortAnoAsc     SortOrder = "ano_asc"
	SortModeloAsc  SortOrder = "modelo_asc"
	SortModeloDesc SortOrder = "modelo_desc"
)

// ParseSortOrder maps a raw query value onto a SortOrder, falling back to
// relevancia for absent or unrecognized values.
func ParseSortOrder(raw string) SortOrder {
	switch SortOrder(raw) {
	case SortPrecoAsc, SortPrecoDesc, SortAnoDesc, SortAnoAsc, SortModeloAsc, SortModeloDesc:
		return SortOrder(raw)
	default:
		return SortRelevancia
	}
}

// AllowedPageSizes is the closed set of accepted page sizes.
var AllowedPageSizes = []int{12, 24, 36, 48}

// PageSizeAllowed reports whether size belongs to the accepted set.
func PageSizeAllowed(size int) bool {
	for _, s := range AllowedPageSizes {
		if s == size {
			return true
		}
	}
	return false
}

// VehicleFilter captures filtering criteria for the vehicle listing.
// Empty lists and nil bounds mean no constraint on that dimension; list
// membership is OR within a field, AND across fields.
type VehicleFilter struct {
	Marcas   []string
	Modelos  []string
	AnoMin   *int
	AnoMax   *int
	PrecoMin *float64
	PrecoMax *float64
	Cambios  []string
}

// VehicleListParams bundles pagination, filters and sorting for a listing call.
type VehicleListParams struct {
	Page      int
	PageSize  int
	Filters   VehicleFilter
	SortOrder SortOrder
}

// VehicleListResult is a single page of the filtered, sorted catalog.
type VehicleListResult struct {
	Vehicles   []Vehicle `json:"vehicles"`
	Total      int       `json:"total"`
	Page       int       `json:"page"`
	PageSize   int       `json:"pageSize"`
	TotalPages int       `json:"totalPages"`
}

// FilterOptions is the facet bundle derived from the full catalog.
type FilterOptions struct {
	Marcas  []string `json:"marcas"`
	Modelos []string `json:"modelos"`
	Anos    []int    `json:"anos"`
	Cambios []string `json:"cambios"`
}
