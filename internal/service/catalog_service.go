package service

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/autodrive/catalogo-api/internal/models"
	appErrors "github.com/autodrive/catalogo-api/pkg/errors"
)

type vehicleRepository interface {
	List(ctx context.Context) ([]models.Vehicle, error)
	FindByID(ctx context.Context, id int) (*models.Vehicle, error)
}

type facetCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

const filterOptionsCacheKey = "catalog:filter-options"

// CatalogService implements the listing query engine: filtering, sorting and
// pagination over a snapshot of the vehicle collection, plus facet
// derivation. Every operation is a pure function of the snapshot.
type CatalogService struct {
	repo     vehicleRepository
	cache    facetCache
	cacheTTL time.Duration
	metrics  *MetricsService
	logger   *zap.Logger
}

// NewCatalogService constructs the catalog service. cache may be nil.
func NewCatalogService(repo vehicleRepository, cache facetCache, cacheTTL time.Duration, metrics *MetricsService, logger *zap.Logger) *CatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{repo: repo, cache: cache, cacheTTL: cacheTTL, metrics: metrics, logger: logger}
}

// List applies filters, sorting and pagination to the current catalog
// snapshot. Pages beyond the last yield an empty slice, not an error.
func (s *CatalogService) List(ctx context.Context, params models.VehicleListParams) (*models.VehicleListResult, error) {
	vehicles, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load catalog")
	}

	page := params.Page
	if page < 1 {
		page = 1
	}
	pageSize := params.PageSize
	if pageSize <= 0 {
		pageSize = models.AllowedPageSizes[0]
	}

	filtered := applyFilters(vehicles, params.Filters)
	applySorting(filtered, params.SortOrder)

	total := len(filtered)
	totalPages := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	pageSlice := make([]models.Vehicle, end-start)
	copy(pageSlice, filtered[start:end])

	return &models.VehicleListResult{
		Vehicles:   pageSlice,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

// FilterOptions derives the facet bundle from the full collection. The
// bundle is cached because the catalog changes far less often than the
// filter sidebar is rendered.
func (s *CatalogService) FilterOptions(ctx context.Context) (*models.FilterOptions, error) {
	if s.cache != nil {
		start := time.Now()
		var cached models.FilterOptions
		err := s.cache.Get(ctx, filterOptionsCacheKey, &cached)
		s.metrics.RecordCacheOperation(err == nil, time.Since(start))
		if err == nil {
			return &cached, nil
		}
		if appErrors.FromError(err).Code != appErrors.ErrCacheMiss.Code {
			s.logger.Warn("filter options cache lookup failed", zap.Error(err))
		}
	}

	vehicles, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load catalog")
	}

	options := deriveFacets(vehicles)

	if s.cache != nil {
		start := time.Now()
		if err := s.cache.Set(ctx, filterOptionsCacheKey, options, s.cacheTTL); err != nil {
			s.logger.Warn("filter options cache write failed", zap.Error(err))
		}
		s.metrics.ObserveCacheWrite(time.Since(start))
	}

	return options, nil
}

// ModelosByMarcas returns the distinct model names for the given brands,
// or all model names when no brand is selected.
func (s *CatalogService) ModelosByMarcas(ctx context.Context, marcas []string) ([]string, error) {
	vehicles, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load catalog")
	}

	brandSet := toSet(marcas)
	modelos := make(map[string]struct{})
	for _, v := range vehicles {
		if len(brandSet) > 0 {
			if _, ok := brandSet[v.Marca]; !ok {
				continue
			}
		}
		modelos[v.Modelo] = struct{}{}
	}

	return sortedStrings(modelos), nil
}

// applyFilters narrows the collection with each active predicate. The
// predicates are independent, so application order never changes the result.
func applyFilters(vehicles []models.Vehicle, filters models.VehicleFilter) []models.Vehicle {
	marcas := toSet(filters.Marcas)
	modelos := toSet(filters.Modelos)
	cambios := toSet(filters.Cambios)

	filtered := make([]models.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if len(marcas) > 0 {
			if _, ok := marcas[v.Marca]; !ok {
				continue
			}
		}
		if len(modelos) > 0 {
			if _, ok := modelos[v.Modelo]; !ok {
				continue
			}
		}
		if filters.AnoMin != nil && v.Ano < *filters.AnoMin {
			continue
		}
		if filters.AnoMax != nil && v.Ano > *filters.AnoMax {
			continue
		}
		if filters.PrecoMin != nil && v.Preco < *filters.PrecoMin {
			continue
		}
		if filters.PrecoMax != nil && v.Preco > *filters.PrecoMax {
			continue
		}
		if len(cambios) > 0 {
			// Null transmissions never match a cambio filter.
			if v.Cambio == nil {
				continue
			}
			if _, ok := cambios[string(*v.Cambio)]; !ok {
				continue
			}
		}
		filtered = append(filtered, v)
	}
	return filtered
}

// applySorting reorders vehicles in place. The sort is stable: records with
// equal keys keep their relative input order, and relevancia keeps the
// input order untouched.
func applySorting(vehicles []models.Vehicle, order models.SortOrder) {
	switch order {
	case models.SortPrecoAsc:
		sort.SliceStable(vehicles, func(i, j int) bool { return vehicles[i].Preco < vehicles[j].Preco })
	case models.SortPrecoDesc:
		sort.SliceStable(vehicles, func(i, j int) bool { return vehicles[i].Preco > vehicles[j].Preco })
	case models.SortAnoAsc:
		sort.SliceStable(vehicles, func(i, j int) bool { return vehicles[i].Ano < vehicles[j].Ano })
	case models.SortAnoDesc:
		sort.SliceStable(vehicles, func(i, j int) bool { return vehicles[i].Ano > vehicles[j].Ano })
	case models.SortModeloAsc:
		c := newCollator()
		sort.SliceStable(vehicles, func(i, j int) bool { return c.CompareString(vehicles[i].Modelo, vehicles[j].Modelo) < 0 })
	case models.SortModeloDesc:
		c := newCollator()
		sort.SliceStable(vehicles, func(i, j int) bool { return c.CompareString(vehicles[i].Modelo, vehicles[j].Modelo) > 0 })
	}
}

// deriveFacets projects the distinct values of each filterable field.
// Marcas, modelos and cambios ascend; anos descend (most recent first).
func deriveFacets(vehicles []models.Vehicle) *models.FilterOptions {
	marcas := make(map[string]struct{})
	modelos := make(map[string]struct{})
	anos := make(map[int]struct{})
	cambios := make(map[string]struct{})

	for _, v := range vehicles {
		marcas[v.Marca] = struct{}{}
		modelos[v.Modelo] = struct{}{}
		anos[v.Ano] = struct{}{}
		if v.Cambio != nil {
			cambios[string(*v.Cambio)] = struct{}{}
		}
	}

	anosList := make([]int, 0, len(anos))
	for ano := range anos {
		anosList = append(anosList, ano)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(anosList)))

	return &models.FilterOptions{
		Marcas:  sortedStrings(marcas),
		Modelos: sortedStrings(modelos),
		Anos:    anosList,
		Cambios: sortedStrings(cambios),
	}
}

// newCollator builds a pt-BR collator. Collators carry internal buffers and
// are not safe for concurrent use, so each sort gets its own.
func newCollator() *collate.Collator {
	return collate.New(language.BrazilianPortuguese)
}

func sortedStrings(set map[string]struct{}) []string {
	values := make([]string, 0, len(set))
	for v := range set {
		values = append(values, v)
	}
	newCollator().SortStrings(values)
	return values
}

func toSet(values []string) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
