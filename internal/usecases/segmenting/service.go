package segmenting

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vfg2006/cliente-integral-api/internal/config"
	"github.com/vfg2006/cliente-integral-api/internal/domain"
	"github.com/vfg2006/cliente-integral-api/pkg/log"
	"github.com/vfg2006/cliente-integral-api/pkg/utils"
)

var (
	_ Segmenter       = (*Service)(nil)
	_ SourceRefresher = (*Service)(nil)
)

// Service executa o pipeline Loader → Filtro → Agregação → Segmentação
type Service struct {
	populations []domain.Population
	cache       *SourceCache
}

// NewService cria uma nova instância do serviço de segmentação
func NewService(cfg *config.Config, loader SourceLoader) *Service {
	populations := make([]domain.Population, 0, len(cfg.Populations))
	for _, p := range cfg.Populations {
		populations = append(populations, domain.Population{
			Name:  p.Name,
			Areas: append([]string(nil), p.Areas...),
		})
	}

	return &Service{
		populations: populations,
		cache:       NewSourceCache(loader),
	}
}

// Populations lista as variantes configuradas
func (s *Service) Populations() []domain.Population {
	out := make([]domain.Population, len(s.populations))
	copy(out, s.populations)
	return out
}

// Compute executa o pipeline completo para a seleção
func (s *Service) Compute(ctx context.Context, selection domain.Selection) (*domain.SegmentationResult, error) {
	logger := log.ForContext(ctx)

	population, areas, err := s.validateSelection(selection)
	if err != nil {
		return nil, err
	}

	dataset, err := s.cache.Get(ctx, population.Name)
	if err != nil {
		return nil, err
	}

	filtered, err := FilterByAreas(dataset.Customers, areas)
	if err != nil {
		return nil, err
	}

	runID, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar id da execução: %w", err)
	}

	result := &domain.SegmentationResult{
		RunID:         runID,
		Population:    population.Name,
		Areas:         areas,
		FilteredCount: len(filtered),
		Customers:     []domain.AggregatedCustomer{},
	}

	if len(filtered) == 0 {
		logger.WithFields(log.Fields{
			"population": population.Name,
			"areas":      strings.Join(areas, ","),
		}).Info("segmenting: nenhum cliente pertence simultaneamente às áreas selecionadas")
		return result, nil
	}

	aggregated := Aggregate(dataset.Dimensions, areas, filtered)
	segmented, thresholds := Segment(aggregated)

	result.Customers = segmented
	result.GroupAverages = GroupAverages(segmented)
	if len(segmented) > 0 {
		result.Thresholds = &thresholds
	}

	logger.WithFields(log.Fields{
		"run_id":     runID,
		"population": population.Name,
		"areas":      strings.Join(areas, ","),
		"filtered":   len(filtered),
		"segmented":  len(segmented),
	}).Info("segmenting: segmentação calculada")

	return result, nil
}

// CustomerDetail retorna o cliente do resultado atual; false quando ele não faz parte do resultado
func (s *Service) CustomerDetail(ctx context.Context, selection domain.Selection, customerID string) (*domain.AggregatedCustomer, bool, error) {
	result, err := s.Compute(ctx, selection)
	if err != nil {
		return nil, false, err
	}

	for i := range result.Customers {
		if result.Customers[i].CustomerID == customerID {
			customer := result.Customers[i]
			return &customer, true, nil
		}
	}

	return nil, false, nil
}

// ExportCSV escreve o resultado no formato de download
func (*Service) ExportCSV(w io.Writer, customers []domain.AggregatedCustomer) error {
	return WriteCSV(w, customers)
}

// RefreshAll recarrega todas as populações configuradas
func (s *Service) RefreshAll(ctx context.Context) error {
	var errs []error
	for _, p := range s.populations {
		if err := s.cache.Refresh(ctx, p.Name); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Status retorna o estado do cache de fontes
func (s *Service) Status() map[string]any {
	return s.cache.Status()
}

func (s *Service) validateSelection(selection domain.Selection) (domain.Population, []string, error) {
	var population domain.Population
	found := false
	for _, p := range s.populations {
		if p.Name == selection.Population {
			population = p
			found = true
			break
		}
	}
	if !found {
		return domain.Population{}, nil, fmt.Errorf("%w: %s", domain.ErrPopulationNotFound, selection.Population)
	}

	areas := make([]string, 0, len(selection.Areas))
	seen := make(map[string]struct{}, len(selection.Areas))
	for _, area := range selection.Areas {
		area = strings.TrimSpace(area)
		if area == "" {
			continue
		}
		if !population.HasArea(area) {
			return domain.Population{}, nil, domain.NewInvalidSelectionError(fmt.Sprintf("área desconhecida para %s: %s", population.Name, area))
		}
		if _, dup := seen[area]; dup {
			continue
		}
		seen[area] = struct{}{}
		areas = append(areas, area)
	}

	if len(areas) == 0 {
		return domain.Population{}, nil, domain.NewInvalidSelectionError("selecione ao menos uma área")
	}

	return population, areas, nil
}
