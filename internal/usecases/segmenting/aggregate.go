package segmenting

import (
	"math"

	"github.com/vfg2006/cliente-integral-api/internal/domain"
)

// dimensionAccumulator acumula soma e contagem por dimensão de um cliente
type dimensionAccumulator struct {
	sums   [domain.DimensionCount]float64
	counts [domain.DimensionCount]int
}

func (a *dimensionAccumulator) add(row domain.DimensionRow) {
	for i, v := range row.Values() {
		if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
			continue
		}
		a.sums[i] += *v
		a.counts[i]++
	}
}

// means retorna false se alguma dimensão ficou sem valores
func (a *dimensionAccumulator) means() (domain.Dimensions, bool) {
	var values [domain.DimensionCount]float64
	for i := range values {
		if a.counts[i] == 0 {
			return domain.Dimensions{}, false
		}
		values[i] = a.sums[i] / float64(a.counts[i])
	}
	return domain.DimensionsFromArray(values), true
}

// Aggregate calcula, por cliente, a média de cada dimensão considerando apenas as
// linhas das áreas selecionadas e dos clientes filtrados. Clientes sem linhas
// não aparecem no resultado, nem clientes cujas linhas deixam alguma dimensão sem
// nenhum valor (a média seria NaN). A ordem é a da primeira ocorrência de cada cliente.
func Aggregate(rows []domain.DimensionRow, selectedAreas []string, customerIDs map[string]struct{}) []domain.AggregatedCustomer {
	areas := make(map[string]struct{}, len(selectedAreas))
	for _, a := range selectedAreas {
		areas[a] = struct{}{}
	}

	order := make([]string, 0)
	groups := make(map[string]*dimensionAccumulator)

	for _, row := range rows {
		if _, ok := areas[row.Area]; !ok {
			continue
		}
		if _, ok := customerIDs[row.CustomerID]; !ok {
			continue
		}

		acc, exists := groups[row.CustomerID]
		if !exists {
			acc = &dimensionAccumulator{}
			groups[row.CustomerID] = acc
			order = append(order, row.CustomerID)
		}
		acc.add(row)
	}

	result := make([]domain.AggregatedCustomer, 0, len(order))
	for _, id := range order {
		dims, ok := groups[id].means()
		if !ok {
			continue
		}
		result = append(result, domain.AggregatedCustomer{
			CustomerID: id,
			Dimensions: dims,
		})
	}

	return result
}

// GroupAverages calcula a média de cada dimensão sobre o grupo de clientes
func GroupAverages(customers []domain.AggregatedCustomer) *domain.Dimensions {
	if len(customers) == 0 {
		return nil
	}

	var sum domain.Dimensions
	for _, c := range customers {
		sum.Economic += c.Economic
		sum.Relational += c.Relational
		sum.Compliance += c.Compliance
		sum.Potential += c.Potential
	}

	n := float64(len(customers))
	return &domain.Dimensions{
		Economic:   sum.Economic / n,
		Relational: sum.Relational / n,
		Compliance: sum.Compliance / n,
		Potential:  sum.Potential / n,
	}
}
