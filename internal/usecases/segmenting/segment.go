package segmenting

import (
	"math"
	"sort"

	"github.com/vfg2006/cliente-integral-api/internal/domain"
)

// Segment calcula o score global, os cortes p33/p66 sobre a entrada atual e a
// faixa de cada cliente. O resultado é ordenado por score global decrescente,
// mantendo a ordem original nos empates. Os cortes retornados são os usados na
// classificação; para entrada vazia eles ficam zerados.
func Segment(aggregated []domain.AggregatedCustomer) ([]domain.AggregatedCustomer, domain.Thresholds) {
	if len(aggregated) == 0 {
		return []domain.AggregatedCustomer{}, domain.Thresholds{}
	}

	result := make([]domain.AggregatedCustomer, len(aggregated))
	globals := make([]float64, len(aggregated))
	for i, c := range aggregated {
		c.Global = c.Dimensions.Mean()
		result[i] = c
		globals[i] = c.Global
	}

	thresholds := ComputeThresholds(globals)
	for i := range result {
		result[i].Segment = thresholds.Classify(result[i].Global)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Global > result[j].Global
	})

	return result, thresholds
}

// ComputeThresholds retorna os percentis 33 e 66 dos scores globais
func ComputeThresholds(globals []float64) domain.Thresholds {
	sorted := make([]float64, len(globals))
	copy(sorted, globals)
	sort.Float64s(sorted)

	return domain.Thresholds{
		P33: Percentile(sorted, domain.LowerPercentile),
		P66: Percentile(sorted, domain.UpperPercentile),
	}
}

// Percentile usa interpolação linear entre estatísticas de ordem (posição (n-1)*p/100).
// sorted precisa estar em ordem crescente. Retorna NaN para entrada vazia.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if n == 1 {
		return sorted[0]
	}

	rank := (float64(n) - 1) * p / 100
	lower := int(math.Floor(rank))
	upper := int(math.Ceil(rank))
	if lower < 0 {
		return sorted[0]
	}
	if upper >= n {
		return sorted[n-1]
	}

	fraction := rank - float64(lower)
	return sorted[lower] + fraction*(sorted[upper]-sorted[lower])
}
