package segmenting

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/cliente-integral-api/internal/domain"
)

func aggregated(id string, e, r, c, p float64) domain.AggregatedCustomer {
	return domain.AggregatedCustomer{
		CustomerID: id,
		Dimensions: domain.Dimensions{Economic: e, Relational: r, Compliance: c, Potential: p},
	}
}

func uniform(id string, v float64) domain.AggregatedCustomer {
	return aggregated(id, v, v, v, v)
}

func TestPercentile(t *testing.T) {
	tests := []struct {
		name     string
		sorted   []float64
		p        float64
		expected float64
	}{
		{name: "Mediana com interpolação", sorted: []float64{1, 2, 3, 4}, p: 50, expected: 2.5},
		{name: "p33 de três valores", sorted: []float64{0.1, 0.2, 0.3}, p: 33, expected: 0.166},
		{name: "p66 de três valores", sorted: []float64{0.1, 0.2, 0.3}, p: 66, expected: 0.232},
		{name: "Percentil 0 é o mínimo", sorted: []float64{3, 5, 9}, p: 0, expected: 3},
		{name: "Percentil 100 é o máximo", sorted: []float64{3, 5, 9}, p: 100, expected: 9},
		{name: "Um único valor", sorted: []float64{0.42}, p: 66, expected: 0.42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Percentile(tt.sorted, tt.p), 1e-9)
		})
	}

	assert.True(t, math.IsNaN(Percentile(nil, 50)))
}

func TestSegment(t *testing.T) {
	tests := []struct {
		name     string
		input    []domain.AggregatedCustomer
		expected []struct {
			id      string
			segment domain.Segment
		}
	}{
		{
			name:  "Três clientes - uma faixa para cada",
			input: []domain.AggregatedCustomer{uniform("A", 0.1), uniform("B", 0.3), uniform("C", 0.2)},
			expected: []struct {
				id      string
				segment domain.Segment
			}{
				{"B", domain.SegmentHigh},
				{"C", domain.SegmentMedium},
				{"A", domain.SegmentLow},
			},
		},
		{
			name:  "Um único cliente fica em Low",
			input: []domain.AggregatedCustomer{uniform("A", 0.9)},
			expected: []struct {
				id      string
				segment domain.Segment
			}{
				{"A", domain.SegmentLow},
			},
		},
		{
			name:  "Dois clientes - Low e High",
			input: []domain.AggregatedCustomer{uniform("A", 0.4), uniform("B", 0.6)},
			expected: []struct {
				id      string
				segment domain.Segment
			}{
				{"B", domain.SegmentHigh},
				{"A", domain.SegmentLow},
			},
		},
		{
			name:  "Empates mantêm a ordem de entrada e caem todos em Low",
			input: []domain.AggregatedCustomer{uniform("A", 0.5), uniform("B", 0.5), uniform("C", 0.5)},
			expected: []struct {
				id      string
				segment domain.Segment
			}{
				{"A", domain.SegmentLow},
				{"B", domain.SegmentLow},
				{"C", domain.SegmentLow},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, _ := Segment(tt.input)

			require.Len(t, result, len(tt.expected))
			for i, exp := range tt.expected {
				assert.Equal(t, exp.id, result[i].CustomerID)
				assert.Equal(t, exp.segment, result[i].Segment)
			}
		})
	}
}

func TestSegment_ScenarioGlobal(t *testing.T) {
	result, thresholds := Segment([]domain.AggregatedCustomer{aggregated("B", 0.6, 0.5, 0.5, 0.5)})

	require.Len(t, result, 1)
	assert.InDelta(t, 0.525, thresholds.P33, 1e-9)
	assert.InDelta(t, 0.525, thresholds.P66, 1e-9)
	assert.InDelta(t, 0.525, result[0].Global, 1e-9)
	assert.Equal(t, domain.SegmentLow, result[0].Segment)
}

func TestSegment_Empty(t *testing.T) {
	result, thresholds := Segment(nil)

	assert.NotNil(t, result)
	assert.Empty(t, result)
	assert.Equal(t, domain.Thresholds{}, thresholds)
}

func TestSegment_Invariants(t *testing.T) {
	input := []domain.AggregatedCustomer{
		uniform("A", 0.12), uniform("B", 0.87), uniform("C", 0.45), uniform("D", 0.45),
		uniform("E", 0.66), uniform("F", 0.05), uniform("G", 0.91), uniform("H", 0.33),
	}

	result, thresholds := Segment(input)
	require.Len(t, result, len(input))

	// Os cortes devolvidos são os mesmos calculados sobre os scores do resultado
	globals := make([]float64, len(result))
	for i, c := range result {
		globals[i] = c.Global
	}
	assert.Equal(t, ComputeThresholds(globals), thresholds)

	rank := map[domain.Segment]int{domain.SegmentLow: 0, domain.SegmentMedium: 1, domain.SegmentHigh: 2}
	for i, c := range result {
		assert.InDelta(t, c.Dimensions.Mean(), c.Global, 1e-12)
		assert.Equal(t, thresholds.Classify(c.Global), c.Segment)
		if i > 0 {
			// Ordem decrescente e faixas nunca sobem ao descer a lista
			assert.GreaterOrEqual(t, result[i-1].Global, c.Global)
			assert.GreaterOrEqual(t, rank[result[i-1].Segment], rank[c.Segment])
		}
	}

	// C e D empatam; a ordem de entrada é preservada
	var tied []string
	for _, c := range result {
		if c.CustomerID == "C" || c.CustomerID == "D" {
			tied = append(tied, c.CustomerID)
		}
	}
	assert.Equal(t, []string{"C", "D"}, tied)
}

func TestSegment_DoesNotMutateInput(t *testing.T) {
	input := []domain.AggregatedCustomer{uniform("A", 0.1), uniform("B", 0.9)}

	Segment(input)

	assert.Equal(t, "A", input[0].CustomerID)
	assert.Zero(t, input[0].Global)
	assert.Empty(t, input[0].Segment)
}
