package domain

// Segment é a faixa atribuída a um cliente pelo percentil do score global
type Segment string

const (
	SegmentLow    Segment = "Low"
	SegmentMedium Segment = "Medium"
	SegmentHigh   Segment = "High"
)

// Percentis usados como pontos de corte
const (
	LowerPercentile = 33.0
	UpperPercentile = 66.0
)

// Thresholds são os pontos de corte calculados sobre a população atual
type Thresholds struct {
	P33 float64 `json:"p33"`
	P66 float64 `json:"p66"`
}

// Classify aplica os cortes na ordem <= p33, <= p66, > p66
func (t Thresholds) Classify(global float64) Segment {
	switch {
	case global <= t.P33:
		return SegmentLow
	case global <= t.P66:
		return SegmentMedium
	default:
		return SegmentHigh
	}
}

// Selection são os parâmetros de uma execução do pipeline
type Selection struct {
	Population string   `json:"population"`
	Areas      []string `json:"areas"`
}

// SegmentationResult é a resposta completa de uma execução
type SegmentationResult struct {
	RunID         string               `json:"run_id"`
	Population    string               `json:"population"`
	Areas         []string             `json:"areas"`
	FilteredCount int                  `json:"filtered_count"`
	Customers     []AggregatedCustomer `json:"customers"`
	GroupAverages *Dimensions          `json:"group_averages,omitempty"`
	Thresholds    *Thresholds          `json:"thresholds,omitempty"`
}

// IsEmpty indica o caso "sem dados", que não é erro
func (r *SegmentationResult) IsEmpty() bool {
	return r == nil || len(r.Customers) == 0
}

// SegmentCounts conta clientes por faixa
func (r *SegmentationResult) SegmentCounts() map[Segment]int {
	counts := map[Segment]int{SegmentLow: 0, SegmentMedium: 0, SegmentHigh: 0}
	if r == nil {
		return counts
	}
	for _, c := range r.Customers {
		counts[c.Segment]++
	}
	return counts
}
