// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

// Nomes de colunas das fontes tabulares
const (
	ColumnCustomerID  = "id_cliente"
	ColumnArea        = "area"
	ColumnEconomic    = "dimension_economica"
	ColumnRelational  = "dimension_relacional"
	ColumnCompliance  = "dimension_cumplimiento"
	ColumnPotential   = "dimension_potencial"
	ColumnGlobal      = "promedio_global"
	ColumnSegment     = "segmento"
	DimensionCount    = 4
	PopulationDefault = "residencial"
)

// CustomerRecord representa um cliente e as áreas às quais pertence
type CustomerRecord struct {
	ID    string          `json:"id_cliente"`
	Areas map[string]bool `json:"areas"`
}

// IsMember indica se o cliente está marcado como membro da área.
// Áreas ausentes do registro contam como não-membro.
func (c CustomerRecord) IsMember(area string) bool {
	return c.Areas[area]
}

// DimensionRow é uma linha da tabela de dimensões (um cliente em uma área).
// Ponteiro nil significa valor ausente.
type DimensionRow struct {
	CustomerID string   `json:"id_cliente"`
	Area       string   `json:"area"`
	Economic   *float64 `json:"dimension_economica"`
	Relational *float64 `json:"dimension_relacional"`
	Compliance *float64 `json:"dimension_cumplimiento"`
	Potential  *float64 `json:"dimension_potencial"`
}

// Values retorna as quatro dimensões na ordem econômica, relacional, cumprimento, potencial
func (r DimensionRow) Values() [DimensionCount]*float64 {
	return [DimensionCount]*float64{r.Economic, r.Relational, r.Compliance, r.Potential}
}

// Dimensions agrupa as médias das quatro dimensões
type Dimensions struct {
	Economic   float64 `json:"dimension_economica"`
	Relational float64 `json:"dimension_relacional"`
	Compliance float64 `json:"dimension_cumplimiento"`
	Potential  float64 `json:"dimension_potencial"`
}

// Mean retorna a média simples das quatro dimensões
func (d Dimensions) Mean() float64 {
	return (d.Economic + d.Relational + d.Compliance + d.Potential) / DimensionCount
}

// DimensionsFromArray monta Dimensions a partir de um array na ordem de DimensionRow.Values
func DimensionsFromArray(values [DimensionCount]float64) Dimensions {
	return Dimensions{
		Economic:   values[0],
		Relational: values[1],
		Compliance: values[2],
		Potential:  values[3],
	}
}

// AggregatedCustomer é o resultado por cliente do pipeline
type AggregatedCustomer struct {
	CustomerID string `json:"id_cliente"`
	Dimensions
	Global  float64 `json:"promedio_global"`
	Segment Segment `json:"segmento"`
}

// Dataset é o par de tabelas carregado para uma população
type Dataset struct {
	Population string           `json:"population"`
	Customers  []CustomerRecord `json:"-"`
	Dimensions []DimensionRow   `json:"-"`
	LoadedAt   time.Time        `json:"loaded_at"`
}

// Population descreve uma variante de esquema configurada
type Population struct {
	Name  string   `json:"name"`
	Areas []string `json:"areas"`
}

// HasArea verifica se a área faz parte do vocabulário da população
func (p Population) HasArea(area string) bool {
	for _, a := range p.Areas {
		if a == area {
			return true
		}
	}
	return false
}
