package segmenting

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/vfg2006/cliente-integral-api/internal/domain"
)

// ExportHeader é o cabeçalho do CSV de download
var ExportHeader = []string{
	domain.ColumnCustomerID,
	domain.ColumnEconomic,
	domain.ColumnRelational,
	domain.ColumnCompliance,
	domain.ColumnPotential,
	domain.ColumnGlobal,
	domain.ColumnSegment,
}

// WriteCSV escreve os clientes segmentados separados por vírgula, na ordem recebida
func WriteCSV(w io.Writer, customers []domain.AggregatedCustomer) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(ExportHeader); err != nil {
		return fmt.Errorf("erro ao escrever cabeçalho do CSV: %w", err)
	}

	for _, c := range customers {
		record := []string{
			c.CustomerID,
			formatFloat(c.Economic),
			formatFloat(c.Relational),
			formatFloat(c.Compliance),
			formatFloat(c.Potential),
			formatFloat(c.Global),
			string(c.Segment),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("erro ao escrever cliente %s no CSV: %w", c.CustomerID, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// ParseCSV lê de volta um CSV gerado por WriteCSV
func ParseCSV(r io.Reader) ([]domain.AggregatedCustomer, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(ExportHeader)

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("erro ao ler CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("CSV sem cabeçalho")
	}

	for i, name := range ExportHeader {
		if records[0][i] != name {
			return nil, fmt.Errorf("cabeçalho inesperado na coluna %d: %q", i, records[0][i])
		}
	}

	customers := make([]domain.AggregatedCustomer, 0, len(records)-1)
	for line, record := range records[1:] {
		var values [6]float64
		for i := range values {
			v, err := strconv.ParseFloat(record[i+1], 64)
			if err != nil {
				return nil, fmt.Errorf("linha %d, coluna %s: %w", line+2, ExportHeader[i+1], err)
			}
			values[i] = v
		}

		customers = append(customers, domain.AggregatedCustomer{
			CustomerID: record[0],
			Dimensions: domain.DimensionsFromArray([domain.DimensionCount]float64{values[0], values[1], values[2], values[3]}),
			Global:     values[4],
			Segment:    domain.Segment(record[6]),
		})
	}

	return customers, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
