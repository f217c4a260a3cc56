package segmenting

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/cliente-integral-api/internal/domain"
)

func TestWriteCSV_RoundTrip(t *testing.T) {
	customers, _ := Segment([]domain.AggregatedCustomer{
		aggregated("1001", 0.1+0.2, 1.0/3.0, 0.5, 0.75),
		aggregated("1002", 0.9, 0.8, 0.7, 0.6),
		aggregated("1003", -0.25, 1.5, 0, 0.123456789012345),
	})

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, customers))

	parsed, err := ParseCSV(&buf)
	require.NoError(t, err)
	assert.Equal(t, customers, parsed)
}

func TestWriteCSV_Header(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))

	assert.Equal(t,
		"id_cliente,dimension_economica,dimension_relacional,dimension_cumplimiento,dimension_potencial,promedio_global,segmento\n",
		buf.String(),
	)
}

func TestWriteCSV_KeepsOrder(t *testing.T) {
	customers := []domain.AggregatedCustomer{uniform("Z", 0.1), uniform("A", 0.9)}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, customers))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "Z,"))
	assert.True(t, strings.HasPrefix(lines[2], "A,"))
}

func TestParseCSV_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "Arquivo vazio", input: ""},
		{name: "Cabeçalho diferente", input: "id,a,b,c,d,e,f\n"},
		{name: "Número inválido", input: strings.Join(ExportHeader, ",") + "\n1,x,0,0,0,0,Low\n"},
		{name: "Quantidade de colunas errada", input: strings.Join(ExportHeader, ",") + "\n1,0,0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCSV(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}
