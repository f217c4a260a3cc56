// Package loader contém a carga das fontes tabulares em arquivos CSV
package loader

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"github.com/vfg2006/cliente-integral-api/internal/config"
	"github.com/vfg2006/cliente-integral-api/internal/domain"
	"github.com/vfg2006/cliente-integral-api/pkg/log"
)

// Aliases aceitos para cada coluna obrigatória
var columnAliases = map[string][]string{
	domain.ColumnCustomerID: {domain.ColumnCustomerID, "customer_id"},
	domain.ColumnArea:       {domain.ColumnArea},
	domain.ColumnEconomic:   {domain.ColumnEconomic, "economic"},
	domain.ColumnRelational: {domain.ColumnRelational, "relational"},
	domain.ColumnCompliance: {domain.ColumnCompliance, "compliance"},
	domain.ColumnPotential:  {domain.ColumnPotential, "potential"},
}

var dimensionColumns = []string{
	domain.ColumnEconomic,
	domain.ColumnRelational,
	domain.ColumnCompliance,
	domain.ColumnPotential,
}

// CSVLoader carrega o par de arquivos (clientes, dimensões) de cada população
type CSVLoader struct {
	config *config.Config
	now    func() time.Time
}

// NewCSVLoader cria o loader a partir das populações configuradas
func NewCSVLoader(cfg *config.Config) *CSVLoader {
	return &CSVLoader{
		config: cfg,
		now:    time.Now,
	}
}

// Load lê e converte as duas tabelas da população
func (l *CSVLoader) Load(ctx context.Context, population string) (*domain.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.NewLoadError(population, "", err)
	}

	p, ok := l.config.PopulationByName(population)
	if !ok {
		return nil, domain.NewLoadError(population, "", domain.ErrPopulationNotFound)
	}

	customers, err := l.loadCustomers(p)
	if err != nil {
		return nil, err
	}

	dimensions, err := l.loadDimensions(p)
	if err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"population": population,
		"customers":  len(customers),
		"dimensions": len(dimensions),
	}).Debug("csv-loader: arquivos lidos")

	return &domain.Dataset{
		Population: population,
		Customers:  customers,
		Dimensions: dimensions,
		LoadedAt:   l.now(),
	}, nil
}

func (l *CSVLoader) loadCustomers(p config.Population) ([]domain.CustomerRecord, error) {
	df, err := readFile(p.CustomersPath)
	if err != nil {
		return nil, domain.NewLoadError(p.Name, p.CustomersPath, err)
	}

	customers, err := ParseCustomers(df, p.Areas)
	if err != nil {
		return nil, withSource(err, p.Name, p.CustomersPath)
	}
	return customers, nil
}

func (l *CSVLoader) loadDimensions(p config.Population) ([]domain.DimensionRow, error) {
	df, err := readFile(p.DimensionsPath)
	if err != nil {
		return nil, domain.NewLoadError(p.Name, p.DimensionsPath, err)
	}

	rows, err := ParseDimensions(df)
	if err != nil {
		return nil, withSource(err, p.Name, p.DimensionsPath)
	}
	return rows, nil
}

// withSource completa o LoadError com a população e o arquivo de origem
func withSource(err error, population, source string) error {
	var loadErr *domain.LoadError
	if errors.As(err, &loadErr) {
		loadErr.Population = population
		loadErr.Source = source
		return loadErr
	}
	return domain.NewLoadError(population, source, err)
}

func readFile(path string) (dataframe.DataFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, errors.Wrap(err, "erro ao abrir arquivo")
	}
	defer f.Close()

	return ReadFrame(f)
}

// ReadFrame lê um CSV com cabeçalho mantendo todas as colunas como texto.
// Um arquivo só com cabeçalho resulta em um DataFrame sem linhas.
func ReadFrame(r io.Reader) (dataframe.DataFrame, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return dataframe.DataFrame{}, errors.Wrap(err, "erro ao ler CSV")
	}
	if len(records) == 0 {
		return dataframe.DataFrame{}, errors.New("erro ao ler CSV: arquivo sem cabeçalho")
	}
	if len(records) == 1 {
		return emptyFrame(records[0])
	}

	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return dataframe.DataFrame{}, errors.Wrap(df.Err, "erro ao ler CSV")
	}
	return df, nil
}

func emptyFrame(header []string) (dataframe.DataFrame, error) {
	columns := make([]series.Series, 0, len(header))
	for _, name := range header {
		columns = append(columns, series.New([]string{}, series.String, name))
	}

	df := dataframe.New(columns...)
	if df.Err != nil {
		return dataframe.DataFrame{}, errors.Wrap(df.Err, "erro ao ler CSV")
	}
	return df, nil
}

// ParseCustomers converte a tabela de pertencimento; cada área da população precisa ser uma coluna
func ParseCustomers(df dataframe.DataFrame, areas []string) ([]domain.CustomerRecord, error) {
	names := headerIndex(df.Names())

	idColumn, err := resolveColumn(names, domain.ColumnCustomerID)
	if err != nil {
		return nil, domain.NewLoadError("", "customers", err)
	}

	ids := df.Col(idColumn).Records()
	flags := make(map[string][]string, len(areas))
	for _, area := range areas {
		column, ok := names[strings.ToLower(area)]
		if !ok {
			return nil, domain.NewLoadError("", "customers", errors.Errorf("coluna obrigatória ausente: %s", area))
		}
		flags[area] = df.Col(column).Records()
	}

	customers := make([]domain.CustomerRecord, 0, len(ids))
	for i, raw := range ids {
		id := strings.TrimSpace(raw)
		if isMissing(id) {
			return nil, domain.NewLoadError("", "customers", errors.Errorf("linha %d: %s vazio", i+2, domain.ColumnCustomerID))
		}

		record := domain.CustomerRecord{ID: id, Areas: make(map[string]bool, len(areas))}
		for _, area := range areas {
			member, err := parseFlag(flags[area][i])
			if err != nil {
				return nil, domain.NewLoadError("", "customers", errors.Wrapf(err, "linha %d, coluna %s", i+2, area))
			}
			record.Areas[area] = member
		}
		customers = append(customers, record)
	}

	return customers, nil
}

// ParseDimensions converte a tabela de dimensões
func ParseDimensions(df dataframe.DataFrame) ([]domain.DimensionRow, error) {
	names := headerIndex(df.Names())

	required := append([]string{domain.ColumnCustomerID, domain.ColumnArea}, dimensionColumns...)
	columns := make(map[string][]string, len(required))
	for _, name := range required {
		column, err := resolveColumn(names, name)
		if err != nil {
			return nil, domain.NewLoadError("", "dimensions", err)
		}
		columns[name] = df.Col(column).Records()
	}

	ids := columns[domain.ColumnCustomerID]
	rows := make([]domain.DimensionRow, 0, len(ids))
	for i := range ids {
		id := strings.TrimSpace(ids[i])
		if isMissing(id) {
			return nil, domain.NewLoadError("", "dimensions", errors.Errorf("linha %d: %s vazio", i+2, domain.ColumnCustomerID))
		}

		row := domain.DimensionRow{
			CustomerID: id,
			Area:       strings.TrimSpace(columns[domain.ColumnArea][i]),
		}

		targets := []**float64{&row.Economic, &row.Relational, &row.Compliance, &row.Potential}
		for j, name := range dimensionColumns {
			value, err := parseScore(columns[name][i])
			if err != nil {
				return nil, domain.NewLoadError("", "dimensions", errors.Wrapf(err, "linha %d, coluna %s", i+2, name))
			}
			*targets[j] = value
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// headerIndex mapeia o nome normalizado da coluna para o nome original do arquivo
func headerIndex(names []string) map[string]string {
	index := make(map[string]string, len(names))
	for _, name := range names {
		normalized := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if _, exists := index[normalized]; !exists {
			index[normalized] = name
		}
	}
	return index
}

func resolveColumn(index map[string]string, canonical string) (string, error) {
	for _, alias := range columnAliases[canonical] {
		if original, ok := index[alias]; ok {
			return original, nil
		}
	}
	return "", errors.Errorf("coluna obrigatória ausente: %s", canonical)
}

func isMissing(value string) bool {
	switch strings.TrimSpace(value) {
	case "", "NaN", "nan", "NA", "<nil>", "null", "NULL":
		return true
	}
	return false
}

// parseFlag aceita 1/0, true/false e 1.0/0.0; célula vazia conta como não-membro
func parseFlag(value string) (bool, error) {
	value = strings.TrimSpace(value)
	if isMissing(value) {
		return false, nil
	}

	if b, err := cast.ToBoolE(value); err == nil {
		return b, nil
	}

	f, err := cast.ToFloat64E(value)
	if err != nil || (f != 0 && f != 1) {
		return false, errors.Errorf("indicador de pertencimento inválido: %q", value)
	}
	return f == 1, nil
}

// parseScore retorna nil para valores ausentes
func parseScore(value string) (*float64, error) {
	value = strings.TrimSpace(value)
	if isMissing(value) {
		return nil, nil
	}

	f, err := cast.ToFloat64E(value)
	if err != nil {
		return nil, errors.Errorf("valor numérico inválido: %q", value)
	}
	return &f, nil
}
