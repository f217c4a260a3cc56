// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/cliente-integral-api/infrastructure/database/postgres"
	"github.com/vfg2006/cliente-integral-api/internal/config"
	"github.com/vfg2006/cliente-integral-api/internal/domain"
)

const (
	customerMembershipTable = "customer_membership cm"
	customerDimensionTable  = "customer_dimension cd"
)

// MembershipRow é uma linha normalizada da tabela de pertencimento
type MembershipRow struct {
	CustomerID string
	Area       string
	Member     bool
}

type CustomerSourceRepository interface {
	Load(ctx context.Context, population string) (*domain.Dataset, error)
}

type customerSourceRepository struct {
	conn   postgres.Queryer
	config *config.Config
	now    func() time.Time
}

func NewCustomerSourceRepository(conn postgres.Queryer, cfg *config.Config) CustomerSourceRepository {
	return &customerSourceRepository{
		conn:   conn,
		config: cfg,
		now:    time.Now,
	}
}

func (r *customerSourceRepository) Load(ctx context.Context, population string) (*domain.Dataset, error) {
	p, ok := r.config.PopulationByName(population)
	if !ok {
		return nil, domain.NewLoadError(population, customerMembershipTable, domain.ErrPopulationNotFound)
	}

	memberships, err := r.listMemberships(ctx, population)
	if err != nil {
		return nil, domain.NewLoadError(population, customerMembershipTable, err)
	}

	dimensions, err := r.listDimensions(ctx, population)
	if err != nil {
		return nil, domain.NewLoadError(population, customerDimensionTable, err)
	}

	return &domain.Dataset{
		Population: population,
		Customers:  BuildCustomers(memberships, p.Areas),
		Dimensions: dimensions,
		LoadedAt:   r.now(),
	}, nil
}

func (r *customerSourceRepository) listMemberships(ctx context.Context, population string) ([]MembershipRow, error) {
	query, args, err := squirrel.
		Select("cm.id_cliente", "cm.area", "cm.member").
		From(customerMembershipTable).
		Where(squirrel.Eq{"cm.population": population}).
		OrderBy("cm.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a query")
	}
	defer rows.Close()

	memberships := make([]MembershipRow, 0)
	for rows.Next() {
		var m MembershipRow
		if err := rows.Scan(&m.CustomerID, &m.Area, &m.Member); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear pertencimento")
		}
		memberships = append(memberships, m)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return memberships, nil
}

func (r *customerSourceRepository) listDimensions(ctx context.Context, population string) ([]domain.DimensionRow, error) {
	query, args, err := squirrel.
		Select(
			"cd.id_cliente",
			"cd.area",
			"cd.dimension_economica",
			"cd.dimension_relacional",
			"cd.dimension_cumplimiento",
			"cd.dimension_potencial",
		).
		From(customerDimensionTable).
		Where(squirrel.Eq{"cd.population": population}).
		OrderBy("cd.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a query")
	}
	defer rows.Close()

	dimensions := make([]domain.DimensionRow, 0)
	for rows.Next() {
		row, err := scanDimensionRow(rows)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear dimensão")
		}
		dimensions = append(dimensions, *row)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return dimensions, nil
}

func scanDimensionRow(rows *sql.Rows) (*domain.DimensionRow, error) {
	row := &domain.DimensionRow{}
	var economic, relational, compliance, potential sql.NullFloat64

	err := rows.Scan(
		&row.CustomerID,
		&row.Area,
		&economic,
		&relational,
		&compliance,
		&potential,
	)
	if err != nil {
		return nil, err
	}

	row.Economic = nullableFloat(economic)
	row.Relational = nullableFloat(relational)
	row.Compliance = nullableFloat(compliance)
	row.Potential = nullableFloat(potential)

	return row, nil
}

func nullableFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

// BuildCustomers agrupa as linhas normalizadas em um CustomerRecord por cliente,
// na ordem da primeira ocorrência. Áreas sem linha contam como não-membro.
func BuildCustomers(memberships []MembershipRow, areas []string) []domain.CustomerRecord {
	index := make(map[string]int)
	customers := make([]domain.CustomerRecord, 0)

	for _, m := range memberships {
		i, exists := index[m.CustomerID]
		if !exists {
			record := domain.CustomerRecord{ID: m.CustomerID, Areas: make(map[string]bool, len(areas))}
			for _, area := range areas {
				record.Areas[area] = false
			}
			customers = append(customers, record)
			i = len(customers) - 1
			index[m.CustomerID] = i
		}
		customers[i].Areas[m.Area] = customers[i].Areas[m.Area] || m.Member
	}

	return customers
}
