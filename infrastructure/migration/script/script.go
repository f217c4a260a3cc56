package main

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cliente-integral-api/infrastructure/loader"
	"github.com/vfg2006/cliente-integral-api/internal/config"
	"github.com/vfg2006/cliente-integral-api/internal/domain"
)

// Lote de linhas por INSERT
const batchSize = 500

const schema = `
CREATE TABLE IF NOT EXISTS customer_membership (
	id          BIGSERIAL PRIMARY KEY,
	population  TEXT    NOT NULL,
	id_cliente  TEXT    NOT NULL,
	area        TEXT    NOT NULL,
	member      BOOLEAN NOT NULL DEFAULT FALSE
);

CREATE TABLE IF NOT EXISTS customer_dimension (
	id                     BIGSERIAL PRIMARY KEY,
	population             TEXT NOT NULL,
	id_cliente             TEXT NOT NULL,
	area                   TEXT NOT NULL,
	dimension_economica    DOUBLE PRECISION,
	dimension_relacional   DOUBLE PRECISION,
	dimension_cumplimiento DOUBLE PRECISION,
	dimension_potencial    DOUBLE PRECISION
);

CREATE INDEX IF NOT EXISTS idx_customer_membership_population ON customer_membership (population);
CREATE INDEX IF NOT EXISTS idx_customer_dimension_population ON customer_dimension (population);
`

// Importa os CSVs de cada população configurada para as tabelas usadas pelo SOURCE_DRIVER=postgres
func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339})
	logrus.Info("Iniciando script de importação...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar configuração")
	}

	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao abrir conexão com PostgreSQL")
	}
	defer db.Close()

	ctx := context.Background()
	if _, err := db.ExecContext(ctx, schema); err != nil {
		logrus.WithError(err).Fatal("Erro ao criar tabelas")
	}

	csvLoader := loader.NewCSVLoader(cfg)
	for _, p := range cfg.Populations {
		startTime := time.Now()

		dataset, err := csvLoader.Load(ctx, p.Name)
		if err != nil {
			logrus.WithError(err).Fatalf("Erro ao ler CSVs da população %s", p.Name)
		}

		if err := importDataset(ctx, db, dataset, p.Areas); err != nil {
			logrus.WithError(err).Fatalf("Erro ao importar população %s", p.Name)
		}

		logrus.WithFields(logrus.Fields{
			"population":  p.Name,
			"customers":   len(dataset.Customers),
			"dimensions":  len(dataset.Dimensions),
			"duration_ms": time.Since(startTime).Milliseconds(),
		}).Info("População importada")
	}

	logrus.Info("Importação concluída")
}

// importDataset substitui as linhas da população em uma única transação
func importDataset(ctx context.Context, db *sql.DB, dataset *domain.Dataset, areas []string) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"customer_membership", "customer_dimension"} {
		query, args, err := squirrel.Delete(table).
			Where(squirrel.Eq{"population": dataset.Population}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return err
		}
	}

	membership := newBatch("customer_membership", "population", "id_cliente", "area", "member")
	for _, c := range dataset.Customers {
		for _, area := range areas {
			if err := membership.add(ctx, tx, dataset.Population, c.ID, area, c.Areas[area]); err != nil {
				return err
			}
		}
	}
	if err := membership.flush(ctx, tx); err != nil {
		return err
	}

	dimensions := newBatch("customer_dimension",
		"population", "id_cliente", "area",
		domain.ColumnEconomic, domain.ColumnRelational, domain.ColumnCompliance, domain.ColumnPotential,
	)
	for _, row := range dataset.Dimensions {
		err := dimensions.add(ctx, tx, dataset.Population, row.CustomerID, row.Area,
			row.Economic, row.Relational, row.Compliance, row.Potential)
		if err != nil {
			return err
		}
	}
	if err := dimensions.flush(ctx, tx); err != nil {
		return err
	}

	return tx.Commit()
}

type batch struct {
	table   string
	columns []string
	rows    [][]any
}

func newBatch(table string, columns ...string) *batch {
	return &batch{table: table, columns: columns}
}

func (b *batch) add(ctx context.Context, tx *sql.Tx, values ...any) error {
	b.rows = append(b.rows, values)
	if len(b.rows) >= batchSize {
		return b.flush(ctx, tx)
	}
	return nil
}

func (b *batch) flush(ctx context.Context, tx *sql.Tx) error {
	if len(b.rows) == 0 {
		return nil
	}

	insert := squirrel.Insert(b.table).Columns(b.columns...).PlaceholderFormat(squirrel.Dollar)
	for _, row := range b.rows {
		insert = insert.Values(row...)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return err
	}

	b.rows = b.rows[:0]
	return nil
}
