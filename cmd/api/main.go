package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cliente-integral-api/infrastructure/database/postgres"
	"github.com/vfg2006/cliente-integral-api/infrastructure/loader"
	"github.com/vfg2006/cliente-integral-api/infrastructure/repository"
	"github.com/vfg2006/cliente-integral-api/internal/api"
	"github.com/vfg2006/cliente-integral-api/internal/config"
	"github.com/vfg2006/cliente-integral-api/internal/scheduler"
	"github.com/vfg2006/cliente-integral-api/internal/usecases/segmenting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var sourceLoader segmenting.SourceLoader
	switch cfg.Source.Driver {
	case config.SourceDriverPostgres:
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()
		sourceLoader = repository.NewCustomerSourceRepository(pgConn, cfg)
	default:
		sourceLoader = loader.NewCSVLoader(cfg)
	}

	logrus.WithFields(logrus.Fields{
		"driver":      cfg.Source.Driver,
		"populations": len(cfg.Populations),
	}).Info("Fontes de dados configuradas")

	segmentService := segmenting.NewService(cfg, sourceLoader)

	// Carga inicial; falhas não impedem a subida, a próxima requisição tenta de novo
	if err := segmentService.RefreshAll(ctx); err != nil {
		logrus.WithError(err).Warn("Erro na carga inicial das fontes")
	}

	sourceRefreshService := scheduler.NewSourceRefreshService(segmentService, cfg)
	if err := sourceRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recarga das fontes")
	} else {
		logrus.Info("Agendador de recarga das fontes iniciado com sucesso")
	}

	server, err := api.New(cfg, segmentService, sourceRefreshService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
