// Package scheduler contém os serviços de agendamento para recarga das fontes
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cliente-integral-api/internal/config"
	"github.com/vfg2006/cliente-integral-api/internal/usecases/segmenting"
)

type SourceRefreshConfig struct {
	CronSchedule string
	Enabled      bool
}

// SourceRefreshService recarrega periodicamente as tabelas de clientes e dimensões
type SourceRefreshService struct {
	scheduler           *gocron.Scheduler
	refresher           segmenting.SourceRefresher
	config              SourceRefreshConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

func NewSourceRefreshService(refresher segmenting.SourceRefresher, cfg *config.Config) *SourceRefreshService {
	refreshConfig := SourceRefreshConfig{
		CronSchedule: cfg.SourceRefresh.CronSchedule,
		Enabled:      cfg.SourceRefresh.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
		"enabled":       refreshConfig.Enabled,
	}).Info("Configuração do agendador de recarga das fontes carregada")

	return &SourceRefreshService{
		scheduler: gocron.NewScheduler(time.Local),
		refresher: refresher,
		config:    refreshConfig,
	}
}

func (s *SourceRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de recarga das fontes desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de recarga das fontes")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RefreshSources(ctx); err != nil {
			logrus.WithError(err).Error("Erro na recarga das fontes")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recarga das fontes: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de recarga das fontes")
		s.scheduler.Stop()
	}()

	return nil
}

// RefreshSources recarrega todas as populações; execuções simultâneas são ignoradas
func (s *SourceRefreshService) RefreshSources(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Recarga das fontes já está em execução")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	logrus.Info("Iniciando recarga das fontes")
	err := s.refresher.RefreshAll(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastSyncError = ""
	if err != nil {
		s.lastSyncError = err.Error()
	}
	s.syncMutex.Unlock()

	if err != nil {
		return err
	}

	logrus.Info("Recarga das fontes concluída")
	return nil
}

// TriggerManualSync inicia manualmente uma recarga em background
func (s *SourceRefreshService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		logrus.Info("Recarga das fontes já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando recarga manual das fontes")
	go func() {
		if err := s.RefreshSources(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na recarga manual das fontes")
		}
	}()
	return true
}

// GetStatus retorna o status atual do agendador e do cache
func (s *SourceRefreshService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
		"sources":                s.refresher.Status(),
	}
}
