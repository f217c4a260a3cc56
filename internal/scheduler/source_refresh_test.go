package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/cliente-integral-api/internal/config"
	"github.com/vfg2006/cliente-integral-api/internal/usecases/segmenting/mocks"
	"go.uber.org/mock/gomock"
)

func newTestConfig(enabled bool, cron string) *config.Config {
	return &config.Config{
		SourceRefresh: config.SourceRefresh{CronSchedule: cron, Enabled: enabled},
	}
}

func TestSourceRefreshService_RefreshSources(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(refresher *mocks.MockSourceRefresher)
		validate func(t *testing.T, service *SourceRefreshService, err error)
	}{
		{
			name: "Recarga bem-sucedida limpa o último erro",
			setup: func(refresher *mocks.MockSourceRefresher) {
				refresher.EXPECT().RefreshAll(gomock.Any()).Return(nil)
				refresher.EXPECT().Status().Return(map[string]any{"residencial": map[string]any{"customers": 10}})
			},
			validate: func(t *testing.T, service *SourceRefreshService, err error) {
				require.NoError(t, err)

				status := service.GetStatus()
				assert.Equal(t, false, status["sync_running"])
				assert.Equal(t, "", status["last_sync_error"])
				assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
				assert.Contains(t, status["sources"], "residencial")
			},
		},
		{
			name: "Falha na recarga fica registrada no status",
			setup: func(refresher *mocks.MockSourceRefresher) {
				refresher.EXPECT().RefreshAll(gomock.Any()).Return(errors.New("arquivo não encontrado"))
				refresher.EXPECT().Status().Return(map[string]any{})
			},
			validate: func(t *testing.T, service *SourceRefreshService, err error) {
				require.Error(t, err)

				status := service.GetStatus()
				assert.Equal(t, "arquivo não encontrado", status["last_sync_error"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			refresher := mocks.NewMockSourceRefresher(ctrl)
			tt.setup(refresher)

			service := NewSourceRefreshService(refresher, newTestConfig(false, "0 2 * * *"))
			err := service.RefreshSources(context.Background())

			tt.validate(t, service, err)
		})
	}
}

func TestSourceRefreshService_SingleFlight(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	started := make(chan struct{})
	release := make(chan struct{})

	refresher := mocks.NewMockSourceRefresher(ctrl)
	refresher.EXPECT().RefreshAll(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		close(started)
		<-release
		return nil
	}).Times(1)

	service := NewSourceRefreshService(refresher, newTestConfig(false, "0 2 * * *"))

	done := make(chan error, 1)
	go func() {
		done <- service.RefreshSources(context.Background())
	}()
	<-started

	// Segunda execução é ignorada enquanto a primeira está em andamento
	assert.NoError(t, service.RefreshSources(context.Background()))
	assert.False(t, service.TriggerManualSync())

	close(release)
	assert.NoError(t, <-done)
}

func TestSourceRefreshService_TriggerManualSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	called := make(chan struct{})
	refresher := mocks.NewMockSourceRefresher(ctrl)
	refresher.EXPECT().RefreshAll(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		close(called)
		return nil
	})

	service := NewSourceRefreshService(refresher, newTestConfig(false, "0 2 * * *"))

	assert.True(t, service.TriggerManualSync())

	select {
	case <-called:
	case <-time.After(2 * time.Second):
		t.Fatal("recarga manual não foi executada")
	}
}

func TestSourceRefreshService_Start(t *testing.T) {
	t.Run("Desabilitado não agenda nada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewSourceRefreshService(mocks.NewMockSourceRefresher(ctrl), newTestConfig(false, ""))

		require.NoError(t, service.Start(context.Background()))
		assert.Empty(t, service.scheduler.Jobs())
	})

	t.Run("Expressão cron inválida", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewSourceRefreshService(mocks.NewMockSourceRefresher(ctrl), newTestConfig(true, "não é cron"))

		assert.Error(t, service.Start(context.Background()))
	})

	t.Run("Habilitado agenda o job e para com o contexto", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		service := NewSourceRefreshService(mocks.NewMockSourceRefresher(ctrl), newTestConfig(true, "0 2 * * *"))

		require.NoError(t, service.Start(ctx))
		assert.Len(t, service.scheduler.Jobs(), 1)
	})
}
