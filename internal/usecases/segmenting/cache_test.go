package segmenting

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/cliente-integral-api/internal/domain"
	"github.com/vfg2006/cliente-integral-api/internal/usecases/segmenting/mocks"
	"go.uber.org/mock/gomock"
)

func TestSourceCache_GetConcurrent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loader := mocks.NewMockSourceLoader(ctrl)
	loader.EXPECT().Load(gomock.Any(), testPopulation).Return(scenarioDataset(), nil).Times(1)

	cache := NewSourceCache(loader)

	var wg sync.WaitGroup
	results := make([]*domain.Dataset, 10)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			dataset, err := cache.Get(context.Background(), testPopulation)
			assert.NoError(t, err)
			results[i] = dataset
		}(i)
	}
	wg.Wait()

	for _, dataset := range results {
		assert.Same(t, results[0], dataset)
	}
}

func TestSourceCache_GetRetriesAfterFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loader := mocks.NewMockSourceLoader(ctrl)
	gomock.InOrder(
		loader.EXPECT().Load(gomock.Any(), testPopulation).Return(nil, domain.NewLoadError(testPopulation, "x.csv", errors.New("falhou"))),
		loader.EXPECT().Load(gomock.Any(), testPopulation).Return(scenarioDataset(), nil),
	)

	cache := NewSourceCache(loader)

	_, err := cache.Get(context.Background(), testPopulation)
	require.ErrorIs(t, err, domain.ErrSourceLoad)
	assert.Contains(t, cache.Status()[testPopulation], "last_error")

	dataset, err := cache.Get(context.Background(), testPopulation)
	require.NoError(t, err)
	assert.Len(t, dataset.Customers, 3)
	assert.NotContains(t, cache.Status()[testPopulation], "last_error")
}

func TestSourceCache_RefreshKeepsPreviousOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loader := mocks.NewMockSourceLoader(ctrl)
	gomock.InOrder(
		loader.EXPECT().Load(gomock.Any(), testPopulation).Return(scenarioDataset(), nil),
		loader.EXPECT().Load(gomock.Any(), testPopulation).Return(nil, domain.NewLoadError(testPopulation, "x.csv", errors.New("falhou"))),
	)

	cache := NewSourceCache(loader)
	require.NoError(t, cache.Refresh(context.Background(), testPopulation))
	previous, err := cache.Get(context.Background(), testPopulation)
	require.NoError(t, err)

	require.Error(t, cache.Refresh(context.Background(), testPopulation))

	current, err := cache.Get(context.Background(), testPopulation)
	require.NoError(t, err)
	assert.Same(t, previous, current)

	status := cache.Status()[testPopulation].(map[string]any)
	assert.Equal(t, 3, status["customers"])
	assert.Contains(t, status["last_error"], "falhou")
}
