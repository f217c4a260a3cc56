package segmenting

import (
	"context"
	"sync"
	"time"

	"github.com/vfg2006/cliente-integral-api/internal/domain"
	"github.com/vfg2006/cliente-integral-api/pkg/log"
)

// SourceCache memoriza um Dataset por população. Os datasets são compartilhados
// apenas para leitura; uma recarga substitui o ponteiro inteiro.
type SourceCache struct {
	loader   SourceLoader
	mu       sync.RWMutex
	loadMu   sync.Mutex
	datasets map[string]*domain.Dataset
	failures map[string]cacheFailure
}

type cacheFailure struct {
	err error
	at  time.Time
}

// NewSourceCache cria o cache vazio; a carga acontece no primeiro acesso
func NewSourceCache(loader SourceLoader) *SourceCache {
	return &SourceCache{
		loader:   loader,
		datasets: make(map[string]*domain.Dataset),
		failures: make(map[string]cacheFailure),
	}
}

// Get retorna o dataset da população, carregando-o se ainda não estiver em memória
func (c *SourceCache) Get(ctx context.Context, population string) (*domain.Dataset, error) {
	c.mu.RLock()
	dataset, ok := c.datasets[population]
	c.mu.RUnlock()
	if ok {
		return dataset, nil
	}

	c.loadMu.Lock()
	defer c.loadMu.Unlock()

	// Outra requisição pode ter carregado enquanto aguardávamos
	c.mu.RLock()
	dataset, ok = c.datasets[population]
	c.mu.RUnlock()
	if ok {
		return dataset, nil
	}

	return c.load(ctx, population)
}

// Refresh recarrega a população. Em caso de erro o dataset anterior é mantido.
func (c *SourceCache) Refresh(ctx context.Context, population string) error {
	c.loadMu.Lock()
	defer c.loadMu.Unlock()

	_, err := c.load(ctx, population)
	return err
}

func (c *SourceCache) load(ctx context.Context, population string) (*domain.Dataset, error) {
	logger := log.ForContext(ctx).WithField("population", population)

	start := time.Now()
	dataset, err := c.loader.Load(ctx, population)
	if err != nil {
		logger.WithError(err).Error("source-cache: erro ao carregar fontes")
		c.mu.Lock()
		c.failures[population] = cacheFailure{err: err, at: time.Now()}
		c.mu.Unlock()
		return nil, err
	}

	c.mu.Lock()
	c.datasets[population] = dataset
	delete(c.failures, population)
	c.mu.Unlock()

	logger.WithFields(log.Fields{
		"source_customers":  len(dataset.Customers),
		"source_dimensions": len(dataset.Dimensions),
		"duration_ms":       time.Since(start).Milliseconds(),
	}).Info("source-cache: fontes carregadas")

	return dataset, nil
}

// Status descreve o estado atual do cache por população
func (c *SourceCache) Status() map[string]any {
	c.mu.RLock()
	defer c.mu.RUnlock()

	status := make(map[string]any, len(c.datasets)+len(c.failures))
	for name, dataset := range c.datasets {
		status[name] = map[string]any{
			"loaded_at":  dataset.LoadedAt,
			"customers":  len(dataset.Customers),
			"dimensions": len(dataset.Dimensions),
		}
	}
	for name, failure := range c.failures {
		entry := map[string]any{
			"last_error":    failure.err.Error(),
			"last_error_at": failure.at,
		}
		if existing, ok := status[name].(map[string]any); ok {
			for k, v := range entry {
				existing[k] = v
			}
			continue
		}
		status[name] = entry
	}

	return status
}
