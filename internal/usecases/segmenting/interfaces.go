package segmenting

import (
	"context"
	"io"

	"github.com/vfg2006/cliente-integral-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// SourceLoader define a interface de carga das duas tabelas de uma população
type SourceLoader interface {
	// Load carrega clientes e dimensões da população; falhas retornam *domain.LoadError
	Load(ctx context.Context, population string) (*domain.Dataset, error)
}

// Segmenter é a interface completa consumida pela camada de apresentação
type Segmenter interface {
	// Compute executa filtro, agregação e segmentação para a seleção
	Compute(ctx context.Context, selection domain.Selection) (*domain.SegmentationResult, error)

	// CustomerDetail retorna o cliente se ele fizer parte do resultado atual
	CustomerDetail(ctx context.Context, selection domain.Selection, customerID string) (*domain.AggregatedCustomer, bool, error)

	// Populations lista as variantes configuradas e seus vocabulários de áreas
	Populations() []domain.Population

	// ExportCSV escreve o resultado no formato de download
	ExportCSV(w io.Writer, customers []domain.AggregatedCustomer) error
}

// SourceRefresher é usado pelo agendador para recarregar as fontes
type SourceRefresher interface {
	RefreshAll(ctx context.Context) error
	Status() map[string]any
}
