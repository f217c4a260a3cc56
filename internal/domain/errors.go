package domain

import (
	"errors"
	"fmt"
)

// Erros do pipeline de segmentação
var (
	ErrSourceLoad         = errors.New("source load error")
	ErrInvalidSelection   = errors.New("invalid area selection")
	ErrPopulationNotFound = errors.New("population not found")
)

// LoadError descreve uma falha ao carregar uma fonte de dados
type LoadError struct {
	Population string // População cuja fonte falhou
	Source     string // Caminho do arquivo ou tabela
	Err        error  // Erro subjacente
}

// Error implementa a interface error
func (e *LoadError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: population=%s source=%s", ErrSourceLoad, e.Population, e.Source)
	}
	return fmt.Sprintf("%s: population=%s source=%s: %v", ErrSourceLoad, e.Population, e.Source, e.Err)
}

// Unwrap retorna o erro subjacente
func (e *LoadError) Unwrap() error {
	return e.Err
}

// Is permite errors.Is(err, ErrSourceLoad)
func (e *LoadError) Is(target error) bool {
	return target == ErrSourceLoad
}

// NewLoadError cria um novo LoadError
func NewLoadError(population, source string, err error) *LoadError {
	return &LoadError{
		Population: population,
		Source:     source,
		Err:        err,
	}
}

// NewInvalidSelectionError detalha o motivo da seleção inválida
func NewInvalidSelectionError(details string) error {
	return fmt.Errorf("%w: %s", ErrInvalidSelection, details)
}
