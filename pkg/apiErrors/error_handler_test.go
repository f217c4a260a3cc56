package apiErrors

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/cliente-integral-api/internal/domain"
)

func TestCodeFor(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
		status   int
	}{
		{"Seleção inválida", domain.NewInvalidSelectionError("vazia"), ErrInvalidSelection, http.StatusBadRequest},
		{"População desconhecida", fmt.Errorf("%w: industrial", domain.ErrPopulationNotFound), ErrPopulationNotFound, http.StatusNotFound},
		{"Falha de carga", domain.NewLoadError("residencial", "a.csv", errors.New("eof")), ErrSourceLoad, http.StatusInternalServerError},
		{"Loader sem a população configurada", domain.NewLoadError("x", "", domain.ErrPopulationNotFound), ErrSourceLoad, http.StatusInternalServerError},
		{"Erro genérico", errors.New("boom"), ErrInternalServer, http.StatusInternalServerError},
		{"Erro nulo", nil, ErrInternalServer, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code := CodeFor(tt.err)
			assert.Equal(t, tt.expected, code)
			assert.Equal(t, tt.status, StatusFor(code))
		})
	}
}

func TestWriteFromError(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteFromError(rec, domain.NewInvalidSelectionError("selecione ao menos uma área"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t,
		`{"code":"VAL_004","message":"invalid area selection: selecione ao menos uma área"}`,
		rec.Body.String(),
	)
}
