package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequireAreas(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		expectNext bool
	}{
		{"Uma área", "/segments?areas=brilla", true},
		{"Lista separada por vírgula", "/segments?areas=brilla,sad", true},
		{"Sem parâmetro", "/segments", false},
		{"Parâmetro vazio", "/segments?areas=", false},
		{"Apenas separadores", "/segments?areas=,%20,", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				w.WriteHeader(http.StatusOK)
			})

			rec := httptest.NewRecorder()
			RequireAreas()(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.expectNext, called)
			if !tt.expectNext {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
			}
		})
	}
}
