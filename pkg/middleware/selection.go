package middleware

import (
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cliente-integral-api/pkg/apiErrors"
)

// RequireAreas rejeita a requisição antes de qualquer cálculo quando nenhuma área
// é informada em ?areas=
func RequireAreas() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, value := range r.URL.Query()["areas"] {
				if strings.Trim(value, ", ") != "" {
					next.ServeHTTP(w, r)
					return
				}
			}

			logrus.WithField("path", r.URL.Path).Warning("Requisição sem áreas selecionadas")
			apiErrors.WriteError(w, apiErrors.ErrInvalidSelection, "Selecione ao menos uma área para continuar", nil)
		})
	}
}
