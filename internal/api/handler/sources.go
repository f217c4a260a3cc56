package handler

import (
	"net/http"

	"github.com/vfg2006/cliente-integral-api/internal/scheduler"
	"github.com/vfg2006/cliente-integral-api/pkg/apiErrors"
	"github.com/vfg2006/cliente-integral-api/pkg/log"
)

// RefreshSources dispara manualmente a recarga das fontes
func RefreshSources(service *scheduler.SourceRefreshService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("sources: solicitação de recarga manual")

		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de recarga das fontes não disponível", nil)
			return
		}

		started := service.TriggerManualSync()

		response := map[string]any{
			"message": "Recarga das fontes iniciada com sucesso",
			"started": started,
		}
		if !started {
			response["message"] = "Recarga das fontes já em andamento"
		}

		writeJSON(w, r, http.StatusAccepted, response)
	})
}

// GetSourcesStatus retorna o status do cache de fontes e do agendador
func GetSourcesStatus(service *scheduler.SourceRefreshService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de recarga das fontes não disponível", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, service.GetStatus())
	})
}
