package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/cliente-integral-api/internal/usecases/segmenting"
)

type healthcheckResponse struct {
	Status      string   `json:"status"`
	Time        string   `json:"time"`
	Populations []string `json:"populations"`
}

func HealthcheckHandler(service segmenting.Segmenter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := healthcheckResponse{
			Status:      "ok",
			Time:        time.Now().Format(time.RFC3339),
			Populations: make([]string, 0),
		}
		for _, p := range service.Populations() {
			response.Populations = append(response.Populations, p.Name)
		}

		writeJSON(w, r, http.StatusOK, response)
	})
}
