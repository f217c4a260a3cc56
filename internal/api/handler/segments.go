package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/cliente-integral-api/internal/domain"
	"github.com/vfg2006/cliente-integral-api/internal/usecases/segmenting"
	"github.com/vfg2006/cliente-integral-api/pkg/apiErrors"
	"github.com/vfg2006/cliente-integral-api/pkg/log"
	"github.com/vfg2006/cliente-integral-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// segmentsSummary resume o resultado para exibição
type segmentsSummary struct {
	Empty         bool                   `json:"empty"`
	Message       string                 `json:"message,omitempty"`
	SegmentCounts map[domain.Segment]int `json:"segment_counts"`
	GroupAverages *domain.Dimensions     `json:"group_averages_rounded,omitempty"`
}

type segmentsResponse struct {
	*domain.SegmentationResult
	Summary segmentsSummary `json:"summary"`
}

// GetPopulations lista as populações configuradas e suas áreas
func GetPopulations(service segmenting.Segmenter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, service.Populations())
	})
}

// GetSegments calcula as médias por cliente e a segmentação para as áreas selecionadas
func GetSegments(service segmenting.Segmenter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		selection := selectionFromRequest(r)

		result, err := service.Compute(r.Context(), selection)
		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"population": selection.Population,
				"areas":      strings.Join(selection.Areas, ","),
			}).Warn("segments: erro ao calcular segmentação")
			apiErrors.WriteFromError(w, err)
			return
		}

		writeJSON(w, r, http.StatusOK, segmentsResponse{
			SegmentationResult: result,
			Summary:            summarize(result),
		})
	})
}

// ExportSegments devolve o resultado como CSV para download
func ExportSegments(service segmenting.Segmenter, fileName string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		selection := selectionFromRequest(r)

		result, err := service.Compute(r.Context(), selection)
		if err != nil {
			logger.WithError(err).Warn("segments-export: erro ao calcular segmentação")
			apiErrors.WriteFromError(w, err)
			return
		}

		// Gera em memória para não enviar um CSV parcial em caso de erro
		var buf bytes.Buffer
		if err := service.ExportCSV(&buf, result.Customers); err != nil {
			logger.WithError(err).Error("segments-export: erro ao gerar CSV")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar CSV", nil)
			return
		}

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(buf.Bytes()); err != nil {
			logger.WithError(err).Error("segments-export: erro ao enviar CSV")
		}
	})
}

// GetCustomerDetail retorna um cliente do resultado atual. Se o cliente não estiver
// no resultado a resposta é 204, sem corpo.
func GetCustomerDetail(service segmenting.Segmenter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		selection := selectionFromRequest(r)

		customerID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if customerID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Cliente não informado", nil)
			return
		}

		customer, found, err := service.CustomerDetail(r.Context(), selection, customerID)
		if err != nil {
			logger.WithError(err).Warn("customer-detail: erro ao calcular segmentação")
			apiErrors.WriteFromError(w, err)
			return
		}

		if !found {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		writeJSON(w, r, http.StatusOK, customer)
	})
}

// selectionFromRequest lê a população da rota e as áreas de ?areas=a,b (ou ?areas=a&areas=b)
func selectionFromRequest(r *http.Request) domain.Selection {
	population := httprouter.ParamsFromContext(r.Context()).ByName("population")

	areas := make([]string, 0)
	for _, value := range r.URL.Query()["areas"] {
		for _, area := range strings.Split(value, ",") {
			if area = strings.TrimSpace(area); area != "" {
				areas = append(areas, area)
			}
		}
	}

	return domain.Selection{Population: population, Areas: areas}
}

func summarize(result *domain.SegmentationResult) segmentsSummary {
	summary := segmentsSummary{
		Empty:         result.IsEmpty(),
		SegmentCounts: result.SegmentCounts(),
	}

	if summary.Empty {
		if result.FilteredCount == 0 {
			summary.Message = "Nenhum cliente pertence simultaneamente a todas as áreas selecionadas"
		} else {
			summary.Message = "Nenhuma dimensão registrada para as áreas selecionadas"
		}
		return summary
	}

	if result.GroupAverages != nil {
		summary.GroupAverages = &domain.Dimensions{
			Economic:   utils.RoundWithTwoDecimalPlace(result.GroupAverages.Economic),
			Relational: utils.RoundWithTwoDecimalPlace(result.GroupAverages.Relational),
			Compliance: utils.RoundWithTwoDecimalPlace(result.GroupAverages.Compliance),
			Potential:  utils.RoundWithTwoDecimalPlace(result.GroupAverages.Potential),
		}
	}

	return summary
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("erro ao codificar resposta")
	}
}
