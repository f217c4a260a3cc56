package handler

import (
	"net/http"

	"github.com/vfg2006/cliente-integral-api/internal/api/handler/router"
	"github.com/vfg2006/cliente-integral-api/internal/scheduler"
	"github.com/vfg2006/cliente-integral-api/internal/usecases/segmenting"
	"github.com/vfg2006/cliente-integral-api/pkg/middleware"
)

func Healthcheck(service segmenting.Segmenter) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(service),
		},
	}
}

func Segments(service segmenting.Segmenter, exportFileName string) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/populations",
			Method:  http.MethodGet,
			Handler: GetPopulations(service),
		},
		{
			Path:        "/v1/populations/:population/segments",
			Method:      http.MethodGet,
			Handler:     GetSegments(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireAreas()},
		},
		{
			Path:        "/v1/populations/:population/segments/export",
			Method:      http.MethodGet,
			Handler:     ExportSegments(service, exportFileName),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireAreas()},
		},
		{
			Path:        "/v1/populations/:population/customers/:id",
			Method:      http.MethodGet,
			Handler:     GetCustomerDetail(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireAreas()},
		},
	}
}

func Sources(service *scheduler.SourceRefreshService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sources/refresh",
			Method:  http.MethodPost,
			Handler: RefreshSources(service),
		},
		{
			Path:    "/v1/sources/status",
			Method:  http.MethodGet,
			Handler: GetSourcesStatus(service),
		},
	}
}
