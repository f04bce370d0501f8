package api

import (
	_ "trm/docs"
	"trm/internal/rate/handler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swagger "github.com/swaggo/http-swagger"
)

func NewRouter(rateHandler *handler.Handler) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/healthz"))

	router.Handle("/metrics", promhttp.Handler())

	// Swagger UI
	router.Get("/swagger/*", swagger.WrapHandler)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/trm", rateHandler.GetState)
		r.Post("/trm/refresh", rateHandler.Refresh)
		r.Get("/trm/history", rateHandler.GetHistory)
		r.Get("/trm/range", rateHandler.GetRange)
		r.Get("/trm/date/{date}", rateHandler.GetByDate)
		r.Get("/trm/stream", rateHandler.Stream)
		r.Get("/convert", rateHandler.Convert)
		r.Get("/convert/table", rateHandler.ConvertTable)
	})
	return router
}
