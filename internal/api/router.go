package api

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/engreg/engreg/internal/api/handler"
	"github.com/engreg/engreg/internal/api/middleware"
	"github.com/engreg/engreg/internal/engineer"
)

// API paths, kept in one place so handlers, tests and docs agree.
const (
	BasePath      = "/api/v1"
	EngineersPath = BasePath + "/software-engineers"
)

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	Query   *engineer.QueryService
	Command *engineer.CommandService
	Counter handler.StoreCounter
	Version string
}

// NewRouter creates and configures a Chi router with all middleware and routes.
func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery)
	r.Use(chimiddleware.Logger)

	healthHandler := handler.NewHealthHandler(deps.Counter, deps.Version)
	r.Get("/health", healthHandler.ServeHTTP)

	engHandler := handler.NewEngineerHandler(deps.Query, deps.Command, EngineersPath)
	r.Route(EngineersPath, func(r chi.Router) {
		r.Post("/", engHandler.Create)
		r.Get("/", engHandler.List)
		r.Get("/{id}", engHandler.GetByID)
		r.Put("/{id}", engHandler.Update)
		r.Delete("/{id}", engHandler.Delete)
	})

	return r
}
