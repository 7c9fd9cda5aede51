package handlers

import (
	"github.com/condor-ops/pos-roster/internal/domain/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Handler struct {
	Mux      *chi.Mux
	services *service.Instance
	logger   *zap.Logger
}

func New(services *service.Instance, logger *zap.Logger) *Handler {
	return &Handler{
		Mux:      chi.NewRouter(),
		services: services,
		logger:   logger.Named("http"),
	}
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(middleware.Recoverer)

	h.Mux.Get("/health", h.handleHealth)

	h.Mux.Route("/api", func(r chi.Router) {
		r.Route("/employees", func(r chi.Router) {
			r.Get("/", h.handleListEmployees)
			r.Post("/", h.handleUpsertEmployee)
			r.Get("/available", h.handleAvailableEmployees)
			r.Put("/{name}", h.handleRenameEmployee)
			r.Delete("/{name}", h.handleRemoveEmployee)
		})

		r.Post("/sunday-enrollments", h.handleEnrollSunday)

		r.Route("/assignments", func(r chi.Router) {
			r.Get("/", h.handleListAssignments)
			r.Post("/", h.handleAssign)
			r.Delete("/", h.handleUnassign)
		})

		r.Get("/rotation", h.handleRotationPlan)
		r.Get("/dayoffs", h.handleDayOffs)

		r.Route("/exports", func(r chi.Router) {
			r.Get("/rotation", h.handleExportRotation)
			r.Get("/dayoffs", h.handleExportDayOffs)
			r.Get("/assignments", h.handleExportAssignments)
		})
	})
}
