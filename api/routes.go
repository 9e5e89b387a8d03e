package api

import (
	"github.com/go-chi/chi/v5"
)

// setupFrontendRoutes sets up all routes consumed by the desktop frontend
func setupFrontendRoutes(r chi.Router, handlers *routeHandlers) {
	r.Route("/api", func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		// Customer Handler endpoints
		r.Get("/customers", handlers.customerHandler.getAllCustomers())
		r.Get("/customers/{customerID}", handlers.customerHandler.getCustomer())
		r.Post("/customers", handlers.customerHandler.createCustomer())
		r.Put("/customers/{customerID}", handlers.customerHandler.updateCustomer())
		r.Delete("/customers/{customerID}", handlers.customerHandler.deleteCustomer())

		// Project Handler endpoints
		r.Get("/projects", handlers.projectHandler.getAllProjects())
		r.Get("/projects/export", handlers.projectHandler.exportProjects())
		r.Get("/projects/{projectID}", handlers.projectHandler.getProject())
		r.Post("/projects", handlers.projectHandler.createProject())
		r.Put("/projects/{projectID}", handlers.projectHandler.updateProject())
		r.Delete("/projects/{projectID}", handlers.projectHandler.deleteProject())

		// Settings Handler endpoints
		r.Get("/settings/is-configured", handlers.settingsHandler.getIsConfigured())
		r.Post("/settings/preferences", handlers.settingsHandler.updatePreferences())
		r.Post("/settings/demo-mode", handlers.settingsHandler.setDemoMode())
		r.Post("/settings/reset", handlers.settingsHandler.resetDatabasePath())
		r.Post("/settings/database-path", handlers.settingsHandler.updateDatabasePath())
		r.Get("/settings/technology", handlers.settingsHandler.getTechnologySettings())
		r.Post("/settings/technology", handlers.settingsHandler.saveTechnologySettings())
	})
}
