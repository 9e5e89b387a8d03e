package api

import (
	"github.com/rpupo63/csa-tracker-backend/database"
	"github.com/rpupo63/csa-tracker-backend/settings"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, manager *settings.Manager, techStore *settings.TechnologyStore) *routeHandlers {
	return &routeHandlers{
		customerHandler: newCustomerHandler(database),
		projectHandler:  newProjectHandler(database),
		settingsHandler: newSettingsHandler(manager, techStore),
	}
}
