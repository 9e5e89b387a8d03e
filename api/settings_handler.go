package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rpupo63/csa-tracker-backend/errs"
	"github.com/rpupo63/csa-tracker-backend/models"
	"github.com/rpupo63/csa-tracker-backend/settings"
)

type settingsHandler struct {
	responder Responder
	logger    zerolog.Logger
	manager   *settings.Manager
	techStore *settings.TechnologyStore
}

func newSettingsHandler(manager *settings.Manager, techStore *settings.TechnologyStore) settingsHandler {
	logger := log.With().Str("handlerName", "settingsHandler").Logger()

	return settingsHandler{
		responder: NewResponder(logger),
		logger:    logger,
		manager:   manager,
		techStore: techStore,
	}
}

// preferencesRequest distinguishes absent fields from explicitly empty ones
type preferencesRequest struct {
	SolutionArea *string `json:"solutionArea"`
	Skillset     *[]int  `json:"skillset"`
}

// getIsConfigured returns the current configuration snapshot
// @Summary Get configuration state
// @Description Returns whether the data directory is configured plus current preferences
// @Tags Settings
// @Produce json
// @Success 200 {object} settings.Snapshot "Configuration snapshot"
// @Router /api/settings/is-configured [get]
func (h settingsHandler) getIsConfigured() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot := h.manager.Snapshot()

		h.logger.Info().
			Str("solutionArea", snapshot.SolutionArea).
			Int("skillsetCount", len(snapshot.Skillset)).
			Msg("Client requesting config")

		h.responder.WriteJSON(w, snapshot)
	}
}

// updatePreferences applies a partial update of solution area and skillset
// @Summary Update preferences
// @Description Updates solution area and/or skillset; omitted fields are left untouched
// @Tags Settings
// @Accept json
// @Produce json
// @Param preferences body preferencesRequest true "Preference fields to update"
// @Success 200 {object} map[string]any "Saved preferences"
// @Failure 400 {object} ErrorResponse "Bad Request - Malformed body"
// @Router /api/settings/preferences [post]
func (h settingsHandler) updatePreferences() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req preferencesRequest
		if err := decodeBody(r, &req, h.logger); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.manager.UpdatePreferences(req.SolutionArea, req.Skillset); err != nil {
			h.logger.Error().Err(err).Msg("Failed to persist preferences")
		}

		h.responder.WriteJSON(w, map[string]any{
			"success":      true,
			"solutionArea": h.manager.SolutionArea(),
			"skillset":     h.manager.Skillset(),
		})
	}
}

// setDemoMode toggles demo mode on or off
// @Summary Toggle demo mode
// @Description Enables or disables the static demo dataset
// @Tags Settings
// @Accept json
// @Produce json
// @Param body body object{enabled=bool} true "Demo mode flag"
// @Success 200 {object} map[string]any "New demo mode state"
// @Router /api/settings/demo-mode [post]
func (h settingsHandler) setDemoMode() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Enabled bool `json:"enabled"`
		}
		if err := decodeBody(r, &req, h.logger); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.manager.SetDemoMode(req.Enabled); err != nil {
			h.logger.Error().Err(err).Msg("Failed to persist demo mode")
		}

		h.logger.Info().Bool("enabled", req.Enabled).Msg("Demo mode toggled")

		h.responder.WriteJSON(w, map[string]any{
			"success":    true,
			"isDemoMode": h.manager.IsDemoMode(),
		})
	}
}

// resetDatabasePath relocates the data directory back to the built-in default
// @Summary Reset database path
// @Description Relocates the data directory to the built-in default location
// @Tags Settings
// @Produce json
// @Success 200 {object} map[string]any "New path and configured state"
// @Router /api/settings/reset [post]
func (h settingsHandler) resetDatabasePath() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		path, configured := h.manager.ResetToDefault()

		h.logger.Info().Str("path", path).Bool("isConfigured", configured).Msg("Reset database path")

		h.responder.WriteJSON(w, map[string]any{
			"success":      true,
			"path":         path,
			"isConfigured": configured,
		})
	}
}

// updateDatabasePath relocates the data directory to a user-supplied path
// @Summary Update database path
// @Description Points future reads and writes at the supplied directory, migrating settings
// @Tags Settings
// @Accept json
// @Produce json
// @Param body body object{path=string} true "New data directory path"
// @Success 200 {object} map[string]any "New path and record directories"
// @Failure 400 {object} ErrorResponse "Bad Request - Path missing"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Directory verification failed"
// @Router /api/settings/database-path [post]
func (h settingsHandler) updateDatabasePath() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Path string `json:"path"`
		}
		if err := decodeBody(r, &req, h.logger); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if req.Path == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("path"))
			return
		}

		if err := h.manager.SetDataDirectory(req.Path); err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to create required directories", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"success":      true,
			"path":         h.manager.Root(),
			"customersDir": h.manager.CustomersDir(),
			"projectsDir":  h.manager.ProjectsDir(),
		})
	}
}

// getTechnologySettings loads the technology taxonomy document
// @Summary Get technology settings
// @Description Returns the editable catalog of solution areas and technologies
// @Tags Settings
// @Produce json
// @Success 200 {object} models.TechnologySettings "Taxonomy document"
// @Router /api/settings/technology [get]
func (h settingsHandler) getTechnologySettings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, h.techStore.Load())
	}
}

// saveTechnologySettings overwrites the technology taxonomy document
// @Summary Save technology settings
// @Description Replaces the whole taxonomy document and stamps updatedAt
// @Tags Settings
// @Accept json
// @Produce json
// @Param settings body models.TechnologySettings true "Taxonomy document"
// @Success 200 {object} map[string]any "Saved document"
// @Failure 400 {object} ErrorResponse "Bad Request - Malformed body"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Write failed"
// @Router /api/settings/technology [post]
func (h settingsHandler) saveTechnologySettings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var doc models.TechnologySettings
		if err := decodeBody(r, &doc, h.logger); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		saved, err := h.techStore.Save(doc)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to save technology settings", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"success":       true,
			"solutionAreas": saved.SolutionAreas,
			"technologies":  saved.Technologies,
			"updatedAt":     saved.UpdatedAt,
		})
	}
}

// decodeBody reads and decodes a JSON request body into dst.
func decodeBody(r *http.Request, dst any, logger zerolog.Logger) error {
	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to read request body")
		return errs.NewBadRequestError("failed to read request body")
	}

	if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(dst); err != nil {
		logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode request body")
		return errs.NewBadRequestError("malformed request body")
	}

	return nil
}
