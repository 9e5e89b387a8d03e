package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rpupo63/csa-tracker-backend/database"
	"github.com/rpupo63/csa-tracker-backend/errs"
	"github.com/rpupo63/csa-tracker-backend/models"
	"github.com/xuri/excelize/v2"
)

type projectHandler struct {
	responder Responder
	logger    zerolog.Logger
	db        database.Database
}

func newProjectHandler(db database.Database) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder: NewResponder(logger),
		logger:    logger,
		db:        db,
	}
}

// hydrate attaches the referenced customer to a project for read responses.
// The customer is a transient view field and is never written back to disk.
func (h projectHandler) hydrate(project models.Project) models.ProjectView {
	view := models.ProjectView{Project: project}
	if project.CustomerID != "" {
		if customer, found := h.db.Customers().FindByID(project.CustomerID); found {
			view.Customer = customer
		}
	}
	return view
}

// getAllProjects retrieves all projects sorted by creation date, newest first
// @Summary Get all projects
// @Description Retrieves all projects with their referenced customers attached
// @Tags Projects
// @Accept json
// @Produce json
// @Success 200 {array} models.ProjectView "List of projects"
// @Router /api/projects [get]
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects := h.db.Projects().FindAll()

		views := make([]models.ProjectView, 0, len(projects))
		for _, project := range projects {
			views = append(views, h.hydrate(project))
		}

		h.responder.WriteJSON(w, views)
	}
}

// getProject retrieves a specific project by ID
// @Summary Get project
// @Description Retrieves a single project by ID with its referenced customer attached
// @Tags Projects
// @Accept json
// @Produce json
// @Param projectID path string true "Project ID"
// @Success 200 {object} models.ProjectView "Project details"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Router /api/projects/{projectID} [get]
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID := chi.URLParam(r, "projectID")
		if projectID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing projectID"))
			return
		}

		project, found := h.db.Projects().FindByID(projectID)
		if !found {
			h.responder.WriteError(w, errs.NewNotFound("project"))
			return
		}

		h.responder.WriteJSON(w, h.hydrate(*project))
	}
}

// createProject creates a new project
// @Summary Create project
// @Description Creates a new project record, resolving any customer reference token
// @Tags Projects
// @Accept json
// @Produce json
// @Param project body models.Project true "Project data"
// @Success 201 {object} models.ProjectView "Created project"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid project data"
// @Failure 403 {object} ErrorResponse "Forbidden - Demo mode active"
// @Router /api/projects [post]
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var fields map[string]any
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&fields); err != nil {
			h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if name, _ := fields["name"].(string); name == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		}

		project, err := h.db.ProjectRepo().Create(fields)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, h.hydrate(*project))
	}
}

// updateProject updates an existing project
// @Summary Update project
// @Description Merges the supplied fields into an existing project record
// @Tags Projects
// @Accept json
// @Produce json
// @Param projectID path string true "Project ID"
// @Param project body models.Project true "Updated project data"
// @Success 200 {object} models.ProjectView "Updated project"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid project data"
// @Failure 403 {object} ErrorResponse "Forbidden - Demo mode active"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Router /api/projects/{projectID} [put]
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID := chi.URLParam(r, "projectID")
		if projectID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing projectID"))
			return
		}

		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var fields map[string]any
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&fields); err != nil {
			h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		project, err := h.db.ProjectRepo().Update(projectID, fields)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, h.hydrate(*project))
	}
}

// deleteProject deletes a project by ID
// @Summary Delete project
// @Description Deletes a project record by ID
// @Tags Projects
// @Accept json
// @Produce json
// @Param projectID path string true "Project ID"
// @Success 200 {object} map[string]string "Success message"
// @Failure 403 {object} ErrorResponse "Forbidden - Demo mode active"
// @Router /api/projects/{projectID} [delete]
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID := chi.URLParam(r, "projectID")
		if projectID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing projectID"))
			return
		}

		if err := h.db.ProjectRepo().Delete(projectID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "project deleted successfully",
		})
	}
}

var exportColumns = []struct {
	header string
	width  float64
}{
	{"Project ID", 15},
	{"Project Name", 30},
	{"Customer", 25},
	{"Primary Stakeholder", 25},
	{"Description", 40},
	{"Primary Technology", 20},
	{"Status", 15},
	{"Estimated Due Date", 15},
	{"Created On", 12},
	{"Modified On", 12},
	{"Notes", 50},
}

// exportProjects streams all projects as an Excel workbook. The real project
// files are exported even when demo mode is active.
// @Summary Export projects
// @Description Exports all stored projects to an xlsx workbook
// @Tags Projects
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary "Projects workbook"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Export failed"
// @Router /api/projects/export [get]
func (h projectHandler) exportProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects := h.db.ProjectRepo().FindAll()

		workbook := excelize.NewFile()
		defer workbook.Close()

		const sheet = "Projects"
		if err := workbook.SetSheetName(workbook.GetSheetName(0), sheet); err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to build export workbook", err))
			return
		}

		for i, col := range exportColumns {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			workbook.SetCellValue(sheet, cell, col.header)

			colName, _ := excelize.ColumnNumberToName(i + 1)
			workbook.SetColWidth(sheet, colName, colName, col.width)
		}

		for rowIdx, project := range projects {
			customerName := ""
			if project.CustomerID != "" {
				if customer, found := h.db.CustomerRepo().FindByID(project.CustomerID); found {
					customerName = customer.Name
				}
			}

			values := []any{
				project.ID,
				project.Name,
				customerName,
				project.PrimaryStakeholder,
				project.Description,
				project.PrimaryTechnology.Label(),
				models.ProjectStatusLabels[project.Status],
				formatExportDate(project.EstimatedDueDate),
				formatExportDate(project.CreatedAt),
				formatExportDate(project.ModifiedAt),
				joinNotes(project.Notes),
			}

			for colIdx, value := range values {
				cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
				workbook.SetCellValue(sheet, cell, value)
			}
		}

		filename := fmt.Sprintf("projects-export-%s.xlsx", time.Now().Format("2006-01-02"))
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))

		if err := workbook.Write(w); err != nil {
			h.logger.Error().Err(err).Msg("Failed to write export workbook")
		}
	}
}

// formatExportDate renders a stored timestamp as a plain date; the raw value
// is passed through when it does not parse.
func formatExportDate(stamp string) string {
	if stamp == "" {
		return ""
	}
	t, err := time.Parse(time.RFC3339, stamp)
	if err != nil {
		return stamp
	}
	return t.Format("2006-01-02")
}

func joinNotes(notes []models.Note) string {
	parts := make([]string, 0, len(notes))
	for _, note := range notes {
		parts = append(parts, fmt.Sprintf("%s: %s", note.Timestamp, note.Content))
	}
	return strings.Join(parts, " | ")
}
