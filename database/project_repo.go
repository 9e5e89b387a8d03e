package database

import (
	"sort"
	"time"

	"github.com/rpupo63/csa-tracker-backend/errs"
	"github.com/rpupo63/csa-tracker-backend/models"
	"github.com/rpupo63/csa-tracker-backend/settings"
)

// ProjectRepo stores one JSON file per project under the active data
// directory. The project's customer link is kept as a plain id; the
// hydrated customer attached to read responses is never written back.
type ProjectRepo struct {
	store    *FileStore
	settings *settings.Manager
}

func NewProjectRepo(store *FileStore, manager *settings.Manager) *ProjectRepo {
	return &ProjectRepo{store: store, settings: manager}
}

func (r *ProjectRepo) dir() string {
	return r.settings.ProjectsDir()
}

// FindAll returns every readable project record, newest first by createdAt.
// Unreadable records are dropped from the result.
func (r *ProjectRepo) FindAll() []models.Project {
	var projects []models.Project
	for _, name := range r.store.List(r.dir()) {
		var project models.Project
		if r.store.Read(r.dir(), name, &project) {
			projects = append(projects, project)
		}
	}
	sort.SliceStable(projects, func(i, j int) bool {
		return parseStamp(projects[i].CreatedAt).After(parseStamp(projects[j].CreatedAt))
	})
	return projects
}

func parseStamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// FindByID returns the project and whether it exists.
func (r *ProjectRepo) FindByID(id string) (*models.Project, bool) {
	var project models.Project
	if !r.store.Read(r.dir(), id+jsonExt, &project) {
		return nil, false
	}
	return &project, true
}

// Create assigns an id and timestamps, resolves the customer reference
// token into a plain customer id, and writes a new project record.
func (r *ProjectRepo) Create(fields map[string]any) (*models.Project, error) {
	if r.settings.IsDemoMode() {
		return nil, errs.NewDemoModeActive()
	}

	doc := make(map[string]any, len(fields)+3)
	for k, v := range fields {
		doc[k] = v
	}
	now := nowStamp()
	id := newRecordID(r.store, r.dir())
	doc["id"] = id
	doc["createdAt"] = now
	doc["modifiedAt"] = now
	resolveCustomerRef(doc)
	stripViewFields(doc)
	if doc["status"] == nil {
		doc["status"] = int(models.StatusBacklog)
	}
	assignListIDs(doc, "notes")

	if err := r.store.Write(r.dir(), id+jsonExt, doc); err != nil {
		return nil, errs.NewStorageError("create", "project", err)
	}
	return decodeRecord[models.Project](doc)
}

// Update shallow-merges the incoming fields over the stored record,
// re-resolves the customer reference token when one is present, and
// refreshes modifiedAt. The id and createdAt always keep their stored
// values.
func (r *ProjectRepo) Update(id string, fields map[string]any) (*models.Project, error) {
	if r.settings.IsDemoMode() {
		return nil, errs.NewDemoModeActive()
	}

	doc := map[string]any{}
	if !r.store.Read(r.dir(), id+jsonExt, &doc) {
		return nil, errs.NewNotFound("project")
	}
	createdAt := doc["createdAt"]
	for k, v := range fields {
		doc[k] = v
	}
	doc["id"] = id
	doc["createdAt"] = createdAt
	doc["modifiedAt"] = nowStamp()
	resolveCustomerRef(doc)
	stripViewFields(doc)
	assignListIDs(doc, "notes")

	if err := r.store.Write(r.dir(), id+jsonExt, doc); err != nil {
		return nil, errs.NewStorageError("update", "project", err)
	}
	return decodeRecord[models.Project](doc)
}

// Delete removes the project record. Deleting an absent record succeeds.
func (r *ProjectRepo) Delete(id string) error {
	if r.settings.IsDemoMode() {
		return errs.NewDemoModeActive()
	}
	if err := r.store.Delete(r.dir(), id+jsonExt); err != nil {
		return errs.NewStorageError("delete", "project", err)
	}
	return nil
}

// resolveCustomerRef replaces the reference token with the plain customer
// id it names. The token itself is never persisted, even when it carries no
// usable id.
func resolveCustomerRef(doc map[string]any) {
	raw, present := doc[models.CustomerRefField]
	if !present {
		return
	}
	if token, ok := raw.(string); ok {
		if id := models.ParseCustomerRef(token); id != "" {
			doc["customerId"] = id
		}
	}
	delete(doc, models.CustomerRefField)
}

// stripViewFields drops read-side decorations a client may echo back, so a
// hydrated customer object never reaches disk.
func stripViewFields(doc map[string]any) {
	delete(doc, "customer")
}
