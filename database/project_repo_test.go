package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/csa-tracker-backend/errs"
	"github.com/rpupo63/csa-tracker-backend/models"
)

func TestProjectCreateResolvesCustomerRef(t *testing.T) {
	db, manager, _ := newTestDatabase(t)

	created, err := db.ProjectRepo().Create(map[string]any{
		"name":        "Portal Modernization",
		"customerRef": "/customers(42)",
	})
	require.NoError(t, err)
	assert.Equal(t, "42", created.CustomerID)

	// The token itself never reaches disk
	raw := map[string]any{}
	require.True(t, db.ProjectRepo().store.Read(manager.ProjectsDir(), created.ID+".json", &raw))
	assert.NotContains(t, raw, "customerRef")
	assert.Equal(t, "42", raw["customerId"])
}

func TestProjectCreateUnusableRefIsDropped(t *testing.T) {
	db, manager, _ := newTestDatabase(t)

	created, err := db.ProjectRepo().Create(map[string]any{
		"name":        "No Link",
		"customerRef": "garbage",
	})
	require.NoError(t, err)
	assert.Empty(t, created.CustomerID)

	raw := map[string]any{}
	require.True(t, db.ProjectRepo().store.Read(manager.ProjectsDir(), created.ID+".json", &raw))
	assert.NotContains(t, raw, "customerRef")
	assert.NotContains(t, raw, "customerId")
}

func TestProjectCreateDefaultsStatusToBacklog(t *testing.T) {
	db, _, _ := newTestDatabase(t)

	created, err := db.ProjectRepo().Create(map[string]any{"name": "Fresh"})
	require.NoError(t, err)
	assert.Equal(t, models.StatusBacklog, created.Status)

	explicit, err := db.ProjectRepo().Create(map[string]any{
		"name":   "Running",
		"status": int(models.StatusInProgress),
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, explicit.Status)
}

func TestProjectCreateAssignsNoteIDs(t *testing.T) {
	db, _, _ := newTestDatabase(t)

	created, err := db.ProjectRepo().Create(map[string]any{
		"name": "Noted",
		"notes": []any{
			map[string]any{"content": "kickoff done", "timestamp": "2024-02-10T00:00:00Z"},
			map[string]any{"id": "keep-me", "content": "existing", "timestamp": "2024-02-11T00:00:00Z"},
		},
	})
	require.NoError(t, err)
	require.Len(t, created.Notes, 2)
	assert.NotEmpty(t, created.Notes[0].ID)
	assert.Equal(t, "keep-me", created.Notes[1].ID)
}

func TestProjectFindAllNewestFirst(t *testing.T) {
	db, manager, _ := newTestDatabase(t)
	repo := db.ProjectRepo()

	require.NoError(t, repo.store.Write(manager.ProjectsDir(), "1.json", map[string]any{
		"id": "1", "name": "Old", "createdAt": "2024-01-01T00:00:00Z",
	}))
	require.NoError(t, repo.store.Write(manager.ProjectsDir(), "2.json", map[string]any{
		"id": "2", "name": "New", "createdAt": "2024-06-01T00:00:00Z",
	}))
	require.NoError(t, repo.store.Write(manager.ProjectsDir(), "3.json", map[string]any{
		"id": "3", "name": "Stampless",
	}))

	projects := repo.FindAll()
	require.Len(t, projects, 3)
	assert.Equal(t, "New", projects[0].Name)
	assert.Equal(t, "Old", projects[1].Name)
	assert.Equal(t, "Stampless", projects[2].Name, "records without a parseable stamp sort last")
}

func TestProjectUpdateMergeSemantics(t *testing.T) {
	db, _, _ := newTestDatabase(t)

	created, err := db.ProjectRepo().Create(map[string]any{
		"name":        "Migration",
		"description": "phase one",
		"customerRef": "/customers(1)",
	})
	require.NoError(t, err)

	// Omitted keys keep their stored values
	updated, err := db.ProjectRepo().Update(created.ID, map[string]any{"name": "Migration v2"})
	require.NoError(t, err)
	assert.Equal(t, "Migration v2", updated.Name)
	assert.Equal(t, "phase one", updated.Description)
	assert.Equal(t, "1", updated.CustomerID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	// An explicit null overwrites
	cleared, err := db.ProjectRepo().Update(created.ID, map[string]any{"description": nil})
	require.NoError(t, err)
	assert.Empty(t, cleared.Description)

	// A new reference token rebinds the customer
	rebound, err := db.ProjectRepo().Update(created.ID, map[string]any{"customerRef": "/customers(7)"})
	require.NoError(t, err)
	assert.Equal(t, "7", rebound.CustomerID)
}

func TestProjectUpdateStripsEchoedCustomerView(t *testing.T) {
	db, manager, _ := newTestDatabase(t)

	created, err := db.ProjectRepo().Create(map[string]any{
		"name":        "Hydrated",
		"customerRef": "/customers(5)",
	})
	require.NoError(t, err)

	// A client may echo the read-side shape back on save
	_, err = db.ProjectRepo().Update(created.ID, map[string]any{
		"customer": map[string]any{"id": "5", "name": "Acme"},
	})
	require.NoError(t, err)

	raw := map[string]any{}
	require.True(t, db.ProjectRepo().store.Read(manager.ProjectsDir(), created.ID+".json", &raw))
	assert.NotContains(t, raw, "customer")
	assert.Equal(t, "5", raw["customerId"])
}

func TestProjectMutationsBlockedInDemoMode(t *testing.T) {
	db, manager, _ := newTestDatabase(t)

	require.NoError(t, manager.SetDemoMode(true))

	_, err := db.ProjectRepo().Create(map[string]any{"name": "Blocked"})
	assert.True(t, errs.IsDemoModeActive(err))

	_, err = db.ProjectRepo().Update("1", map[string]any{"name": "Blocked"})
	assert.True(t, errs.IsDemoModeActive(err))

	err = db.ProjectRepo().Delete("1")
	assert.True(t, errs.IsDemoModeActive(err))

	assert.Empty(t, db.ProjectRepo().store.List(manager.ProjectsDir()))
}

func TestProjectDeleteIdempotent(t *testing.T) {
	db, _, _ := newTestDatabase(t)

	created, err := db.ProjectRepo().Create(map[string]any{"name": "Gone"})
	require.NoError(t, err)

	require.NoError(t, db.ProjectRepo().Delete(created.ID))
	require.NoError(t, db.ProjectRepo().Delete(created.ID))
}

func TestProjectDemoSourceServesStaticData(t *testing.T) {
	db, manager, _ := newTestDatabase(t)

	require.NoError(t, manager.SetDemoMode(true))

	projects := db.Projects().FindAll()
	assert.NotEmpty(t, projects)

	first, ok := db.Projects().FindByID(projects[0].ID)
	require.True(t, ok)
	assert.Equal(t, projects[0].Name, first.Name)
}
