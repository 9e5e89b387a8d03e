package database

import (
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/csa-tracker-backend/errs"
	"github.com/rpupo63/csa-tracker-backend/models"
	"github.com/rpupo63/csa-tracker-backend/settings"
)

func newTestDatabase(t *testing.T) (Database, *settings.Manager, billy.Filesystem) {
	t.Helper()

	fs := memfs.New()
	manager := settings.NewManager(fs, "/home/test", zerolog.Nop())
	manager.Startup()
	return New(fs, manager, zerolog.Nop()), manager, fs
}

func TestCustomerCreateThenFindByID(t *testing.T) {
	db, _, _ := newTestDatabase(t)

	created, err := db.CustomerRepo().Create(map[string]any{
		"name": "Acme Corporation",
		"stakeholders": []any{
			map[string]any{"name": "John Smith", "role": "CEO", "email": "john@acme.com"},
		},
		"primaryTechFocus": 100000003,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.NotEmpty(t, created.CreatedAt)
	assert.Equal(t, created.CreatedAt, created.ModifiedAt)

	found, ok := db.CustomerRepo().FindByID(created.ID)
	require.True(t, ok)
	assert.Equal(t, created, found)
	assert.Equal(t, "Acme Corporation", found.Name)
	assert.Equal(t, models.TechPowerApps, found.PrimaryTechFocus)

	require.Len(t, found.Stakeholders, 1)
	assert.Equal(t, "John Smith", found.Stakeholders[0].Name)
	assert.NotEmpty(t, found.Stakeholders[0].ID, "stakeholder without an id gets one assigned")
}

func TestCustomerFindByIDAbsent(t *testing.T) {
	db, _, _ := newTestDatabase(t)

	_, ok := db.CustomerRepo().FindByID("nope")
	assert.False(t, ok)
}

func TestCustomerUpdateEmptyPatchOnlyTouchesModifiedAt(t *testing.T) {
	db, manager, _ := newTestDatabase(t)

	stored := map[string]any{
		"id":         "10",
		"name":       "Acme",
		"createdAt":  "2024-01-01T00:00:00Z",
		"modifiedAt": "2024-01-01T00:00:00Z",
	}
	require.NoError(t, db.CustomerRepo().store.Write(manager.CustomersDir(), "10.json", stored))

	updated, err := db.CustomerRepo().Update("10", map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, "10", updated.ID)
	assert.Equal(t, "Acme", updated.Name)
	assert.Equal(t, "2024-01-01T00:00:00Z", updated.CreatedAt)
	assert.NotEqual(t, "2024-01-01T00:00:00Z", updated.ModifiedAt)
}

func TestCustomerUpdatePreservesOmittedFields(t *testing.T) {
	db, _, _ := newTestDatabase(t)

	created, err := db.CustomerRepo().Create(map[string]any{
		"name":             "Acme",
		"primaryTechFocus": 100000006,
	})
	require.NoError(t, err)

	updated, err := db.CustomerRepo().Update(created.ID, map[string]any{"name": "Acme Corp"})
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", updated.Name)
	assert.Equal(t, models.TechDataverse, updated.PrimaryTechFocus, "omitted field keeps stored value")

	// id and createdAt cannot be overwritten through a patch
	forced, err := db.CustomerRepo().Update(created.ID, map[string]any{
		"id":        "hijacked",
		"createdAt": "1999-01-01T00:00:00Z",
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, forced.ID)
	assert.Equal(t, created.CreatedAt, forced.CreatedAt)
}

func TestCustomerUpdateAbsentIsNotFound(t *testing.T) {
	db, _, _ := newTestDatabase(t)

	_, err := db.CustomerRepo().Update("missing", map[string]any{"name": "X"})
	assert.True(t, errs.IsNotFound(err))
}

func TestCustomerDeleteIdempotent(t *testing.T) {
	db, _, _ := newTestDatabase(t)

	created, err := db.CustomerRepo().Create(map[string]any{"name": "Acme"})
	require.NoError(t, err)

	require.NoError(t, db.CustomerRepo().Delete(created.ID))
	_, ok := db.CustomerRepo().FindByID(created.ID)
	assert.False(t, ok)

	require.NoError(t, db.CustomerRepo().Delete(created.ID))
}

func TestCustomerFindAllSortedByName(t *testing.T) {
	db, manager, _ := newTestDatabase(t)
	repo := db.CustomerRepo()

	// Written out of order on purpose
	require.NoError(t, repo.store.Write(manager.CustomersDir(), "2.json", map[string]any{"id": "2", "name": "Beta"}))
	require.NoError(t, repo.store.Write(manager.CustomersDir(), "1.json", map[string]any{"id": "1", "name": "acme"}))

	customers := repo.FindAll()
	require.Len(t, customers, 2)
	assert.Equal(t, "acme", customers[0].Name, "sort is case-insensitive")
	assert.Equal(t, "Beta", customers[1].Name)
}

func TestCustomerMutationsBlockedInDemoMode(t *testing.T) {
	db, manager, _ := newTestDatabase(t)

	created, err := db.CustomerRepo().Create(map[string]any{"name": "Real"})
	require.NoError(t, err)

	require.NoError(t, manager.SetDemoMode(true))

	_, err = db.CustomerRepo().Create(map[string]any{"name": "Blocked"})
	assert.True(t, errs.IsDemoModeActive(err))

	_, err = db.CustomerRepo().Update(created.ID, map[string]any{"name": "Blocked"})
	assert.True(t, errs.IsDemoModeActive(err))

	err = db.CustomerRepo().Delete(created.ID)
	assert.True(t, errs.IsDemoModeActive(err))

	// Nothing was written or removed
	assert.Equal(t, []string{created.ID + ".json"}, db.CustomerRepo().store.List(manager.CustomersDir()))
	unchanged, ok := db.CustomerRepo().FindByID(created.ID)
	require.True(t, ok)
	assert.Equal(t, "Real", unchanged.Name)
}

func TestDatabaseSwitchesToDemoSources(t *testing.T) {
	db, manager, _ := newTestDatabase(t)

	_, err := db.CustomerRepo().Create(map[string]any{"name": "Real"})
	require.NoError(t, err)

	require.NoError(t, manager.SetDemoMode(true))

	demo := db.Customers().FindAll()
	assert.Equal(t, models.DemoCustomers(), demo)

	require.NoError(t, manager.SetDemoMode(false))
	real := db.Customers().FindAll()
	require.Len(t, real, 1)
	assert.Equal(t, "Real", real[0].Name)
}
