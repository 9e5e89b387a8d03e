package settings

import (
	"path/filepath"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/csa-tracker-backend/models"
)

func newTestTechnologyStore(t *testing.T) (*TechnologyStore, *Manager) {
	t.Helper()

	fs := memfs.New()
	manager := NewManager(fs, testHome, zerolog.Nop())
	manager.Startup()
	return NewTechnologyStore(fs, manager, zerolog.Nop()), manager
}

func TestTechnologyLoadAbsentReturnsEmpty(t *testing.T) {
	store, _ := newTestTechnologyStore(t)

	doc := store.Load()
	assert.Equal(t, []models.SolutionArea{}, doc.SolutionAreas)
	assert.Equal(t, map[string][]models.Technology{}, doc.Technologies)
	assert.Empty(t, doc.UpdatedAt)
}

func TestTechnologyLoadUnparseableReturnsEmpty(t *testing.T) {
	store, manager := newTestTechnologyStore(t)

	path := filepath.Join(manager.Root(), "technology-settings.json")
	require.NoError(t, util.WriteFile(store.fs, path, []byte("<xml>"), 0o644))

	doc := store.Load()
	assert.Empty(t, doc.SolutionAreas)
	assert.Empty(t, doc.Technologies)
}

func TestTechnologySaveStampsAndRoundTrips(t *testing.T) {
	store, _ := newTestTechnologyStore(t)

	in := models.TechnologySettings{
		SolutionAreas: []models.SolutionArea{{ID: "security", Label: "Security"}},
		Technologies: map[string][]models.Technology{
			"security": {{ID: 100000033, Label: "Sentinel", SolutionArea: "security"}},
		},
	}

	saved, err := store.Save(in)
	require.NoError(t, err)
	assert.NotEmpty(t, saved.UpdatedAt)

	loaded := store.Load()
	assert.Equal(t, saved.SolutionAreas, loaded.SolutionAreas)
	assert.Equal(t, saved.Technologies, loaded.Technologies)
	assert.Equal(t, saved.UpdatedAt, loaded.UpdatedAt)
}

func TestTechnologySaveLoadSaveKeepsContent(t *testing.T) {
	store, _ := newTestTechnologyStore(t)

	catalog := models.DefaultTechnologySettings()
	first, err := store.Save(catalog)
	require.NoError(t, err)

	// Re-saving what was loaded only moves the updatedAt stamp
	second, err := store.Save(store.Load())
	require.NoError(t, err)
	assert.Equal(t, first.SolutionAreas, second.SolutionAreas)
	assert.Equal(t, first.Technologies, second.Technologies)
}

func TestTechnologyFollowsRelocation(t *testing.T) {
	store, manager := newTestTechnologyStore(t)

	_, err := store.Save(models.TechnologySettings{
		SolutionAreas: []models.SolutionArea{{ID: "ai-business", Label: "AI Business Solutions"}},
	})
	require.NoError(t, err)

	require.NoError(t, manager.SetDataDirectory("/relocated"))

	// The old document stays behind; the new directory reads empty
	doc := store.Load()
	assert.Empty(t, doc.SolutionAreas)
}
