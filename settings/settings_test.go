package settings

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHome = "/home/test"

func newTestManager(t *testing.T) (*Manager, billy.Filesystem) {
	t.Helper()

	fs := memfs.New()
	return NewManager(fs, testHome, zerolog.Nop()), fs
}

func writeJSON(t *testing.T, fs billy.Filesystem, path string, doc any) {
	t.Helper()

	data, err := json.Marshal(doc)
	require.NoError(t, err)
	require.NoError(t, util.WriteFile(fs, path, data, 0o644))
}

func TestStartupFirstRun(t *testing.T) {
	m, fs := newTestManager(t)
	m.Startup()

	snap := m.Snapshot()
	assert.False(t, snap.IsConfigured)
	assert.False(t, snap.IsDemoMode)
	assert.Empty(t, snap.SolutionArea)
	assert.Equal(t, []int{}, snap.Skillset)

	defaultRoot := filepath.Join(testHome, "Library", "CloudStorage", "OneDrive-Microsoft", "CSA Tracker Database")
	assert.Equal(t, defaultRoot, snap.DatabasePath)

	// Record directories are created on startup
	for _, dir := range []string{m.CustomersDir(), m.ProjectsDir()} {
		info, err := fs.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestStartupLegacyFileWithCustomPath(t *testing.T) {
	m, fs := newTestManager(t)

	// Legacy document carries only the path; the directory-local settings
	// file it points at does not exist, so the re-read fails and the fields
	// already loaded stand.
	writeJSON(t, fs, filepath.Join(testHome, ".csa-tracker-config.json"), map[string]any{
		"databasePath": "/custom",
	})

	m.Startup()

	assert.Equal(t, "/custom", m.Root())
	assert.False(t, m.IsDemoMode())
	assert.Equal(t, filepath.Join("/custom", "settings.json"), m.SettingsPath())
}

func TestStartupLegacyPointsAtDirectoryLocalDocument(t *testing.T) {
	m, fs := newTestManager(t)

	writeJSON(t, fs, filepath.Join(testHome, ".csa-tracker-config.json"), map[string]any{
		"databasePath": "/custom",
	})
	writeJSON(t, fs, "/custom/settings.json", map[string]any{
		"databasePath": "/custom",
		"isDemoMode":   true,
		"solutionArea": "security",
		"skillset":     []int{100000033, 100000035},
	})

	m.Startup()

	snap := m.Snapshot()
	assert.Equal(t, "/custom", snap.DatabasePath)
	assert.True(t, snap.IsDemoMode)
	assert.Equal(t, "security", snap.SolutionArea)
	assert.Equal(t, []int{100000033, 100000035}, snap.Skillset)
}

func TestStartupDefaultDirectoryDocument(t *testing.T) {
	m, fs := newTestManager(t)

	defaultRoot := filepath.Join(testHome, "Library", "CloudStorage", "OneDrive-Microsoft", "CSA Tracker Database")
	writeJSON(t, fs, filepath.Join(defaultRoot, "settings.json"), map[string]any{
		"isDemoMode":   true,
		"solutionArea": "cloud-ai",
	})

	m.Startup()

	assert.Equal(t, defaultRoot, m.Root())
	assert.True(t, m.IsDemoMode())
	assert.Equal(t, "cloud-ai", m.SolutionArea())
}

func TestStartupUnparseableSettingsFallsBackToDefaults(t *testing.T) {
	m, fs := newTestManager(t)

	require.NoError(t, util.WriteFile(fs, filepath.Join(testHome, ".csa-tracker-config.json"), []byte("{not json"), 0o644))

	m.Startup()

	snap := m.Snapshot()
	assert.False(t, snap.IsDemoMode)
	assert.False(t, snap.IsConfigured)
}

func TestCheckConfiguredNeedsRecords(t *testing.T) {
	m, fs := newTestManager(t)
	m.Startup()

	// Directories exist but are empty
	assert.False(t, m.RefreshConfigured())

	writeJSON(t, fs, filepath.Join(m.CustomersDir(), "1.json"), map[string]any{"id": "1", "name": "Acme"})
	assert.True(t, m.RefreshConfigured())
}

func TestSetDataDirectoryMigratesLegacyVerbatim(t *testing.T) {
	m, fs := newTestManager(t)

	legacy := []byte(`{"databasePath":"/old","isDemoMode":true}`)
	require.NoError(t, util.WriteFile(fs, filepath.Join(testHome, ".csa-tracker-config.json"), legacy, 0o644))
	m.Startup()

	require.NoError(t, m.SetDataDirectory("/relocated"))

	data, err := util.ReadFile(fs, filepath.Join("/relocated", "settings.json"))
	require.NoError(t, err)
	assert.Equal(t, legacy, data)

	assert.Equal(t, "/relocated", m.Root())
	assert.True(t, m.Snapshot().IsConfigured)
	assert.Equal(t, filepath.Join("/relocated", "customers"), m.CustomersDir())
	assert.Equal(t, filepath.Join("/relocated", "projects"), m.ProjectsDir())
}

func TestSetDataDirectorySavesStateWithoutLegacyFile(t *testing.T) {
	m, fs := newTestManager(t)
	m.Startup()

	require.NoError(t, m.SetDemoMode(true))
	require.NoError(t, m.SetDataDirectory("/fresh"))

	data, err := util.ReadFile(fs, filepath.Join("/fresh", "settings.json"))
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "/fresh", doc["databasePath"])
	assert.Equal(t, true, doc["isDemoMode"])
}

func TestSetDataDirectoryKeepsPathOnVerificationFailure(t *testing.T) {
	m, _ := newTestManager(t)
	m.fs = failingFS{m.fs}

	err := m.SetDataDirectory("/unwritable")
	require.Error(t, err)

	// The in-memory path switch stands even though verification failed
	assert.Equal(t, "/unwritable", m.Root())
	assert.True(t, m.Snapshot().IsConfigured)
}

// failingFS refuses every write so directory creation cannot succeed.
type failingFS struct {
	billy.Filesystem
}

func (failingFS) MkdirAll(string, os.FileMode) error {
	return errFailingFS
}

func (failingFS) Create(string) (billy.File, error) {
	return nil, errFailingFS
}

func (failingFS) OpenFile(string, int, os.FileMode) (billy.File, error) {
	return nil, errFailingFS
}

var errFailingFS = errors.New("filesystem unavailable")

func TestResetToDefault(t *testing.T) {
	m, fs := newTestManager(t)
	m.Startup()

	require.NoError(t, m.SetDataDirectory("/elsewhere"))

	path, configured := m.ResetToDefault()
	defaultRoot := filepath.Join(testHome, "Library", "CloudStorage", "OneDrive-Microsoft", "CSA Tracker Database")
	assert.Equal(t, defaultRoot, path)
	assert.False(t, configured) // empty default directory

	writeJSON(t, fs, filepath.Join(m.ProjectsDir(), "1.json"), map[string]any{"id": "1", "name": "P"})
	_, configured = m.ResetToDefault()
	assert.True(t, configured)
}

func TestUpdatePreferencesPartial(t *testing.T) {
	m, _ := newTestManager(t)
	m.Startup()

	area := "ai-business"
	require.NoError(t, m.UpdatePreferences(&area, nil))
	assert.Equal(t, "ai-business", m.SolutionArea())
	assert.Equal(t, []int{}, m.Skillset())

	skills := []int{100000000, 100000003}
	require.NoError(t, m.UpdatePreferences(nil, &skills))
	assert.Equal(t, "ai-business", m.SolutionArea())
	assert.Equal(t, skills, m.Skillset())

	// Explicit empty slice clears, nil pointer leaves untouched
	empty := []int{}
	require.NoError(t, m.UpdatePreferences(nil, &empty))
	assert.Equal(t, []int{}, m.Skillset())
}

func TestPreferencesSurviveReload(t *testing.T) {
	m, fs := newTestManager(t)
	m.Startup()

	area := "security"
	skills := []int{100000032}
	require.NoError(t, m.UpdatePreferences(&area, &skills))
	require.NoError(t, m.SetDemoMode(true))

	reloaded := NewManager(fs, testHome, zerolog.Nop())
	reloaded.Startup()

	snap := reloaded.Snapshot()
	assert.True(t, snap.IsDemoMode)
	assert.Equal(t, "security", snap.SolutionArea)
	assert.Equal(t, []int{100000032}, snap.Skillset)
}

func TestSnapshotCopiesSkillset(t *testing.T) {
	m, _ := newTestManager(t)
	m.Startup()

	skills := []int{1, 2, 3}
	require.NoError(t, m.UpdatePreferences(nil, &skills))

	snap := m.Snapshot()
	snap.Skillset[0] = 99
	assert.Equal(t, []int{1, 2, 3}, m.Skillset())
}
