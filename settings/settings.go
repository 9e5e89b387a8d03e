package settings

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/rs/zerolog"
)

const (
	legacyConfigName = ".csa-tracker-config.json"
	settingsFileName = "settings.json"
	customersDirName = "customers"
	projectsDirName  = "projects"
	jsonExt          = ".json"
)

// document is the settings file as persisted. The legacy home-directory file
// and the directory-local settings.json share this shape; the legacy file
// typically carries only databasePath.
type document struct {
	DatabasePath string `json:"databasePath,omitempty"`
	IsDemoMode   bool   `json:"isDemoMode"`
	SolutionArea string `json:"solutionArea,omitempty"`
	Skillset     []int  `json:"skillset"`
}

// Snapshot is the configuration state reported to clients.
type Snapshot struct {
	IsConfigured bool   `json:"isConfigured"`
	IsDemoMode   bool   `json:"isDemoMode"`
	DatabasePath string `json:"databasePath"`
	SolutionArea string `json:"solutionArea,omitempty"`
	Skillset     []int  `json:"skillset"`
}

// Manager owns the active data-directory path, the active settings-file
// location, and the user preferences. It is constructed once by the process
// entry point and injected wherever configuration is needed; the deployment
// model is single-process with sequential requests, so no locking.
//
// Persistence is best-effort: a failed settings write is logged and reported
// but never rolls back the in-memory state, which stays authoritative for
// the running process.
type Manager struct {
	fs     billy.Filesystem
	logger zerolog.Logger

	legacyPath  string
	defaultRoot string

	root         string
	settingsPath string
	configured   bool
	demoMode     bool
	solutionArea string
	skillset     []int
}

// NewManager builds a manager rooted at the built-in default data directory
// under home. Call Startup to resolve the persisted state.
func NewManager(fs billy.Filesystem, home string, logger zerolog.Logger) *Manager {
	defaultRoot := filepath.Join(home, "Library", "CloudStorage", "OneDrive-Microsoft", "CSA Tracker Database")
	return &Manager{
		fs:           fs,
		logger:       logger.With().Str("component", "settings").Logger(),
		legacyPath:   filepath.Join(home, legacyConfigName),
		defaultRoot:  defaultRoot,
		root:         defaultRoot,
		settingsPath: filepath.Join(home, legacyConfigName),
		skillset:     []int{},
	}
}

// Startup resolves the persisted configuration, makes sure the record
// directories exist, and computes the configured flag. Load failures are
// never fatal; every failure degrades to built-in defaults.
func (m *Manager) Startup() {
	m.load()
	if err := m.ensureDirectories(); err != nil {
		m.logger.Error().Err(err).Str("path", m.root).Msg("creating data directories")
	}
	m.configured = m.checkConfigured()
	m.logger.Info().
		Str("databasePath", m.root).
		Str("settingsFile", m.settingsPath).
		Bool("isConfigured", m.configured).
		Bool("isDemoMode", m.demoMode).
		Msg("configuration resolved")
}

// load walks the candidate settings locations in precedence order: the
// legacy home-directory file first, then the file inside the default data
// directory. When the winning document names a custom databasePath, the
// directory-local settings.json there becomes the active file and is
// re-read, since it may carry preference fields the legacy document lacks;
// if that re-read fails the fields already loaded stand.
func (m *Manager) load() {
	candidates := []string{
		m.legacyPath,
		filepath.Join(m.defaultRoot, settingsFileName),
	}

	var doc document
	found := false
	for _, path := range candidates {
		if d, ok := m.readDocument(path); ok {
			doc = d
			m.settingsPath = path
			found = true
			break
		}
	}
	if !found {
		// First run. Defaults stay in place and the first save creates the
		// legacy file.
		m.settingsPath = m.legacyPath
		m.logger.Info().Msg("no settings file found, using defaults")
		return
	}

	if doc.DatabasePath != "" {
		m.root = doc.DatabasePath
		m.settingsPath = filepath.Join(m.root, settingsFileName)
		if inner, ok := m.readDocument(m.settingsPath); ok {
			doc = inner
		}
	}

	m.demoMode = doc.IsDemoMode
	m.solutionArea = doc.SolutionArea
	m.skillset = doc.Skillset
	if m.skillset == nil {
		m.skillset = []int{}
	}
}

func (m *Manager) readDocument(path string) (document, bool) {
	data, err := util.ReadFile(m.fs, path)
	if err != nil {
		return document{}, false
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		m.logger.Warn().Err(err).Str("path", path).Msg("unparseable settings file, skipping")
		return document{}, false
	}
	return doc, true
}

func (m *Manager) save() error {
	doc := document{
		DatabasePath: m.root,
		IsDemoMode:   m.demoMode,
		SolutionArea: m.solutionArea,
		Skillset:     m.skillset,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	if err := util.WriteFile(m.fs, m.settingsPath, data, 0o644); err != nil {
		m.logger.Error().Err(err).Str("path", m.settingsPath).Msg("saving settings")
		return err
	}
	return nil
}

func (m *Manager) ensureDirectories() error {
	if err := m.fs.MkdirAll(m.CustomersDir(), 0o755); err != nil {
		return err
	}
	return m.fs.MkdirAll(m.ProjectsDir(), 0o755)
}

func (m *Manager) dirExists(dir string) bool {
	info, err := m.fs.Stat(dir)
	return err == nil && info.IsDir()
}

func (m *Manager) hasRecords(dir string) bool {
	entries, err := m.fs.ReadDir(dir)
	if err != nil {
		return false
	}
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), jsonExt) {
			return true
		}
	}
	return false
}

// checkConfigured re-reads the filesystem: both record directories must
// exist and at least one must already hold a record.
func (m *Manager) checkConfigured() bool {
	if !m.dirExists(m.CustomersDir()) || !m.dirExists(m.ProjectsDir()) {
		return false
	}
	return m.hasRecords(m.CustomersDir()) || m.hasRecords(m.ProjectsDir())
}

// RefreshConfigured recomputes the configured flag from disk.
func (m *Manager) RefreshConfigured() bool {
	m.configured = m.checkConfigured()
	return m.configured
}

// Snapshot returns the current in-memory configuration without touching
// disk.
func (m *Manager) Snapshot() Snapshot {
	return Snapshot{
		IsConfigured: m.configured,
		IsDemoMode:   m.demoMode,
		DatabasePath: m.root,
		SolutionArea: m.solutionArea,
		Skillset:     append([]int{}, m.skillset...),
	}
}

func (m *Manager) IsDemoMode() bool { return m.demoMode }

// Root returns the active data-directory path.
func (m *Manager) Root() string { return m.root }

// SettingsPath returns the active settings-file location.
func (m *Manager) SettingsPath() string { return m.settingsPath }

func (m *Manager) CustomersDir() string { return filepath.Join(m.root, customersDirName) }

func (m *Manager) ProjectsDir() string { return filepath.Join(m.root, projectsDirName) }

// UpdatePreferences applies only the provided fields, then persists. Nil
// pointers leave the corresponding field untouched.
func (m *Manager) UpdatePreferences(solutionArea *string, skillset *[]int) error {
	if solutionArea != nil {
		m.solutionArea = *solutionArea
	}
	if skillset != nil {
		m.skillset = *skillset
		if m.skillset == nil {
			m.skillset = []int{}
		}
	}
	return m.save()
}

// SolutionArea returns the preferred solution area, "" when unset.
func (m *Manager) SolutionArea() string { return m.solutionArea }

// Skillset returns a copy of the preferred technology codes.
func (m *Manager) Skillset() []int { return append([]int{}, m.skillset...) }

// SetDemoMode flips the demo flag and persists.
func (m *Manager) SetDemoMode(enabled bool) error {
	m.demoMode = enabled
	return m.save()
}

// SetDataDirectory relocates: future reads and writes go to newPath,
// existing record files stay where they are. The active settings file moves
// into the new directory; if the legacy home-directory settings file exists
// its content is copied there verbatim as a one-time migration, otherwise
// the current in-memory configuration is persisted. The in-memory path
// switch is not rolled back when post-relocation verification fails - the
// error is returned and the process keeps running against the new path.
func (m *Manager) SetDataDirectory(newPath string) error {
	m.root = newPath
	m.configured = true
	m.settingsPath = filepath.Join(m.root, settingsFileName)

	if err := m.ensureDirectories(); err != nil {
		m.logger.Error().Err(err).Str("path", newPath).Msg("creating data directories")
	}

	if data, err := util.ReadFile(m.fs, m.legacyPath); err == nil {
		if err := util.WriteFile(m.fs, m.settingsPath, data, 0o644); err != nil {
			m.logger.Error().Err(err).Msg("migrating legacy settings")
		} else {
			m.logger.Info().Str("path", m.settingsPath).Msg("migrated legacy settings")
		}
	} else if err := m.save(); err != nil {
		m.logger.Warn().Err(err).Msg("settings not persisted, continuing with in-memory state")
	}

	if !m.dirExists(m.CustomersDir()) || !m.dirExists(m.ProjectsDir()) {
		return fmt.Errorf("record directories missing under %s", newPath)
	}
	return nil
}

// ResetToDefault relocates to the built-in default directory and recomputes
// the configured flag from what is actually on disk there.
func (m *Manager) ResetToDefault() (string, bool) {
	if err := m.SetDataDirectory(m.defaultRoot); err != nil {
		m.logger.Warn().Err(err).Msg("reset: directory verification failed")
	}
	m.configured = m.checkConfigured()
	return m.root, m.configured
}
