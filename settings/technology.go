package settings

import (
	"encoding/json"
	"path/filepath"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/rs/zerolog"

	"github.com/rpupo63/csa-tracker-backend/models"
)

const technologyFileName = "technology-settings.json"

// TechnologyStore loads and saves the editable solution-area/technology
// catalog as one document next to the record directories, so a relocation
// is picked up on the next call. There is no partial update: callers
// read-modify-write the whole structure. Two concurrent editors can clobber
// each other's changes, which is acceptable for a single-operator tool.
type TechnologyStore struct {
	fs      billy.Filesystem
	manager *Manager
	logger  zerolog.Logger
}

func NewTechnologyStore(fs billy.Filesystem, manager *Manager, logger zerolog.Logger) *TechnologyStore {
	return &TechnologyStore{
		fs:      fs,
		manager: manager,
		logger:  logger.With().Str("component", "technology").Logger(),
	}
}

func (s *TechnologyStore) path() string {
	return filepath.Join(s.manager.Root(), technologyFileName)
}

// Load returns the stored taxonomy. An absent or unparseable document reads
// as the empty structure, never as an error.
func (s *TechnologyStore) Load() models.TechnologySettings {
	data, err := util.ReadFile(s.fs, s.path())
	if err != nil {
		return models.EmptyTechnologySettings()
	}
	var doc models.TechnologySettings
	if err := json.Unmarshal(data, &doc); err != nil {
		s.logger.Warn().Err(err).Str("path", s.path()).Msg("unparseable technology settings")
		return models.EmptyTechnologySettings()
	}
	if doc.SolutionAreas == nil {
		doc.SolutionAreas = []models.SolutionArea{}
	}
	if doc.Technologies == nil {
		doc.Technologies = map[string][]models.Technology{}
	}
	return doc
}

// Save overwrites the entire document and stamps updatedAt. The stamped
// document is returned so the caller can echo it back.
func (s *TechnologyStore) Save(doc models.TechnologySettings) (models.TechnologySettings, error) {
	doc.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return doc, err
	}
	if err := util.WriteFile(s.fs, s.path(), data, 0o644); err != nil {
		s.logger.Error().Err(err).Str("path", s.path()).Msg("saving technology settings")
		return doc, err
	}
	return doc, nil
}
