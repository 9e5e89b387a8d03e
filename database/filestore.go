package database

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/rs/zerolog"
)

const jsonExt = ".json"

// FileStore persists one JSON document per record as an individual file in
// a directory. Read-path failures (missing directory, missing file, invalid
// JSON) are normalized to empty/absent results; write-path failures
// propagate to the caller.
type FileStore struct {
	fs     billy.Filesystem
	logger zerolog.Logger
}

func NewFileStore(fs billy.Filesystem, logger zerolog.Logger) *FileStore {
	return &FileStore{
		fs:     fs,
		logger: logger.With().Str("component", "filestore").Logger(),
	}
}

// List returns the record filenames in dir. A missing or unreadable
// directory yields an empty list, not an error.
func (s *FileStore) List(dir string) []string {
	entries, err := s.fs.ReadDir(dir)
	if err != nil {
		return nil
	}
	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), jsonExt) {
			names = append(names, entry.Name())
		}
	}
	return names
}

// Read decodes the named record into v and reports whether a record was
// found. An absent file and invalid JSON both read as "no record".
func (s *FileStore) Read(dir, name string, v any) bool {
	data, err := util.ReadFile(s.fs, filepath.Join(dir, name))
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		s.logger.Warn().Err(err).Str("file", name).Msg("skipping unreadable record")
		return false
	}
	return true
}

// Exists reports whether the named record file is present.
func (s *FileStore) Exists(dir, name string) bool {
	_, err := s.fs.Stat(filepath.Join(dir, name))
	return err == nil
}

// Write serializes v as pretty-printed JSON and replaces the named file.
func (s *FileStore) Write(dir, name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return util.WriteFile(s.fs, filepath.Join(dir, name), data, 0o644)
}

// Delete removes the named file. A file that is already gone counts as
// deleted.
func (s *FileStore) Delete(dir, name string) error {
	err := s.fs.Remove(filepath.Join(dir, name))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
