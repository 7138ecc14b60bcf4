// Package store provides the persistence backends for the phone
// directory: a JSON file (the default, compatible with directory files
// written by earlier versions of the tool) and SQLite.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"phonebook/internal/directory"
)

// JSONStore keeps the record list in a single JSON file: an array of
// objects with snake_case keys, written with 2-space indentation.
type JSONStore struct {
	path string
	log  *zap.Logger
}

// NewJSONStore returns a store backed by the file at path. The file is
// not created until the first Save.
func NewJSONStore(path string, log *zap.Logger) *JSONStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &JSONStore{path: path, log: log}
}

// Load reads the record list. A missing file is an empty directory. A
// file that cannot be parsed, or that contains records failing
// validation, is logged and also loads as empty rather than aborting
// the command.
func (s *JSONStore) Load() ([]directory.Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	var records []directory.Record
	if err := json.Unmarshal(data, &records); err != nil {
		s.log.Error("directory file is not valid JSON, starting empty",
			zap.String("path", s.path), zap.Error(err))
		return nil, nil
	}
	for i, r := range records {
		if err := r.Validate(); err != nil {
			s.log.Error("directory file contains an invalid record, starting empty",
				zap.String("path", s.path), zap.Int("index", i), zap.Error(err))
			return nil, nil
		}
	}
	return records, nil
}

// Save writes the record list, creating parent directories as needed.
func (s *JSONStore) Save(records []directory.Record) error {
	if records == nil {
		records = []directory.Record{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal records: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}

// Close is a no-op for the JSON backend.
func (s *JSONStore) Close() error {
	return nil
}
