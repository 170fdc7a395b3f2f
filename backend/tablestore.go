// Copyright (c) 2026 TTBT Enterprises LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package backend

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/c2FmZQ/storage"
	"github.com/google/renameio/v2"
	"github.com/rs/zerolog"
	"github.com/ttbt-io/strikezone/backend/engine"
)

//go:embed data/popz/*.json
var defaultTables embed.FS

// TableRecord is an outcome table as stored on disk.
type TableRecord struct {
	PitcherID     string              `json:"pitcherId"`
	SchemaVersion int                 `json:"schemaVersion"`
	UpdatedAt     int64               `json:"updatedAt,omitempty"`
	Table         engine.OutcomeTable `json:"table"`
}

// TableStore manages outcome table persistence to disk.
type TableStore struct {
	DataDir string
	storage *storage.Storage
	logger  zerolog.Logger
	mu      sync.Map // Stores *sync.Mutex for each pitcherId to protect writes
}

// NewTableStore creates a new TableStore.
func NewTableStore(dataDir string, s *storage.Storage) *TableStore {
	return &TableStore{
		DataDir: dataDir,
		storage: s,
		logger:  WithComponent("tablestore"),
	}
}

func (ts *TableStore) lock(pitcherID string) func() {
	m, _ := ts.mu.LoadOrStore(pitcherID, &sync.Mutex{})
	mutex := m.(*sync.Mutex)
	mutex.Lock()
	return mutex.Unlock
}

func tableFileName(pitcherID string) string {
	return filepath.Join(TablesDir, fmt.Sprintf("%s.json", url.PathEscape(pitcherID)))
}

// SaveTable validates and saves the outcome table of a pitcher.
func (ts *TableStore) SaveTable(pitcherID string, table engine.OutcomeTable) error {
	if pitcherID == "" {
		return errors.New("empty pitcher id")
	}
	if err := table.Validate(); err != nil {
		return err
	}
	defer ts.lock(pitcherID)()

	rec := &TableRecord{
		PitcherID:     pitcherID,
		SchemaVersion: CurrentSchemaVersion,
		UpdatedAt:     time.Now().UnixNano(),
		Table:         table,
	}
	if err := ts.storage.SaveDataFile(tableFileName(pitcherID), rec); err != nil {
		return fmt.Errorf("storage.SaveDataFile: %w", err)
	}
	ts.logger.Debug().Str("pitcher", pitcherID).Int("pitchTypes", len(table)).Msg("table saved")
	return nil
}

// LoadTable loads the outcome table of a pitcher. It returns os.ErrNotExist
// when the pitcher has no table.
func (ts *TableStore) LoadTable(pitcherID string) (engine.OutcomeTable, error) {
	var rec TableRecord
	if err := ts.storage.ReadDataFile(tableFileName(pitcherID), &rec); err != nil {
		if os.IsNotExist(err) {
			return nil, os.ErrNotExist
		}
		return nil, fmt.Errorf("ReadDataFile: %w", err)
	}
	if rec.SchemaVersion > CurrentSchemaVersion {
		return nil, fmt.Errorf("table %s: unsupported schema version %d", pitcherID, rec.SchemaVersion)
	}
	if err := rec.Table.Validate(); err != nil {
		return nil, fmt.Errorf("table %s: %w", pitcherID, err)
	}
	return rec.Table, nil
}

// ListTables returns an iterator over the IDs of all stored tables.
func (ts *TableStore) ListTables() iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		files, err := os.ReadDir(filepath.Join(ts.DataDir, TablesDir))
		if err != nil {
			if !os.IsNotExist(err) {
				yield("", fmt.Errorf("could not read tables directory: %w", err))
			}
			return
		}
		for _, file := range files {
			if file.IsDir() || !strings.HasSuffix(file.Name(), ".json") {
				continue
			}
			pitcherID, err := url.PathUnescape(strings.TrimSuffix(file.Name(), ".json"))
			if err != nil {
				ts.logger.Warn().Str("file", file.Name()).Err(err).Msg("skipping table file")
				continue
			}
			if !yield(pitcherID, nil) {
				return
			}
		}
	}
}

// DeleteTable permanently deletes the table of a pitcher.
func (ts *TableStore) DeleteTable(pitcherID string) error {
	defer ts.lock(pitcherID)()

	fullPath := filepath.Join(ts.DataDir, tableFileName(pitcherID))
	if err := os.Remove(fullPath); err != nil {
		if os.IsNotExist(err) {
			return nil // Already gone
		}
		return fmt.Errorf("could not delete table file: %w", err)
	}
	return nil
}

// ImportJSON reads a plain POPZ JSON file and stores it for the pitcher.
func (ts *TableStore) ImportJSON(pitcherID, filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	table, err := engine.ReadOutcomeTable(f)
	if err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}
	return ts.SaveTable(pitcherID, table)
}

// ExportJSON writes the table of a pitcher to a plain POPZ JSON file. The
// file is replaced atomically.
func (ts *TableStore) ExportJSON(pitcherID, filename string) error {
	table, err := ts.LoadTable(pitcherID)
	if err != nil {
		return err
	}

	pendingFile, err := renameio.NewPendingFile(filename, renameio.WithPermissions(0644))
	if err != nil {
		return fmt.Errorf("create pending table file: %w", err)
	}
	defer func() {
		if err := pendingFile.Cleanup(); err != nil {
			ts.logger.Debug().Err(err).Msg("cleanup pending table file")
		}
	}()

	if err := engine.WriteOutcomeTable(pendingFile, table); err != nil {
		return fmt.Errorf("write table data: %w", err)
	}
	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace table file: %w", err)
	}
	return nil
}

// EnsureDefaults stores the built-in tables of pitchers that have none yet.
func (ts *TableStore) EnsureDefaults() error {
	entries, err := fs.ReadDir(defaultTables, "data/popz")
	if err != nil {
		return err
	}
	for _, e := range entries {
		pitcherID := strings.TrimSuffix(e.Name(), ".json")
		if _, err := ts.LoadTable(pitcherID); err == nil {
			continue
		} else if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		data, err := defaultTables.ReadFile(path.Join("data/popz", e.Name()))
		if err != nil {
			return err
		}
		table, err := engine.ParseOutcomeTable(data)
		if err != nil {
			return fmt.Errorf("default table %s: %w", pitcherID, err)
		}
		if err := ts.SaveTable(pitcherID, table); err != nil {
			return err
		}
		ts.logger.Info().Str("pitcher", pitcherID).Msg("installed default table")
	}
	return nil
}
