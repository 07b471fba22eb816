// Package storage persists qq invocation history as JSON records under
// the data directory.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"qq/model"
)

// Record is one generate-mode invocation: the conversation so far, the
// model used, and the last extracted command. Updated after every
// assistant turn so the record survives a process-replacing exec.
type Record struct {
	ID        string             `json:"id"`
	Model     string             `json:"model"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
	Messages  model.Conversation `json:"messages"`
	Command   string             `json:"command,omitempty"`
}

// RecordMetadata is a lightweight version of Record for listing.
type RecordMetadata struct {
	ID           string    `json:"id"`
	Model        string    `json:"model"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	MessageCount int       `json:"message_count"`
	Command      string    `json:"command,omitempty"`
}

// History handles invocation record persistence.
type History struct {
	historyDir string
}

// NewHistory creates history storage under dataDir.
func NewHistory(dataDir string) (*History, error) {
	historyDir := filepath.Join(dataDir, "history")

	// 0700 - user-only access; records contain conversation text
	if err := os.MkdirAll(historyDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	return &History{
		historyDir: historyDir,
	}, nil
}

// Save writes a record to disk, assigning an ID on first save.
func (h *History) Save(record *Record) error {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}

	record.UpdatedAt = time.Now()
	if record.CreatedAt.IsZero() {
		record.CreatedAt = record.UpdatedAt
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	path := filepath.Join(h.historyDir, record.ID+".json")
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write record file: %w", err)
	}

	return nil
}

// Load reads a record from disk.
func (h *History) Load(id string) (*Record, error) {
	path := filepath.Join(h.historyDir, id+".json")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read record file: %w", err)
	}

	var record Record
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to parse record file: %w", err)
	}

	return &record, nil
}

// List returns metadata for all records, newest first.
func (h *History) List() ([]RecordMetadata, error) {
	entries, err := os.ReadDir(h.historyDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read history directory: %w", err)
	}

	var records []RecordMetadata
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		record, err := h.Load(strings.TrimSuffix(entry.Name(), ".json"))
		if err != nil {
			continue
		}

		records = append(records, RecordMetadata{
			ID:           record.ID,
			Model:        record.Model,
			CreatedAt:    record.CreatedAt,
			UpdatedAt:    record.UpdatedAt,
			MessageCount: len(record.Messages),
			Command:      record.Command,
		})
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].UpdatedAt.After(records[j].UpdatedAt)
	})

	return records, nil
}

// Delete removes a record from disk.
func (h *History) Delete(id string) error {
	path := filepath.Join(h.historyDir, id+".json")
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}
	return nil
}
