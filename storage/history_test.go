package storage

import (
	"testing"
	"time"

	"qq/model"
)

func testRecord(command string) *Record {
	conv := model.NewConversation("system prompt")
	conv.AddUser("list files")
	conv.AddAssistant("<command>" + command + "</command>")
	return &Record{
		Model:    "test-model",
		Messages: conv,
		Command:  command,
	}
}

func TestSaveAssignsID(t *testing.T) {
	history, err := NewHistory(t.TempDir())
	if err != nil {
		t.Fatalf("NewHistory() error = %v", err)
	}

	record := testRecord("ls -la")
	if err := history.Save(record); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if record.ID == "" {
		t.Error("Save() did not assign an ID")
	}
	if record.CreatedAt.IsZero() || record.UpdatedAt.IsZero() {
		t.Error("Save() did not set timestamps")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	history, err := NewHistory(t.TempDir())
	if err != nil {
		t.Fatalf("NewHistory() error = %v", err)
	}

	record := testRecord("df -h")
	if err := history.Save(record); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := history.Load(record.ID)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Command != "df -h" {
		t.Errorf("loaded command = %q, want %q", loaded.Command, "df -h")
	}
	if len(loaded.Messages) != 3 {
		t.Errorf("loaded %d messages, want 3", len(loaded.Messages))
	}
	if loaded.Messages[0].Role != model.RoleSystem {
		t.Errorf("first message role = %q, want system", loaded.Messages[0].Role)
	}
}

func TestSaveUpdatesExistingRecord(t *testing.T) {
	history, err := NewHistory(t.TempDir())
	if err != nil {
		t.Fatalf("NewHistory() error = %v", err)
	}

	record := testRecord("ls")
	if err := history.Save(record); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	id := record.ID

	record.Messages.AddUser("sort by size")
	record.Messages.AddAssistant("<command>ls -S</command>")
	record.Command = "ls -S"
	if err := history.Save(record); err != nil {
		t.Fatalf("second Save() error = %v", err)
	}
	if record.ID != id {
		t.Errorf("Save() changed ID from %s to %s", id, record.ID)
	}

	records, err := history.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("List() has %d records, want 1", len(records))
	}
	if records[0].Command != "ls -S" {
		t.Errorf("listed command = %q, want updated value", records[0].Command)
	}
}

func TestListNewestFirst(t *testing.T) {
	history, err := NewHistory(t.TempDir())
	if err != nil {
		t.Fatalf("NewHistory() error = %v", err)
	}

	older := testRecord("ls")
	if err := history.Save(older); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	time.Sleep(10 * time.Millisecond)
	newer := testRecord("df -h")
	if err := history.Save(newer); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	records, err := history.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("List() has %d records, want 2", len(records))
	}
	if records[0].ID != newer.ID {
		t.Errorf("List() first record = %s, want newest %s", records[0].ID, newer.ID)
	}
}

func TestDelete(t *testing.T) {
	history, err := NewHistory(t.TempDir())
	if err != nil {
		t.Fatalf("NewHistory() error = %v", err)
	}

	record := testRecord("ls")
	if err := history.Save(record); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := history.Delete(record.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := history.Load(record.ID); err == nil {
		t.Error("Load() after Delete() succeeded, want error")
	}
}
