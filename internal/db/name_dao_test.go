package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/xxxsen/namesplit/internal/config"
	"github.com/xxxsen/namesplit/internal/model"

	"github.com/stretchr/testify/assert"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	handle, err := Open(config.DBConfig{
		Driver: "sqlite3",
		DSN:    filepath.Join(t.TempDir(), "namesplit.db"),
	})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() {
		SetDefault(nil, "")
		handle.Close()
	})
	if err := EnsureSchema(context.Background(), handle, "sqlite3"); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	SetDefault(handle, "sqlite3")
}

func TestNameDaoInsertRaw(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	inserted, skipped, err := NameDao.InsertRaw(ctx, []string{"Smith, John", "Jane Doe"})
	if err != nil {
		t.Fatalf("insert raw: %v", err)
	}
	assert.Equal(t, 2, inserted)
	assert.Equal(t, 0, skipped)

	// Re-importing the same file must not duplicate rows.
	inserted, skipped, err = NameDao.InsertRaw(ctx, []string{"Smith, John", "New Name"})
	if err != nil {
		t.Fatalf("insert raw: %v", err)
	}
	assert.Equal(t, 1, inserted)
	assert.Equal(t, 1, skipped)
}

func TestNameDaoProcessCycle(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	if _, _, err := NameDao.InsertRaw(ctx, []string{"Smith, John", "Madonna", "Jane Doe"}); err != nil {
		t.Fatalf("insert raw: %v", err)
	}

	pending, err := NameDao.FetchPending(ctx, 0, 10)
	if err != nil {
		t.Fatalf("fetch pending: %v", err)
	}
	if len(pending) != 3 {
		t.Fatalf("expected 3 pending records, got %d", len(pending))
	}
	assert.Equal(t, "Smith, John", pending[0].RawName)
	assert.Equal(t, model.ParseStatePending, pending[0].ParseState)

	err = NameDao.MarkParsed(ctx, pending[0].ID, &model.NameRecord{
		FirstName: "John",
		LastName:  "Smith",
		SortKey:   "smith john",
	})
	if err != nil {
		t.Fatalf("mark parsed: %v", err)
	}
	if err := NameDao.MarkFailed(ctx, pending[1].ID, "last name not found"); err != nil {
		t.Fatalf("mark failed: %v", err)
	}

	parsed, err := NameDao.FetchPage(ctx, 0, 10, model.ParseStateParsed)
	if err != nil {
		t.Fatalf("fetch page: %v", err)
	}
	if len(parsed) != 1 {
		t.Fatalf("expected 1 parsed record, got %d", len(parsed))
	}
	assert.Equal(t, "Smith", parsed[0].LastName)
	assert.Equal(t, "smith john", parsed[0].SortKey)
	assert.Empty(t, parsed[0].ParseError)

	failed, err := NameDao.FetchPage(ctx, 0, 10, model.ParseStateFailed)
	if err != nil {
		t.Fatalf("fetch page: %v", err)
	}
	if len(failed) != 1 {
		t.Fatalf("expected 1 failed record, got %d", len(failed))
	}
	assert.Equal(t, "Madonna", failed[0].RawName)
	assert.Equal(t, "last name not found", failed[0].ParseError)

	counts, err := NameDao.CountByState(ctx)
	if err != nil {
		t.Fatalf("count by state: %v", err)
	}
	assert.Equal(t, int64(1), counts[model.ParseStateParsed])
	assert.Equal(t, int64(1), counts[model.ParseStateFailed])
	assert.Equal(t, int64(1), counts[model.ParseStatePending])
}

func TestNameDaoFetchPendingKeyset(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	if _, _, err := NameDao.InsertRaw(ctx, []string{"A One", "B Two", "C Three"}); err != nil {
		t.Fatalf("insert raw: %v", err)
	}

	first, err := NameDao.FetchPending(ctx, 0, 2)
	if err != nil {
		t.Fatalf("fetch pending: %v", err)
	}
	if len(first) != 2 {
		t.Fatalf("expected 2 records, got %d", len(first))
	}

	rest, err := NameDao.FetchPending(ctx, first[1].ID, 2)
	if err != nil {
		t.Fatalf("fetch pending: %v", err)
	}
	if len(rest) != 1 {
		t.Fatalf("expected 1 record, got %d", len(rest))
	}
	assert.Equal(t, "C Three", rest[0].RawName)
}

func TestRebind(t *testing.T) {
	t.Parallel()

	query := "SELECT id FROM name_record_tab WHERE parse_state = ? AND id > ? LIMIT ?"
	assert.Equal(t, query, rebind("sqlite3", query))
	assert.Equal(t,
		"SELECT id FROM name_record_tab WHERE parse_state = $1 AND id > $2 LIMIT $3",
		rebind("postgres", query))
}
