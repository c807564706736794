package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/xxxsen/namesplit/internal/model"

	"github.com/didi/gendry/builder"
)

const nameRecordTableName = "name_record_tab"

var recordFields = []string{
	"id", "raw_name", "academic_title", "leading_initial", "first_name",
	"middle_name", "nickname", "last_name", "suffix", "sort_key",
	"parse_state", "parse_error", "create_time", "update_time",
}

// NameDao is the global accessor for name_record_tab.
var NameDao = newNameDAO()

type nameDAO struct {
	dbGetter     func() *sql.DB
	driverGetter func() string
}

func newNameDAO() *nameDAO {
	return &nameDAO{
		dbGetter:     Default,
		driverGetter: Driver,
	}
}

// InsertRaw stores raw names in pending state. Names already present are
// counted as skipped, not errors; the unique index on raw_name makes the
// import idempotent.
func (dao *nameDAO) InsertRaw(ctx context.Context, names []string) (int, int, error) {
	handle := dao.dbGetter()
	if handle == nil {
		return 0, 0, fmt.Errorf("name dao not initialised")
	}
	driver := dao.driverGetter()

	now := time.Now().Unix()
	inserted, skipped := 0, 0
	for _, raw := range names {
		payload := []map[string]interface{}{{
			"raw_name":    raw,
			"parse_state": model.ParseStatePending,
			"create_time": now,
			"update_time": now,
		}}
		insertSQL, insertArgs, err := builder.BuildInsert(nameRecordTableName, payload)
		if err != nil {
			return inserted, skipped, err
		}
		if _, err := handle.ExecContext(ctx, rebind(driver, insertSQL), insertArgs...); err != nil {
			if isUniqueConstraintError(err) {
				skipped++
				continue
			}
			return inserted, skipped, fmt.Errorf("insert raw name %q: %w", raw, err)
		}
		inserted++
	}
	return inserted, skipped, nil
}

// FetchPending returns up to limit pending records with id greater than
// lastID, in id order. Keyset pagination so the processing loop never rereads
// rows it already failed.
func (dao *nameDAO) FetchPending(ctx context.Context, lastID int64, limit int) ([]*model.NameRecord, error) {
	handle := dao.dbGetter()
	if handle == nil {
		return nil, fmt.Errorf("name dao not initialised")
	}
	driver := dao.driverGetter()

	query := `SELECT ` + strings.Join(recordFields, ", ") + `
FROM name_record_tab WHERE parse_state = ? AND id > ? ORDER BY id ASC LIMIT ?`
	rows, err := handle.QueryContext(ctx, rebind(driver, query), model.ParseStatePending, lastID, limit)
	if err != nil {
		return nil, fmt.Errorf("query pending records: %w", err)
	}
	defer rows.Close()
	return scanRecords(rows)
}

// FetchPage returns up to limit records with id greater than lastID, in id
// order, optionally restricted to one parse state.
func (dao *nameDAO) FetchPage(ctx context.Context, lastID int64, limit int, state string) ([]*model.NameRecord, error) {
	handle := dao.dbGetter()
	if handle == nil {
		return nil, fmt.Errorf("name dao not initialised")
	}
	driver := dao.driverGetter()

	where := map[string]interface{}{
		"id >":     lastID,
		"_orderby": "id asc",
		"_limit":   []uint{0, uint(limit)},
	}
	if state != "" {
		where["parse_state"] = state
	}
	selectSQL, args, err := builder.BuildSelect(nameRecordTableName, where, recordFields)
	if err != nil {
		return nil, err
	}
	rows, err := handle.QueryContext(ctx, rebind(driver, selectSQL), args...)
	if err != nil {
		return nil, fmt.Errorf("query record page: %w", err)
	}
	defer rows.Close()
	return scanRecords(rows)
}

// MarkParsed stores the extracted components and flips the record to parsed.
func (dao *nameDAO) MarkParsed(ctx context.Context, id int64, rec *model.NameRecord) error {
	update := map[string]interface{}{
		"academic_title":  rec.AcademicTitle,
		"leading_initial": rec.LeadingInitial,
		"first_name":      rec.FirstName,
		"middle_name":     rec.MiddleName,
		"nickname":        rec.Nickname,
		"last_name":       rec.LastName,
		"suffix":          rec.Suffix,
		"sort_key":        rec.SortKey,
		"parse_state":     model.ParseStateParsed,
		"parse_error":     "",
		"update_time":     time.Now().Unix(),
	}
	return dao.updateByID(ctx, id, update)
}

// MarkFailed records the parse failure cause on the record.
func (dao *nameDAO) MarkFailed(ctx context.Context, id int64, cause string) error {
	update := map[string]interface{}{
		"parse_state": model.ParseStateFailed,
		"parse_error": cause,
		"update_time": time.Now().Unix(),
	}
	return dao.updateByID(ctx, id, update)
}

func (dao *nameDAO) updateByID(ctx context.Context, id int64, update map[string]interface{}) error {
	handle := dao.dbGetter()
	if handle == nil {
		return fmt.Errorf("name dao not initialised")
	}
	driver := dao.driverGetter()

	updateSQL, args, err := builder.BuildUpdate(nameRecordTableName,
		map[string]interface{}{"id": id}, update)
	if err != nil {
		return err
	}
	if _, err := handle.ExecContext(ctx, rebind(driver, updateSQL), args...); err != nil {
		return fmt.Errorf("update record %d: %w", id, err)
	}
	return nil
}

// CountByState returns the number of records per parse state.
func (dao *nameDAO) CountByState(ctx context.Context) (map[string]int64, error) {
	handle := dao.dbGetter()
	if handle == nil {
		return nil, fmt.Errorf("name dao not initialised")
	}

	const query = `SELECT parse_state, COUNT(*) FROM name_record_tab GROUP BY parse_state`
	rows, err := handle.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("count records: %w", err)
	}
	defer rows.Close()

	result := make(map[string]int64)
	for rows.Next() {
		var state string
		var count int64
		if err := rows.Scan(&state, &count); err != nil {
			return nil, err
		}
		result[state] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func scanRecords(rows *sql.Rows) ([]*model.NameRecord, error) {
	var result []*model.NameRecord
	for rows.Next() {
		rec := &model.NameRecord{}
		if err := rows.Scan(
			&rec.ID, &rec.RawName, &rec.AcademicTitle, &rec.LeadingInitial,
			&rec.FirstName, &rec.MiddleName, &rec.Nickname, &rec.LastName,
			&rec.Suffix, &rec.SortKey, &rec.ParseState, &rec.ParseError,
			&rec.CreateTime, &rec.UpdateTime,
		); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}
