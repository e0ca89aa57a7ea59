// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package store persists visitor records.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/danielhkuo/store-analytics/db"
	"github.com/danielhkuo/store-analytics/errs"
	"github.com/danielhkuo/store-analytics/models"
)

// MaxStoreIDLength matches the store_id column width, in characters.
const MaxStoreIDLength = 100

// VisitorStore is the data-access contract for the visitor_record table.
// Records are append-only: there is no update or delete.
type VisitorStore interface {
	Create(ctx context.Context, storeID string, date models.Date, uniqueVisitors int64) (models.VisitorRecord, error)
	ListAll(ctx context.Context) ([]models.VisitorRecord, error)
	ExistsForStore(ctx context.Context, storeID string) (bool, error)
	// SumVisitors totals unique_visitors for a store. An empty date means no
	// date filter; otherwise date is converted with ParseDate.
	SumVisitors(ctx context.Context, storeID, date string) (int64, error)
}

// SQLStore implements VisitorStore on database/sql.
type SQLStore struct {
	db      *sql.DB
	dialect db.Dialect
}

func NewSQLStore(conn *sql.DB, dialect db.Dialect) *SQLStore {
	return &SQLStore{db: conn, dialect: dialect}
}

func (s *SQLStore) q(query string) string {
	return db.Rebind(s.dialect, query)
}

// Create inserts a record and returns it with its assigned id.
func (s *SQLStore) Create(ctx context.Context, storeID string, date models.Date, uniqueVisitors int64) (models.VisitorRecord, error) {
	if utf8.RuneCountInString(storeID) > MaxStoreIDLength {
		return models.VisitorRecord{}, errs.StorageMessage("create",
			fmt.Sprintf("value too long for store_id (max %d characters)", MaxStoreIDLength))
	}
	if uniqueVisitors < math.MinInt32 || uniqueVisitors > math.MaxInt32 {
		return models.VisitorRecord{}, errs.StorageMessage("create", "integer out of range")
	}

	record := models.VisitorRecord{
		StoreID:        storeID,
		Date:           date,
		UniqueVisitors: uniqueVisitors,
	}

	err := s.db.QueryRowContext(ctx, s.q(`
		INSERT INTO visitor_record (store_id, date, unique_visitors)
		VALUES (?, ?, ?)
		RETURNING id
	`), storeID, date, uniqueVisitors).Scan(&record.ID)
	if err != nil {
		return models.VisitorRecord{}, errs.Storage("create", err)
	}

	return record, nil
}

// ListAll returns every record, newest date first.
func (s *SQLStore) ListAll(ctx context.Context) ([]models.VisitorRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, store_id, date, unique_visitors
		FROM visitor_record
		ORDER BY date DESC, id DESC
	`)
	if err != nil {
		return nil, errs.Storage("list", err)
	}
	defer rows.Close()

	records := []models.VisitorRecord{}
	for rows.Next() {
		var rec models.VisitorRecord
		if err := rows.Scan(&rec.ID, &rec.StoreID, &rec.Date, &rec.UniqueVisitors); err != nil {
			return nil, errs.Storage("list", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Storage("list", err)
	}

	return records, nil
}

func (s *SQLStore) ExistsForStore(ctx context.Context, storeID string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, s.q(`
		SELECT EXISTS (SELECT 1 FROM visitor_record WHERE store_id = ?)
	`), storeID).Scan(&exists)
	if err != nil {
		return false, errs.Storage("exists", err)
	}
	return exists, nil
}

// SumVisitors returns 0, not an error, when no rows match.
func (s *SQLStore) SumVisitors(ctx context.Context, storeID, date string) (int64, error) {
	query := `SELECT COALESCE(SUM(unique_visitors), 0) FROM visitor_record WHERE store_id = ?`
	args := []any{storeID}

	if date != "" {
		d, err := ParseDate(date)
		if err != nil {
			return 0, err
		}
		query += ` AND date = ?`
		args = append(args, d)
	}

	var total int64
	if err := s.db.QueryRowContext(ctx, s.q(query), args...).Scan(&total); err != nil {
		return 0, errs.Storage("sum", err)
	}
	return total, nil
}
