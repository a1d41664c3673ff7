// Package store persists computed holiday collections in SQLite so a restart
// does not recompute every warmed jurisdiction.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/aristath/holidays/internal/modules/holidays"
)

// DefaultTTL keeps snapshots for 30 days. Rules rarely change within a
// catalog version, and the version is part of every key.
const DefaultTTL = 30 * 24 * time.Hour

// Store is a msgpack blob cache of holiday snapshots with expiration
// timestamps.
type Store struct {
	db  *sql.DB
	log zerolog.Logger
}

// New creates a snapshot store on an already migrated database.
func New(db *sql.DB, log zerolog.Logger) *Store {
	return &Store{
		db:  db,
		log: log.With().Str("component", "snapshot_store").Logger(),
	}
}

// Put saves a snapshot with expiration = now + ttl, replacing any previous
// entry under the same key.
func (s *Store) Put(key string, snapshot holidays.Snapshot, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	data, err := msgpack.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot %s: %w", key, err)
	}

	_, err = s.db.Exec(
		`INSERT OR REPLACE INTO holiday_snapshots (cache_key, jurisdiction, year, locale, data, expires_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		key, snapshot.Jurisdiction, snapshot.Year, snapshot.Locale, data, time.Now().Add(ttl).Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to store snapshot %s: %w", key, err)
	}
	return nil
}

// GetIfFresh returns the snapshot only if it has not expired.
// Returns nil, nil if the key doesn't exist or the entry is expired.
func (s *Store) GetIfFresh(key string) (*holidays.Snapshot, error) {
	return s.get(
		"SELECT data FROM holiday_snapshots WHERE cache_key = ? AND expires_at > ?",
		key, time.Now().Unix(),
	)
}

// Get returns the snapshot regardless of expiration.
// Returns nil, nil if the key doesn't exist.
func (s *Store) Get(key string) (*holidays.Snapshot, error) {
	return s.get("SELECT data FROM holiday_snapshots WHERE cache_key = ?", key)
}

func (s *Store) get(query string, key string, args ...interface{}) (*holidays.Snapshot, error) {
	var data []byte
	err := s.db.QueryRow(query, append([]interface{}{key}, args...)...).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot %s: %w", key, err)
	}

	var snapshot holidays.Snapshot
	if err := msgpack.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot %s: %w", key, err)
	}
	return &snapshot, nil
}

// Delete removes a specific entry.
func (s *Store) Delete(key string) error {
	if _, err := s.db.Exec("DELETE FROM holiday_snapshots WHERE cache_key = ?", key); err != nil {
		return fmt.Errorf("failed to delete snapshot %s: %w", key, err)
	}
	return nil
}

// DeleteJurisdiction removes every snapshot of a jurisdiction.
func (s *Store) DeleteJurisdiction(jurisdiction string) (int64, error) {
	result, err := s.db.Exec("DELETE FROM holiday_snapshots WHERE jurisdiction = ?", jurisdiction)
	if err != nil {
		return 0, fmt.Errorf("failed to delete snapshots of %s: %w", jurisdiction, err)
	}
	return result.RowsAffected()
}

// PurgeExpired removes all entries whose expires_at has passed and returns
// the number of rows deleted.
func (s *Store) PurgeExpired() (int64, error) {
	result, err := s.db.Exec("DELETE FROM holiday_snapshots WHERE expires_at <= ?", time.Now().Unix())
	if err != nil {
		return 0, fmt.Errorf("failed to purge expired snapshots: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	if deleted > 0 {
		s.log.Debug().Int64("deleted", deleted).Msg("Purged expired snapshots")
	}
	return deleted, nil
}

// Count returns the number of stored snapshots, expired or not.
func (s *Store) Count() (int, error) {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM holiday_snapshots").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count snapshots: %w", err)
	}
	return count, nil
}

// Publication is one object uploaded by a publish run.
type Publication struct {
	RunID       string
	ObjectKey   string
	SizeBytes   int64
	PublishedAt time.Time
}

// RecordPublication appends an uploaded object to the publish log.
func (s *Store) RecordPublication(p Publication) error {
	if p.PublishedAt.IsZero() {
		p.PublishedAt = time.Now()
	}
	_, err := s.db.Exec(
		"INSERT INTO publish_log (run_id, object_key, size_bytes, published_at) VALUES (?, ?, ?, ?)",
		p.RunID, p.ObjectKey, p.SizeBytes, p.PublishedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to record publication %s: %w", p.ObjectKey, err)
	}
	return nil
}

// Publications lists the objects uploaded by a run, in upload order.
func (s *Store) Publications(runID string) ([]Publication, error) {
	rows, err := s.db.Query(
		"SELECT run_id, object_key, size_bytes, published_at FROM publish_log WHERE run_id = ? ORDER BY id",
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query publications of %s: %w", runID, err)
	}
	defer rows.Close()

	var result []Publication
	for rows.Next() {
		var p Publication
		var publishedAt int64
		if err := rows.Scan(&p.RunID, &p.ObjectKey, &p.SizeBytes, &publishedAt); err != nil {
			return nil, fmt.Errorf("failed to scan publication: %w", err)
		}
		p.PublishedAt = time.Unix(publishedAt, 0)
		result = append(result, p)
	}
	return result, rows.Err()
}
