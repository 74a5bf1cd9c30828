package sqlite

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docsearch"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ docsearch.EntryService = (*EntryService)(nil)

// EntryService implements docsearch.EntryService using SQLite.
type EntryService struct {
	db *DB
}

// NewEntryService creates a new EntryService.
func NewEntryService(db *DB) *EntryService {
	return &EntryService{db: db}
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content string) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(content))
	return hex.EncodeToString(b)
}

// CreateEntry persists a new entry record. The record's ID, content
// hash, and fetch time are assigned here. Returns ECONFLICT if an
// entry with the same URL already exists.
func (s *EntryService) CreateEntry(ctx context.Context, rec *docsearch.EntryRecord) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	rec.ID = uuid.New().String()
	rec.FetchedAt = time.Now().UTC()
	rec.ContentHash = hashContent(rec.Entry.Content)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO entries (id, category, url, title, content, keywords, content_hash, position, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.Entry.Category, rec.Entry.URL, rec.Entry.Title, rec.Entry.Content,
		joinKeywords(rec.Entry.Keywords), rec.ContentHash, rec.Position,
		rec.FetchedAt.Format(time.RFC3339))

	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return docsearch.Errorf(docsearch.ECONFLICT, "entry with URL %q already exists", rec.Entry.URL)
	}
	return err
}

// FindEntries retrieves entry records matching the filter, ordered by
// category then position.
func (s *EntryService) FindEntries(ctx context.Context, filter docsearch.EntryFilter) ([]*docsearch.EntryRecord, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, category, url, title, content, keywords, content_hash, position, fetched_at FROM entries WHERE 1=1")

	if filter.Category != nil {
		query.WriteString(" AND category = ?")
		args = append(args, *filter.Category)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}

	query.WriteString(" ORDER BY category ASC, position ASC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []*docsearch.EntryRecord
	for rows.Next() {
		var rec docsearch.EntryRecord
		var keywords, fetchedAt string

		if err := rows.Scan(&rec.ID, &rec.Entry.Category, &rec.Entry.URL, &rec.Entry.Title,
			&rec.Entry.Content, &keywords, &rec.ContentHash, &rec.Position, &fetchedAt); err != nil {
			return nil, err
		}

		rec.Entry.Keywords = splitKeywords(keywords)

		var parseErr error
		rec.FetchedAt, parseErr = time.Parse(time.RFC3339, fetchedAt)
		if parseErr != nil {
			return nil, fmt.Errorf("failed to parse fetched_at: %w", parseErr)
		}

		recs = append(recs, &rec)
	}

	return recs, rows.Err()
}

// DeleteEntriesByCategory removes all entries in a category and
// returns how many were removed.
func (s *EntryService) DeleteEntriesByCategory(ctx context.Context, category string) (int, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM entries WHERE category = ?", category)
	if err != nil {
		return 0, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(rows), nil
}

// Keywords are stored newline-joined; keywords themselves never
// contain newlines because they come from meta tags.
func joinKeywords(keywords []string) string {
	return strings.Join(keywords, "\n")
}

func splitKeywords(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
