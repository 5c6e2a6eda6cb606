// Package store provides PostgreSQL persistence for scrape results.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/linkedin-scraper/internal/profile"
)

// Store wraps a PostgreSQL connection pool
type Store struct {
	pool *pgxpool.Pool
}

// ScrapeRecord is one stored scrape, as listed by Recent.
type ScrapeRecord struct {
	ID        uuid.UUID
	URL       string
	FullName  *string
	ScrapedAt time.Time
}

// Connect establishes a connection pool and makes sure the schema exists
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &Store{pool: pool}
	if err := s.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the connection pool
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *Store) ensureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx,
		`CREATE TABLE IF NOT EXISTS profiles (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			url TEXT NOT NULL,
			full_name TEXT,
			data JSONB NOT NULL,
			scraped_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("failed to create profiles table: %w", err)
	}
	return nil
}

// SaveResult stores a scrape result and returns its ID
func (s *Store) SaveResult(ctx context.Context, result *profile.Result) (uuid.UUID, error) {
	data, err := json.Marshal(result)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	var id uuid.UUID
	err = s.pool.QueryRow(ctx,
		`INSERT INTO profiles (url, full_name, data)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		result.UserProfile.URL, result.UserProfile.FullName, data,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save result: %w", err)
	}
	return id, nil
}

// Recent lists the most recent scrapes, newest first
func (s *Store) Recent(ctx context.Context, limit int) ([]ScrapeRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.pool.Query(ctx,
		`SELECT id, url, full_name, scraped_at
		 FROM profiles
		 ORDER BY scraped_at DESC
		 LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list scrapes: %w", err)
	}
	defer rows.Close()

	records := make([]ScrapeRecord, 0, limit)
	for rows.Next() {
		var rec ScrapeRecord
		if err := rows.Scan(&rec.ID, &rec.URL, &rec.FullName, &rec.ScrapedAt); err != nil {
			return nil, fmt.Errorf("failed to scan scrape record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read scrape records: %w", err)
	}
	return records, nil
}
