// Package sqlite provides a SQLite-backed implementation of the profile store port.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3" // Import the driver anonymously

	"github.com/ewilliams-labs/segue/internal/core/domain"
	"github.com/ewilliams-labs/segue/internal/core/ports"
)

// Adapter implements the profile store port for SQLite
type Adapter struct {
	db *sql.DB
}

// compile-time interface assertion
var _ ports.ProfileStore = (*Adapter)(nil)

// NewAdapter creates a connection and runs the schema migration
func NewAdapter(storagePath string) (*Adapter, error) {
	db, err := sql.Open("sqlite3", storagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}

	// Verify connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping sqlite db: %w", err)
	}

	adapter := &Adapter{db: db}

	if err := adapter.migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return adapter, nil
}

// Close ensures the DB connection is closed gracefully
func (a *Adapter) Close() error {
	return a.db.Close()
}

func (a *Adapter) Get(ctx context.Context, userID string) (*domain.ListeningProfile, error) {
	row := a.db.QueryRowContext(ctx, `
		SELECT user_id, display_name, top_genres, favorite_artists, updated_at
		FROM listening_profiles
		WHERE user_id = ?
	`, userID)

	var profile domain.ListeningProfile
	var displayName sql.NullString
	var genresJSON, artistsJSON string
	if err := row.Scan(&profile.UserID, &displayName, &genresJSON, &artistsJSON, &profile.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, ports.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if displayName.Valid {
		profile.DisplayName = displayName.String
	}
	if err := json.Unmarshal([]byte(genresJSON), &profile.TopGenres); err != nil {
		return nil, fmt.Errorf("failed to decode top genres: %w", err)
	}
	if err := json.Unmarshal([]byte(artistsJSON), &profile.FavoriteArtists); err != nil {
		return nil, fmt.Errorf("failed to decode favorite artists: %w", err)
	}

	return &profile, nil
}

func (a *Adapter) Put(ctx context.Context, profile domain.ListeningProfile) error {
	genresJSON, err := json.Marshal(profile.TopGenres)
	if err != nil {
		return fmt.Errorf("failed to encode top genres: %w", err)
	}
	artistsJSON, err := json.Marshal(profile.FavoriteArtists)
	if err != nil {
		return fmt.Errorf("failed to encode favorite artists: %w", err)
	}

	// Upsert: create if new, replace taste data if the user already exists.
	query := `
		INSERT INTO listening_profiles (user_id, display_name, top_genres, favorite_artists, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			display_name=excluded.display_name,
			top_genres=excluded.top_genres,
			favorite_artists=excluded.favorite_artists,
			updated_at=excluded.updated_at;
	`
	if _, err := a.db.ExecContext(
		ctx,
		query,
		profile.UserID,
		profile.DisplayName,
		string(genresJSON),
		string(artistsJSON),
		profile.UpdatedAt,
	); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	return nil
}

func (a *Adapter) migrate() error {
	query := `
	CREATE TABLE IF NOT EXISTS listening_profiles (
		user_id TEXT PRIMARY KEY,
		display_name TEXT,
		top_genres TEXT NOT NULL DEFAULT '[]',
		favorite_artists TEXT NOT NULL DEFAULT '[]',
		updated_at DATETIME NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`
	if _, err := a.db.Exec(query); err != nil {
		return err
	}

	return nil
}
