package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/mattn/go-sqlite3"
	"github.com/noobdev/site-api/internal/models"
	"github.com/rs/zerolog"
)

// sqliteStore is the transactional alternative to the file store, for
// deployments where lost updates on the JSON document are not acceptable.
type sqliteStore struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewSQLiteStore opens (or creates) the sqlite database and runs pending
// migrations before returning the store.
func NewSQLiteStore(path, migrationsPath string, log zerolog.Logger) (Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	s := &sqliteStore{
		db:  db,
		log: log.With().Str("component", "sqlite_store").Logger(),
	}
	if err := s.runMigrations(migrationsPath); err != nil {
		return nil, err
	}

	s.log.Info().Str("path", path).Msg("SQLite interaction store ready")
	return s, nil
}

// runMigrations executes all pending migrations using golang-migrate
func (s *sqliteStore) runMigrations(migrationsPath string) error {
	driver, err := migratesqlite.WithInstance(s.db, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", migrationsPath),
		"sqlite3",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// Get returns the interactions for a slug with zero/empty defaults
func (s *sqliteStore) Get(ctx context.Context, slug string) (*models.Interactions, error) {
	var likes int
	err := s.db.QueryRowContext(ctx, "SELECT count FROM likes WHERE slug = ?", slug).Scan(&likes)
	if err != nil && err != sql.ErrNoRows {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, user, date, body FROM comments WHERE slug = ? ORDER BY rowid DESC", slug)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []models.Comment{}
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.User, &c.Date, &c.Text); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &models.Interactions{Likes: likes, Comments: comments}, nil
}

// Like adjusts the like count for a slug inside a transaction
func (s *sqliteStore) Like(ctx context.Context, slug string, delta int) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var count int
	err = tx.QueryRowContext(ctx, "SELECT count FROM likes WHERE slug = ?", slug).Scan(&count)
	if err != nil && err != sql.ErrNoRows {
		return 0, err
	}

	count += delta
	if count < 0 {
		count = 0
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO likes (slug, count) VALUES (?, ?)
		ON CONFLICT(slug) DO UPDATE SET count = excluded.count
	`, slug, count)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return count, nil
}

// AddComment inserts a comment; newest-first ordering comes from the
// descending read in Get.
func (s *sqliteStore) AddComment(ctx context.Context, slug string, comment models.Comment) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO comments (id, slug, user, date, body) VALUES (?, ?, ?, ?, ?)",
		comment.ID, slug, comment.User, comment.Date, comment.Text,
	)
	return err
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}
