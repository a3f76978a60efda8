package character

import (
	"context"
	"database/sql"
	stderrors "errors"
	"log/slog"
	"path/filepath"
	"strings"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/Treylong00/DND-Companion/internal/entities"
	"github.com/Treylong00/DND-Companion/internal/errors"
	"github.com/Treylong00/DND-Companion/internal/pkg/clock"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS characters (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	document   TEXT NOT NULL,
	created_at INTEGER NOT NULL,
	updated_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS characters_created_at ON characters (created_at, id);
`

// SQLiteConfig configures the SQLite character repository
type SQLiteConfig struct {
	Path  string
	Clock clock.Clock
}

// Validate validates the SQLiteConfig.
func (cfg *SQLiteConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Path", strings.TrimSpace(cfg.Path), vb)
	return vb.Build()
}

// SQLiteRepository keeps one JSON document per row
type SQLiteRepository struct {
	db    *sql.DB
	clock clock.Clock
}

var _ Repository = (*SQLiteRepository)(nil)

// NewSQLite opens the database at cfg.Path and creates the schema
func NewSQLite(cfg *SQLiteConfig) (*SQLiteRepository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	dsn := "file:" + filepath.Clean(cfg.Path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open sqlite db")
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to ping sqlite db")
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to create schema")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	return &SQLiteRepository{db: db, clock: c}, nil
}

// Close closes the database handle
func (r *SQLiteRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

func (r *SQLiteRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateRecord(input.Character); err != nil {
		return nil, err
	}
	data, err := Encode(input.Character)
	if err != nil {
		return nil, err
	}
	now := r.clock.Now().UTC().UnixNano()
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO characters (id, name, document, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		input.Character.GetID(), input.Character.Name, string(data), now, now)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, errors.AlreadyExistsf("character with ID %s already exists", input.Character.GetID())
		}
		return nil, errors.Wrapf(err, "failed to create character")
	}
	return &CreateOutput{Character: input.Character}, nil
}

func (r *SQLiteRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}
	var document string
	err := r.db.QueryRowContext(ctx, `SELECT document FROM characters WHERE id = ?`, input.ID).Scan(&document)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundf("character with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get character")
	}
	c, upgraded, err := Decode([]byte(document))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode character %s", input.ID)
	}
	if upgraded {
		slog.DebugContext(ctx, "upgraded legacy character record", "character_id", input.ID)
	}
	return &GetOutput{Character: c}, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateRecord(input.Character); err != nil {
		return nil, err
	}
	data, err := Encode(input.Character)
	if err != nil {
		return nil, err
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE characters SET name = ?, document = ?, updated_at = ? WHERE id = ?`,
		input.Character.Name, string(data), r.clock.Now().UTC().UnixNano(), input.Character.GetID())
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update character")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, errors.NotFoundf("character with ID %s not found", input.Character.GetID())
	}
	return &UpdateOutput{Character: input.Character}, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM characters WHERE id = ?`, input.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete character")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, errors.NotFoundf("character with ID %s not found", input.ID)
	}
	return &DeleteOutput{}, nil
}

func (r *SQLiteRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, document FROM characters ORDER BY created_at, id`)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list characters")
	}
	defer func() { _ = rows.Close() }()

	characters := make([]*entities.Character, 0)
	for rows.Next() {
		var id, document string
		if err := rows.Scan(&id, &document); err != nil {
			return nil, errors.Wrapf(err, "failed to scan character row")
		}
		c, _, err := Decode([]byte(document))
		if err != nil {
			slog.WarnContext(ctx, "skipping unreadable character row",
				"character_id", id,
				"error", err.Error())
			continue
		}
		characters = append(characters, c)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to iterate character rows")
	}
	return &ListOutput{Characters: characters}, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if stderrors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}
