package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
)

type sqliteSave struct {
	conn *sql.DB
}

// NewSQLiteSaveRepository expects the saves table created by sqlite.Storage.Init.
func NewSQLiteSaveRepository(conn *sql.DB) SaveRepository {
	return &sqliteSave{
		conn: conn,
	}
}

func (that *sqliteSave) Save(ctx context.Context, name string, data []byte) error {
	if err := validateName(name); err != nil {
		return err
	}

	query := `INSERT INTO saves (name, data) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP`

	if _, err := that.conn.ExecContext(ctx, query, name, data); err != nil {
		return fmt.Errorf("can't save game: %w", err)
	}

	return nil
}

func (that *sqliteSave) Load(ctx context.Context, name string) ([]byte, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	query := `SELECT data FROM saves WHERE name = ?`

	var data []byte

	err := that.conn.QueryRowContext(ctx, query, name).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", apperror.ErrSaveNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("can't load game: %w", err)
	}

	return data, nil
}

func (that *sqliteSave) Delete(ctx context.Context, name string) error {
	if err := validateName(name); err != nil {
		return err
	}

	query := `DELETE FROM saves WHERE name = ?`

	result, err := that.conn.ExecContext(ctx, query, name)
	if err != nil {
		return fmt.Errorf("can't delete game: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("can't delete game: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("%w: %s", apperror.ErrSaveNotFound, name)
	}

	return nil
}
