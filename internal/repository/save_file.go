package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
)

type fileSave struct {
	dir string
}

// NewFileSaveRepository keeps every save as <dir>/<name>.json.
func NewFileSaveRepository(dir string) (SaveRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("can't create save directory: %w", err)
	}

	return &fileSave{dir: dir}, nil
}

func (that *fileSave) Save(ctx context.Context, name string, data []byte) error {
	if err := validateName(name); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	// saves are replaced atomically via rename
	tmp, err := os.CreateTemp(that.dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("can't create save file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("can't write save file: %w", err)
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("can't close save file: %w", err)
	}

	if err = os.Rename(tmp.Name(), that.path(name)); err != nil {
		return fmt.Errorf("can't store save file: %w", err)
	}

	return nil
}

func (that *fileSave) Load(ctx context.Context, name string) ([]byte, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(that.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", apperror.ErrSaveNotFound, name)
	}

	if err != nil {
		return nil, fmt.Errorf("can't read save file: %w", err)
	}

	return data, nil
}

func (that *fileSave) Delete(ctx context.Context, name string) error {
	if err := validateName(name); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	err := os.Remove(that.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", apperror.ErrSaveNotFound, name)
	}

	if err != nil {
		return fmt.Errorf("can't delete save file: %w", err)
	}

	return nil
}

func (that *fileSave) path(name string) string {
	return filepath.Join(that.dir, name+".json")
}
