package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
)

var ErrInvalidSaveName = errors.New("invalid save name")

// SaveRepository stores serialized games under a caller-chosen name.
// Saving under an existing name replaces the previous game.
type SaveRepository interface {
	Save(ctx context.Context, name string, data []byte) error
	Load(ctx context.Context, name string) ([]byte, error)
	Delete(ctx context.Context, name string) error
}

type redisSave struct {
	client *redis.Client
}

func NewRedisSaveRepository(client *redis.Client) SaveRepository {
	return &redisSave{
		client: client,
	}
}

func (that *redisSave) Save(ctx context.Context, name string, data []byte) error {
	if err := validateName(name); err != nil {
		return err
	}

	if err := that.client.Set(ctx, saveKey(name), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to set save: %w", err)
	}

	return nil
}

func (that *redisSave) Load(ctx context.Context, name string) ([]byte, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	response, err := that.client.Get(ctx, saveKey(name)).Bytes()

	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: %s", apperror.ErrSaveNotFound, name)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get save: %w", err)
	}

	return response, nil
}

func (that *redisSave) Delete(ctx context.Context, name string) error {
	if err := validateName(name); err != nil {
		return err
	}

	deleted, err := that.client.Del(ctx, saveKey(name)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete save: %w", err)
	}

	if deleted == 0 {
		return fmt.Errorf("%w: %s", apperror.ErrSaveNotFound, name)
	}

	return nil
}

func saveKey(name string) string {
	return "save:" + name
}

// validateName - a save name is a single path element without separators.
func validateName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidSaveName, name)
	}

	return nil
}
