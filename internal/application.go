package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/gomoku-backend/internal/config"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/internal/repository"
	"github.com/rocketscienceinc/gomoku-backend/internal/repository/storage"
	"github.com/rocketscienceinc/gomoku-backend/internal/repository/storage/sqlite"
	"github.com/rocketscienceinc/gomoku-backend/internal/service"
	"github.com/rocketscienceinc/gomoku-backend/internal/usecase"
	"github.com/rocketscienceinc/gomoku-backend/transport/console"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return Run(ctx, logger, conf, os.Stdin, os.Stdout)
}

// Run wires the game to the configured save store and plays it on in/out until the input ends.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	mode, err := entity.ParseAIMode(conf.AIMode)
	if err != nil {
		return fmt.Errorf("invalid ai mode: %w", err)
	}

	saves, closeSaves, err := openSaves(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err = closeSaves(); err != nil {
			log.Error("could not close save storage", "error", err)
		}
	}()

	session, err := usecase.NewSession(logger, service.NewBotService(), saves, conf.BoardSize, mode)
	if err != nil {
		return fmt.Errorf("could not start game: %w", err)
	}

	log.Info("Starting game", "board_size", conf.BoardSize, "ai_mode", mode, "storage", conf.Storage.Driver)

	if err = console.New(logger, session, in, out).Start(ctx); err != nil {
		return fmt.Errorf("console error: %w", err)
	}

	log.Info("Game closed")

	return nil
}

func openSaves(ctx context.Context, conf *config.Config) (repository.SaveRepository, func() error, error) {
	switch conf.Storage.Driver {
	case config.DriverRedis:
		redisAddrString := conf.Redis.GetRedisAddr()
		if redisAddrString == "" {
			return nil, nil, ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return repository.NewRedisSaveRepository(redisStorage.Connection), redisStorage.Close, nil

	case config.DriverSQLite:
		sqliteStorage, err := sqlite.New(conf.Storage.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("could not open sqlite storage: %w", err)
		}

		if err = sqliteStorage.Init(ctx); err != nil {
			_ = sqliteStorage.Close()
			return nil, nil, fmt.Errorf("could not init sqlite storage: %w", err)
		}

		return repository.NewSQLiteSaveRepository(sqliteStorage.Connection), sqliteStorage.Close, nil

	case config.DriverFile:
		saves, err := repository.NewFileSaveRepository(conf.Storage.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("could not open save directory: %w", err)
		}

		return saves, func() error { return nil }, nil

	default:
		return nil, nil, fmt.Errorf("%w: %q", config.ErrInvalidDriver, conf.Storage.Driver)
	}
}
