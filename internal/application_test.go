package application

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rocketscienceinc/gomoku-backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(driver, path string) *config.Config {
	return &config.Config{
		LogLevel:  "debug",
		BoardSize: 15,
		AIMode:    "off",
		Storage:   config.Storage{Driver: driver, Path: path},
	}
}

func TestRun(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	t.Run("File storage", func(t *testing.T) {
		// Given: a game saved to a directory
		dir := filepath.Join(t.TempDir(), "saves")
		out := &bytes.Buffer{}

		// When: the application runs a short script
		err := Run(context.Background(), logger, testConfig(config.DriverFile, dir), strings.NewReader("H8\nsave first\nquit\n"), out)

		// Then: the save lands in the directory
		require.NoError(t, err)
		assert.Contains(t, out.String(), `Game saved as "first".`)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("SQLite storage survives a restart", func(t *testing.T) {
		conf := testConfig(config.DriverSQLite, filepath.Join(t.TempDir(), "saves.db"))

		err := Run(context.Background(), logger, conf, strings.NewReader("H8\nI9\nsave slot\n"), io.Discard)
		require.NoError(t, err)

		out := &bytes.Buffer{}
		err = Run(context.Background(), logger, conf, strings.NewReader("load slot\n"), out)

		require.NoError(t, err)
		assert.Contains(t, out.String(), "Last move: I9")
		assert.NotContains(t, out.String(), "Invalid command")
	})

	t.Run("Bot plays black from the config", func(t *testing.T) {
		conf := testConfig(config.DriverFile, t.TempDir())
		conf.AIMode = "black"
		out := &bytes.Buffer{}

		err := Run(context.Background(), logger, conf, strings.NewReader(""), out)

		require.NoError(t, err)
		assert.Contains(t, out.String(), "Last move: H8")
	})

	t.Run("Invalid settings", func(t *testing.T) {
		tests := []struct {
			name string
			conf *config.Config
			err  error
		}{
			{name: "driver", conf: testConfig("mongo", t.TempDir()), err: config.ErrInvalidDriver},
			{name: "redis address", conf: testConfig(config.DriverRedis, ""), err: ErrAddrNotFound},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				err := Run(context.Background(), logger, tt.conf, strings.NewReader(""), io.Discard)

				require.ErrorIs(t, err, tt.err)
			})
		}
	})

	t.Run("Invalid ai mode", func(t *testing.T) {
		conf := testConfig(config.DriverFile, t.TempDir())
		conf.AIMode = "both"

		err := Run(context.Background(), logger, conf, strings.NewReader(""), io.Discard)

		require.Error(t, err)
	})
}
