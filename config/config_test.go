package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults without file", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.NoError(t, err)
		require.Equal(t, Default(), cfg)
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "colonists.yaml")
		data := "server:\n  addr: \":9000\"\nstore:\n  driver: sqlite\n  dsn: games.db\ngame:\n  points_to_win: 12\n  seed: 7\n"
		require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, ":9000", cfg.Server.Addr)
		require.Equal(t, "sqlite", cfg.Store.Driver)
		require.Equal(t, "games.db", cfg.Store.DSN)
		require.Equal(t, 12, cfg.Game.PointsToWin)
		require.Equal(t, uint64(7), cfg.Game.Seed)
		require.Equal(t, Default().Log, cfg.Log)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "colonists.yaml")
		require.NoError(t, os.WriteFile(path, []byte("log:\n  level: info\n"), 0o644))
		t.Setenv("COLONISTS_LOG_LEVEL", "debug")
		t.Setenv("COLONISTS_LOG_CONSOLE", "true")
		t.Setenv("COLONISTS_GAME_SEED", "42")

		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, "debug", cfg.Log.Level)
		require.True(t, cfg.Log.Console)
		require.Equal(t, uint64(42), cfg.Game.Seed)
	})

	t.Run("broken yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "colonists.yaml")
		require.NoError(t, os.WriteFile(path, []byte("server: [\n"), 0o644))
		_, err := Load(path)
		require.Error(t, err)
	})

	t.Run("bad env value", func(t *testing.T) {
		t.Setenv("COLONISTS_GAME_POINTS_TO_WIN", "many")
		_, err := Load("")
		require.ErrorContains(t, err, "parse env")
	})
}
