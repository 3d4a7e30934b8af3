package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"colonists/game"

	"github.com/stretchr/testify/require"
)

func sampleWorld() game.World {
	w := game.NewWorld(game.CreateMap(game.NewRandom(9)))
	p := game.NewPlayer("A", 0xff0000)
	p.Houses = []game.House{{Position: game.MatrixCoordinate{X: 6, Y: 3}}}
	p.Resources = game.Resources{Wood: 2, Stone: 1}
	p.DevCards = []game.DevelopmentCard{{Type: game.Knight, Played: true}}
	w.Players = []game.Player{p, game.NewPlayer("B", 0x00ff00)}
	w.Thief = &game.Thief{HexCoordinate: game.HexCoordinate{X: 3, Y: 3}}
	return w
}

func repositories(t *testing.T) map[string]Repository {
	t.Helper()
	db, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	files, err := NewFileStore(filepath.Join(t.TempDir(), "snapshots"))
	require.NoError(t, err)

	repos := map[string]Repository{
		"memory": NewMemory(),
		"sqlite": db,
		"file":   files,
	}
	t.Cleanup(func() {
		for _, r := range repos {
			r.Close()
		}
	})
	return repos
}

func TestRepository(t *testing.T) {
	ctx := context.Background()

	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			t.Run("unknown game", func(t *testing.T) {
				r := repo.GetWorld(ctx, "missing")
				require.ErrorIs(t, r.Err(), ErrNotFound)
				require.ErrorIs(t, repo.UpdateGame(ctx, "missing", sampleWorld()), ErrNotFound)
			})

			t.Run("create then load", func(t *testing.T) {
				want := sampleWorld()
				require.NoError(t, repo.CreateGame(ctx, "g1", want))

				got, err := repo.GetWorld(ctx, "g1").Unwrap()

				require.NoError(t, err)
				require.Equal(t, want.Hash(), got.Hash())
				require.Equal(t, want.Thief, got.Thief)
			})

			t.Run("create twice", func(t *testing.T) {
				require.NoError(t, repo.CreateGame(ctx, "g2", sampleWorld()))
				require.ErrorIs(t, repo.CreateGame(ctx, "g2", sampleWorld()), ErrExists)
			})

			t.Run("update replaces the world", func(t *testing.T) {
				require.NoError(t, repo.CreateGame(ctx, "g3", sampleWorld()))
				next := sampleWorld()
				next.GameState = game.Started
				next.CurrentPlayer = 1

				require.NoError(t, repo.UpdateGame(ctx, "g3", next))

				got := repo.GetWorld(ctx, "g3").Value()
				require.Equal(t, game.Started, got.GameState)
				require.Equal(t, 1, got.CurrentPlayer)
			})

			t.Run("stored worlds do not alias", func(t *testing.T) {
				w := sampleWorld()
				require.NoError(t, repo.CreateGame(ctx, "g4", w))
				w.Players[0].Resources.Wood = 99

				got := repo.GetWorld(ctx, "g4").Value()
				got.Players[1].Name = "changed"

				again := repo.GetWorld(ctx, "g4").Value()
				require.Equal(t, 2, again.Players[0].Resources.Wood)
				require.Equal(t, "B", again.Players[1].Name)
			})

			t.Run("cancelled context", func(t *testing.T) {
				cancelled, cancel := context.WithCancel(ctx)
				cancel()
				require.Error(t, repo.CreateGame(cancelled, "g5", sampleWorld()))
			})
		})
	}
}

func TestSQLiteGameIDs(t *testing.T) {
	ctx := context.Background()
	db, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	defer db.Close()

	started := sampleWorld()
	started.GameState = game.Started
	require.NoError(t, db.CreateGame(ctx, "a", sampleWorld()))
	require.NoError(t, db.CreateGame(ctx, "b", started))

	all, err := db.GameIDs(ctx, "")
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"a", "b"}, all)

	running, err := db.GameIDs(ctx, game.Started)
	require.NoError(t, err)
	require.Equal(t, []string{"b"}, running)
}

func TestFileStore(t *testing.T) {
	t.Run("rejects ids that are not file names", func(t *testing.T) {
		fs, err := NewFileStore(t.TempDir())
		require.NoError(t, err)
		require.Error(t, fs.CreateGame(context.Background(), "../escape", sampleWorld()))
	})

	t.Run("snapshots are compressed", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "w.json.zst")
		w := sampleWorld()
		require.NoError(t, WriteSnapshot(path, w))

		raw, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Equal(t, []byte{0x28, 0xb5, 0x2f, 0xfd}, raw[:4], "file should start with the zstd magic")

		got, err := ReadSnapshot(path)
		require.NoError(t, err)
		require.Equal(t, w.Hash(), got.Hash())
	})
}

func TestOpen(t *testing.T) {
	repo, err := Open("memory", "")
	require.NoError(t, err)
	require.IsType(t, &Memory{}, repo)

	repo, err = Open("file", t.TempDir())
	require.NoError(t, err)
	require.IsType(t, &FileStore{}, repo)

	_, err = Open("postgres", "")
	require.ErrorContains(t, err, "unknown store driver")
}
