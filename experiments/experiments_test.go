package experiments

import (
	"os"
	"path/filepath"
	"testing"

	"colonists/game"

	"github.com/stretchr/testify/require"
)

func TestExpectedRollShare(t *testing.T) {
	total := 0.0
	for roll := 2; roll <= 12; roll++ {
		total += ExpectedRollShare(roll)
	}
	require.InDelta(t, 1.0, total, 1e-9)
	require.InDelta(t, 6.0/36, ExpectedRollShare(7), 1e-9)
	require.InDelta(t, 1.0/36, ExpectedRollShare(12), 1e-9)
	require.Zero(t, ExpectedRollShare(1))
}

func TestDiceDistribution(t *testing.T) {
	records := DiceDistribution(game.NewRandom(42), 100_000)

	require.Len(t, records, 11)
	sum := 0
	for _, r := range records {
		sum += r.Count
	}
	require.Equal(t, 100_000, sum)
	require.Less(t, MaxDeviation(records), 0.015, "the dice table should follow two fair dice")
}

func TestRunDiceExperiment(t *testing.T) {
	dir, err := RunDiceExperiment(t.TempDir(), 1)
	require.NoError(t, err)
	require.FileExists(t, filepath.Join(dir, "rolls.csv"))
}

func TestSelfPlay(t *testing.T) {
	records, actions, err := SelfPlay(2, 3, 11)
	require.NoError(t, err)

	require.Len(t, records, 2)
	for i, r := range records {
		require.Equal(t, i+1, r.ID)
		require.Equal(t, 3, r.Players)
		require.Positive(t, r.Actions)
		require.False(t, r.EndTime.Before(r.StartTime))
	}
	require.Positive(t, actions.Accepted)
	require.Equal(t, actions.Accepted+actions.Rejected, total(actions.ByType))

	t.Run("needs players", func(t *testing.T) {
		_, _, err := SelfPlay(1, 1, 11)
		require.Error(t, err)
	})
}

func total(counts map[string]int) int {
	sum := 0
	for _, v := range counts {
		sum += v
	}
	return sum
}

func TestRunThroughputExperiment(t *testing.T) {
	if testing.Short() {
		t.Skip("plays full games")
	}
	dir, err := RunThroughputExperiment(t.TempDir(), 3)
	require.NoError(t, err)
	for _, file := range []string{"game_records.csv", "actions.csv"} {
		info, err := os.Stat(filepath.Join(dir, file))
		require.NoError(t, err)
		require.Positive(t, info.Size())
	}
}
