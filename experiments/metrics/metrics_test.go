package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestCollector(t *testing.T) {
	c := NewCollector()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.AddAccepted("endTurn")
			c.AddRejected("buyCard", "economic")
			c.AddRoll(7)
		}()
	}
	wg.Wait()
	c.AddRoll(13)
	c.AddRoll(-1)

	m := c.Complete()
	require.Equal(t, 10, m.Accepted)
	require.Equal(t, 10, m.Rejected)
	require.Equal(t, map[string]int{"endTurn": 10, "buyCard": 10}, m.ByType)
	require.Equal(t, map[string]int{"economic": 10}, m.Failures)
	require.Equal(t, 10, m.Rolls[7])

	t.Run("snapshots do not share maps", func(t *testing.T) {
		m.ByType["endTurn"] = 0
		require.Equal(t, 10, c.Complete().ByType["endTurn"])
	})

	t.Run("dummy collects nothing", func(t *testing.T) {
		d := NewDummyCollector()
		d.AddAccepted("endTurn")
		require.Equal(t, ActionMetric{}, d.Complete())
	})
}

func TestWriter(t *testing.T) {
	root := t.TempDir()
	w, err := NewWriter(root, "run")
	require.NoError(t, err)
	require.DirExists(t, w.Dir())
	require.Equal(t, filepath.Join(root, "run"), filepath.Dir(w.Dir()))

	t.Run("rolls", func(t *testing.T) {
		require.NoError(t, w.WriteRollRecords([]RollRecord{{Roll: 7, Count: 6, Observed: 1.0 / 6, Expected: 6.0 / 36}}))

		rows := readCSV(t, filepath.Join(w.Dir(), "rolls.csv"))
		require.Equal(t, [][]string{
			{"roll", "count", "observed", "expected"},
			{"7", "6", "0.16667", "0.16667"},
		}, rows)
	})

	t.Run("games", func(t *testing.T) {
		start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		require.NoError(t, w.WriteGameRecords([]GameMetric{{
			ID: 1, Players: 3, Winner: "Player2",
			StartTime: start, EndTime: start.Add(time.Second), Duration: time.Second,
			TotalTurns: 40, Actions: 120,
		}}))

		rows := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, []string{"1", "3", "Player2", "2024-01-02T03:04:05Z", "2024-01-02T03:04:06Z", "1s", "40", "120"}, rows[1])
	})

	t.Run("actions are sorted", func(t *testing.T) {
		require.NoError(t, w.WriteActionMetric(ActionMetric{
			Accepted: 3,
			Rejected: 1,
			ByType:   map[string]int{"lockMap": 1, "endTurn": 2, "buyCard": 1},
			Failures: map[string]int{"economic": 1},
		}))

		rows := readCSV(t, filepath.Join(w.Dir(), "actions.csv"))
		require.Equal(t, [][]string{
			{"group", "name", "count"},
			{"total", "accepted", "3"},
			{"total", "rejected", "1"},
			{"action", "buyCard", "1"},
			{"action", "endTurn", "2"},
			{"action", "lockMap", "1"},
			{"failure", "economic", "1"},
		}, rows)
	})
}
