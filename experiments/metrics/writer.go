package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"
)

// RollRecord compares how often a sum came up against how often it should.
type RollRecord struct {
	Roll     int
	Count    int
	Observed float64
	Expected float64
}

type Writer struct {
	baseDir string
}

// NewWriter creates <root>/<name>/<timestamp> and writes every file there.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) write(file string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, file)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", file, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", file, err)
	}
	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write %s rows: %w", file, err)
	}
	return nil
}

func (w *Writer) WriteRollRecords(records []RollRecord) error {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Roll),
			strconv.Itoa(record.Count),
			strconv.FormatFloat(record.Observed, 'f', 5, 64),
			strconv.FormatFloat(record.Expected, 'f', 5, 64),
		})
	}
	return w.write("rolls.csv", []string{"roll", "count", "observed", "expected"}, rows)
}

func (w *Writer) WriteGameRecords(records []GameMetric) error {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Players),
			record.Winner,
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalTurns),
			strconv.Itoa(record.Actions),
		})
	}
	header := []string{"id", "players", "winner", "start_time", "end_time", "duration", "turns", "actions"}
	return w.write("game_records.csv", header, rows)
}

// WriteActionMetric writes one row per action type and one per failure kind.
func (w *Writer) WriteActionMetric(metric ActionMetric) error {
	rows := [][]string{
		{"total", "accepted", strconv.Itoa(metric.Accepted)},
		{"total", "rejected", strconv.Itoa(metric.Rejected)},
	}
	for _, k := range sortedKeys(metric.ByType) {
		rows = append(rows, []string{"action", k, strconv.Itoa(metric.ByType[k])})
	}
	for _, k := range sortedKeys(metric.Failures) {
		rows = append(rows, []string{"failure", k, strconv.Itoa(metric.Failures[k])})
	}
	return w.write("actions.csv", []string{"group", "name", "count"}, rows)
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
