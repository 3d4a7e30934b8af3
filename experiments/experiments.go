package experiments

import (
	"fmt"
	"math"

	"colonists/experiments/metrics"
	"colonists/game"
	"colonists/meta"

	"github.com/rs/zerolog/log"
)

// ExpectedRollShare is the probability of a sum of two fair dice.
func ExpectedRollShare(roll int) float64 {
	if roll < 2 || roll > 12 {
		return 0
	}
	return float64(6-abs(7-roll)) / 36
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// DiceDistribution draws n rolls and reports how often every sum came up.
func DiceDistribution(rng game.Random, n int) []metrics.RollRecord {
	var counts [13]int
	for i := 0; i < n; i++ {
		counts[game.RandomGameDiceRoll(rng)]++
	}
	records := make([]metrics.RollRecord, 0, 11)
	for roll := 2; roll <= 12; roll++ {
		records = append(records, metrics.RollRecord{
			Roll:     roll,
			Count:    counts[roll],
			Observed: float64(counts[roll]) / float64(n),
			Expected: ExpectedRollShare(roll),
		})
	}
	return records
}

// MaxDeviation is the largest gap between observed and expected share.
func MaxDeviation(records []metrics.RollRecord) float64 {
	worst := 0.0
	for _, r := range records {
		worst = math.Max(worst, math.Abs(r.Observed-r.Expected))
	}
	return worst
}

// RunDiceExperiment samples the dice and stores the histogram under dir.
func RunDiceExperiment(dir string, seed uint64) (string, error) {
	log.Info().Int("draws", meta.DICE_DRAWS).Msg("starting dice experiment...")
	records := DiceDistribution(game.NewRandom(seed), meta.DICE_DRAWS)

	writer, err := metrics.NewWriter(dir, "dice")
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteRollRecords(records); err != nil {
		return "", fmt.Errorf("failed to write roll records: %w", err)
	}
	log.Info().Float64("max_deviation", MaxDeviation(records)).Str("dir", writer.Dir()).Msg("completed dice experiment")
	return writer.Dir(), nil
}
