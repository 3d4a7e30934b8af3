package experiments

import (
	"fmt"
	"time"

	"colonists/engine"
	"colonists/experiments/metrics"
	"colonists/game"
	"colonists/meta"
	"colonists/player"

	"github.com/rs/zerolog/log"
)

// SelfPlay runs games bots against each other through one engine and
// returns a record per game plus the engine's action counters.
func SelfPlay(games, players int, seed uint64) ([]metrics.GameMetric, metrics.ActionMetric, error) {
	collector := metrics.NewCollector()
	e := engine.New(engine.WithSeed(seed), engine.WithMetrics(collector))

	records := make([]metrics.GameMetric, 0, games)
	for i := 0; i < games; i++ {
		agents := make([]engine.Agent, players)
		for p := range agents {
			agents[p] = player.NewPlayer(fmt.Sprintf("Player%d", p+1))
		}
		local, err := engine.LocalEngine(e, game.CreateMap(e.Random()), agents)
		if err != nil {
			return nil, metrics.ActionMetric{}, err
		}

		start := time.Now()
		winner := local.Run()
		end := time.Now()
		records = append(records, metrics.GameMetric{
			ID:         i + 1,
			Players:    players,
			Winner:     winner,
			StartTime:  start,
			EndTime:    end,
			Duration:   end.Sub(start),
			TotalTurns: local.World().GameStatistics.Turns,
			Actions:    len(local.History()),
		})
		log.Info().Msgf("completed game %d of %d with winner: %q", i+1, games, winner)
	}
	return records, collector.Complete(), nil
}

// RunThroughputExperiment plays meta.SELF_PLAY_GAMES bot games and stores
// the game records and action counters under dir.
func RunThroughputExperiment(dir string, seed uint64) (string, error) {
	log.Info().Msg("starting throughput experiment...")
	records, actions, err := SelfPlay(meta.SELF_PLAY_GAMES, meta.SELF_PLAY_PLAYERS, seed)
	if err != nil {
		return "", err
	}

	writer, err := metrics.NewWriter(dir, "throughput")
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteGameRecords(records); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")
	if err := writer.WriteActionMetric(actions); err != nil {
		return "", fmt.Errorf("failed to write action metric: %w", err)
	}
	log.Info().
		Int("accepted", actions.Accepted).
		Int("rejected", actions.Rejected).
		Dur("duration", actions.Duration).
		Msg("completed throughput experiment")
	return writer.Dir(), nil
}
