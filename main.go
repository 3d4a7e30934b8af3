package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"colonists/communication"
	"colonists/communication/server"
	"colonists/config"
	"colonists/engine"
	"colonists/experiments"
	"colonists/experiments/metrics"
	"colonists/game"
	"colonists/gamemaster"
	"colonists/meta"
	"colonists/storage"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "colonists.yaml", "Path to the YAML config file")
	dice := flag.Bool("dice", false, "Run the dice distribution experiment and exit")
	selfPlay := flag.Bool("selfplay", false, "Run the bot self-play experiment and exit")
	player := flag.String("player", "", "Play as a bot with this name against -server")
	serverURL := flag.String("server", "http://localhost"+meta.SERVER_ADDR, "Game server for -player")
	gameID := flag.String("game", "", "Game id for -player, a new game when empty")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("could not load config")
	}
	setupLogger(cfg.Log)

	seed := cfg.Game.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch {
	case *dice:
		if _, err := experiments.RunDiceExperiment(meta.RESULTS_DIR, seed); err != nil {
			log.Fatal().Err(err).Msg("dice experiment failed")
		}
	case *selfPlay:
		if _, err := experiments.RunThroughputExperiment(meta.RESULTS_DIR, seed); err != nil {
			log.Fatal().Err(err).Msg("throughput experiment failed")
		}
	case *player != "":
		if err := runBot(ctx, *serverURL, *gameID, *player, seed); err != nil {
			log.Fatal().Err(err).Msg("bot stopped")
		}
	default:
		if err := serve(ctx, cfg, seed); err != nil {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}
}

func setupLogger(cfg config.Log) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339
	if cfg.Console {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	}
}

func serve(ctx context.Context, cfg config.Config, seed uint64) error {
	repo, err := storage.Open(cfg.Store.Driver, cfg.Store.DSN)
	if err != nil {
		return err
	}
	defer repo.Close()

	collector := metrics.NewCollector()
	rules := game.NewStandardRules()
	if cfg.Game.PointsToWin > 0 {
		rules.WinningPoints = cfg.Game.PointsToWin
	}
	eng := engine.New(engine.WithSeed(seed), engine.WithRules(rules), engine.WithMetrics(collector))
	hub := communication.NewHub()
	gm := gamemaster.NewGameMaster(repo, eng, gamemaster.WithBroadcaster(hub))

	log.Info().Str("store", cfg.Store.Driver).Uint64("seed", seed).Msg("starting game server")
	err = server.NewServer(gm, hub).Start(ctx, cfg.Server.Addr)

	m := collector.Complete()
	log.Info().
		Int("accepted", m.Accepted).
		Int("rejected", m.Rejected).
		Dur("uptime", m.Duration).
		Msg("game server stopped")
	return err
}
