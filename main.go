package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"gametree/experiments"
	"gametree/experiments/metrics"
	"gametree/game/chess"
	"gametree/game/coins"
	"gametree/game/tictactoe"
	"gametree/meta"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type config struct {
	variant    string
	engine1    string
	engine2    string
	depth      int
	coins      []int
	experiment bool
	out        string
}

func main() {
	cfg, err := parseFlags()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if cfg.experiment {
		err = experiments.RunEngineComparison(ctx, cfg.out, cfg.coins, cfg.depth)
	} else {
		err = runSelfPlay(ctx, cfg)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("run failed")
	}
}

func parseFlags() (config, error) {
	variant := flag.String("variant", "tictactoe", "Game to play: tictactoe, coins or chess")
	engine1 := flag.String("max", experiments.AlphaBeta, "Engine playing Max: minimax, alphabeta or random")
	engine2 := flag.String("min", experiments.AlphaBeta, "Engine playing Min: minimax, alphabeta or random")
	depth := flag.Int("depth", 0, "Search depth in plies (0 picks the variant default)")
	coinRow := flag.String("coins", joinInts(meta.COINS), "Comma separated coin values")
	experiment := flag.Bool("experiment", false, "Run the minimax vs alpha-beta comparison on every variant")
	out := flag.String("out", "experiments", "Folder for experiment records")
	debug := flag.Bool("debug", false, "Log every search decision")
	flag.Parse()

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	values, err := parseInts(*coinRow)
	if err != nil {
		return config{}, fmt.Errorf("invalid -coins: %w", err)
	}

	cfg := config{
		variant:    *variant,
		engine1:    *engine1,
		engine2:    *engine2,
		depth:      *depth,
		coins:      values,
		experiment: *experiment,
		out:        *out,
	}
	if cfg.depth <= 0 {
		cfg.depth = defaultDepth(cfg)
	}
	return cfg, nil
}

func defaultDepth(cfg config) int {
	switch cfg.variant {
	case "coins":
		return len(cfg.coins)
	case "chess":
		return meta.CHESS_DEPTH
	default:
		if cfg.experiment {
			return meta.CHESS_DEPTH
		}
		return meta.TICTACTOE_DEPTH
	}
}

func runSelfPlay(ctx context.Context, cfg config) error {
	config1 := metrics.AgentConfig{ID: 1, Engine: cfg.engine1, Depth: cfg.depth}
	config2 := metrics.AgentConfig{ID: 2, Engine: cfg.engine2, Depth: cfg.depth}
	seed := uint64(time.Now().UnixNano())

	var (
		gameMetric metrics.GameMetric
		err        error
	)
	switch cfg.variant {
	case "tictactoe":
		gameMetric, _, err = experiments.RunGame[tictactoe.Board, tictactoe.Move](ctx, cfg.variant, tictactoe.NewRules(), config1, config2, seed)
	case "coins":
		rules, rerr := coins.NewRules(cfg.coins)
		if rerr != nil {
			return rerr
		}
		gameMetric, _, err = experiments.RunGame[coins.State, coins.Move](ctx, cfg.variant, rules, config1, config2, seed)
	case "chess":
		gameMetric, _, err = experiments.RunGame[chess.Board, chess.Move](ctx, cfg.variant, chess.NewRules(), config1, config2, seed)
	default:
		return fmt.Errorf("unknown variant %q", cfg.variant)
	}
	if err != nil {
		return err
	}

	winner := gameMetric.Winner
	if winner == "" {
		winner = "nobody"
	}
	log.Info().
		Str("variant", gameMetric.Variant).
		Str("starting", gameMetric.StartingPlayer.String()).
		Float64("result", float64(gameMetric.Result)).
		Int("moves", gameMetric.TotalMoves).
		Dur("duration", gameMetric.Duration).
		Msgf("winner: %s", winner)
	return nil
}

func parseInts(s string) ([]int, error) {
	var values []int
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.Atoi(field)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

func joinInts(values []int) string {
	fields := make([]string, len(values))
	for i, v := range values {
		fields[i] = strconv.Itoa(v)
	}
	return strings.Join(fields, ",")
}
