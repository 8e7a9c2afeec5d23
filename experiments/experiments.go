package experiments

import (
	"context"
	"fmt"

	"gametree/engine"
	"gametree/experiments/metrics"
	"gametree/game"
	"gametree/game/chess"
	"gametree/game/coins"
	"gametree/game/tictactoe"
	"gametree/meta"
	"gametree/searcher"
	"gametree/searcher/agent"

	"github.com/rs/zerolog/log"
)

const (
	Minimax   = "minimax"
	AlphaBeta = "alphabeta"
	Random    = "random"
)

// NewAgent builds the agent described by config
func NewAgent[S any, M comparable](rules game.Rules[S, M], config metrics.AgentConfig, seed uint64) (agent.Agent[S, M], error) {
	switch config.Engine {
	case Minimax:
		e := searcher.NewMinimax(rules, searcher.WithMetrics())
		return agent.NewSearchAgent(searcher.NewSelector[S, M](e, config.Depth)), nil
	case AlphaBeta:
		e := searcher.NewAlphaBeta(rules, searcher.WithMetrics())
		return agent.NewSearchAgent(searcher.NewSelector[S, M](e, config.Depth)), nil
	case Random:
		return agent.NewRandomAgent(rules, seed), nil
	default:
		return nil, fmt.Errorf("unknown engine %q", config.Engine)
	}
}

type recorder struct {
	configs     []metrics.AgentConfig
	gameRecords []metrics.GameRecord
	moveRecords []metrics.MoveRecord
}

// RunEngineComparison plays minimax against alpha-beta on every variant, both
// ways round, and writes the records under root.
func RunEngineComparison(ctx context.Context, root string, coinRow []int, chessDepth int) error {
	rec := &recorder{}

	log.Info().Msg("starting engine comparison experiment...")

	err := runMatchUps[tictactoe.Board, tictactoe.Move](ctx, rec, "tictactoe", tictactoe.NewRules(), []metrics.AgentConfig{
		{ID: 1, Engine: Minimax, Depth: meta.TICTACTOE_DEPTH},
		{ID: 2, Engine: AlphaBeta, Depth: meta.TICTACTOE_DEPTH},
	})
	if err != nil {
		return err
	}

	coinRules, err := coins.NewRules(coinRow)
	if err != nil {
		return err
	}
	err = runMatchUps[coins.State, coins.Move](ctx, rec, "coins", coinRules, []metrics.AgentConfig{
		{ID: 3, Engine: Minimax, Depth: len(coinRow)},
		{ID: 4, Engine: AlphaBeta, Depth: len(coinRow)},
	})
	if err != nil {
		return err
	}

	err = runMatchUps[chess.Board, chess.Move](ctx, rec, "chess", chess.NewRules(), []metrics.AgentConfig{
		{ID: 5, Engine: Minimax, Depth: chessDepth},
		{ID: 6, Engine: AlphaBeta, Depth: chessDepth},
	})
	if err != nil {
		return err
	}

	log.Info().Msg("completed engine comparison experiment")
	return rec.store(root, "engine_comparison")
}

// runMatchUps plays every ordered pair of distinct configs once
func runMatchUps[S any, M comparable](ctx context.Context, rec *recorder, variant string, rules game.Rules[S, M], configs []metrics.AgentConfig) error {
	rec.configs = append(rec.configs, configs...)

	for _, config1 := range configs {
		for _, config2 := range configs {
			if config1.ID == config2.ID {
				continue
			}
			id := len(rec.gameRecords) + 1
			log.Info().Msgf("starting %s game %d between agent1=%+v and agent2=%+v...", variant, id, config1, config2)

			gameMetric, moveMetrics, err := RunGame(ctx, variant, rules, config1, config2, uint64(id))
			if err != nil {
				return fmt.Errorf("%s game %d: %w", variant, id, err)
			}
			rec.gameRecords = append(rec.gameRecords, metrics.GameRecord{
				ID:         id,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				rec.moveRecords = append(rec.moveRecords, metrics.MoveRecord{
					Game:       id,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed %s game %d with result %v", variant, id, gameMetric.Result)
		}
	}
	return nil
}

// RunGame plays a single game, config1 as Max moving first against config2 as Min
func RunGame[S any, M comparable](ctx context.Context, variant string, rules game.Rules[S, M], config1, config2 metrics.AgentConfig, seed uint64) (metrics.GameMetric, []metrics.MoveMetric, error) {
	agent1, err := NewAgent(rules, config1, seed)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	agent2, err := NewAgent(rules, config2, seed+1)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}

	var e engine.Engine = engine.LocalEngine(ctx, variant, rules, []agent.Agent[S, M]{agent1, agent2}, game.Max, meta.MAX_TURNS)
	return e.Run()
}

func (r *recorder) store(root, name string) error {
	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(r.configs); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(r.gameRecords); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(r.moveRecords); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())
	return nil
}
