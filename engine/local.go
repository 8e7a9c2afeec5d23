package engine

import (
	"context"
	"fmt"
	"time"

	"gametree/experiments/metrics"
	"gametree/game"
	"gametree/searcher/agent"
	"gametree/utils"

	"github.com/rs/zerolog/log"
)

// Local alternates two agents over one set of rules in-process.
type Local[S any, M comparable] struct {
	ctx      context.Context
	variant  string
	rules    game.Rules[S, M]
	agents   map[game.Player]agent.Agent[S, M]
	maxTurns int

	State  S
	Player game.Player
}

// LocalEngine sets up a game from the rules' initial state. The first agent
// plays Max, the second Min; starter moves first.
func LocalEngine[S any, M comparable](ctx context.Context, variant string, rules game.Rules[S, M], agents []agent.Agent[S, M], starter game.Player, maxTurns int) *Local[S, M] {
	if len(agents) != 2 {
		panic("need exactly two agents")
	}
	if starter != game.Max && starter != game.Min {
		panic(fmt.Sprintf("unknown starting player %d", starter))
	}

	return &Local[S, M]{
		ctx:     ctx,
		variant: variant,
		rules:   rules,
		agents: map[game.Player]agent.Agent[S, M]{
			game.Max: agents[0],
			game.Min: agents[1],
		},
		maxTurns: maxTurns,
		State:    rules.InitialState(),
		Player:   starter,
	}
}

// Run executes the game loop until the game is over, the side to move has
// no moves, or maxTurns moves were played.
func (e *Local[S, M]) Run() (metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		Variant:        e.variant,
		StartingPlayer: e.Player,
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%s: %s is starting", e.variant, e.Player)

	turn := 1
	for ; e.maxTurns <= 0 || turn <= e.maxTurns; turn++ {
		if over, _ := e.rules.IsTerminal(e.State); over {
			break
		}
		moves := e.rules.Moves(e.State, e.Player)
		if len(moves) == 0 {
			log.Info().Msgf("%s: %s has no moves left", e.variant, e.Player)
			break
		}

		move, searchMetric, err := e.agents[e.Player].FindMove(e.ctx, e.State, e.Player)
		if err != nil {
			return gameMetric, moveMetrics, fmt.Errorf("turn %d: %w", turn, err)
		}
		if utils.FindIndex(moves, move) < 0 {
			log.Warn().Msgf("%s: %s returned move %v outside its legal moves", e.variant, e.Player, move)
			return gameMetric, moveMetrics, fmt.Errorf("turn %d: %s played %v: %w", turn, e.Player, move, ErrIllegalMove)
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn,
			Player:       e.Player,
			Move:         fmt.Sprint(move),
			SearchMetric: searchMetric,
		})
		log.Debug().Msgf("%s: turn %d %s plays %v", e.variant, turn, e.Player, move)

		e.State = e.rules.Play(e.State, move, e.Player)
		e.Player = e.Player.Opponent()
	}

	over, result := e.rules.IsTerminal(e.State)
	if !over {
		result = e.rules.Evaluate(e.State)
	}
	gameMetric.Result = result
	gameMetric.Winner = winner(over, result)
	gameMetric.TotalMoves = len(moveMetrics)
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)

	if over {
		log.Info().Msgf("%s: game over after %d moves with result %v", e.variant, gameMetric.TotalMoves, result)
	} else {
		log.Info().Msgf("%s: stopped after %d moves with evaluation %v", e.variant, gameMetric.TotalMoves, result)
	}
	return gameMetric, moveMetrics, nil
}

func winner(over bool, result game.Score) string {
	switch {
	case !over || result == 0:
		return ""
	case result > 0:
		return game.Max.String()
	default:
		return game.Min.String()
	}
}
