package engine

import (
	"errors"

	"gametree/experiments/metrics"
)

var ErrIllegalMove = errors.New("illegal move")

type Engine interface {
	// Run plays a game till it is over or a max number of turns is reached
	Run() (metrics.GameMetric, []metrics.MoveMetric, error)
}
