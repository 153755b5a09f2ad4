package engine

import "pursuit/experiments/metrics"

const MaxMoves = 10000

type Engine interface {
	// Run plays until the game is over or the move limit is reached
	Run() (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
