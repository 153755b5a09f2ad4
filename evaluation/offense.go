package evaluation

import (
	"pursuit/game"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// foodClusterRadius is the maze distance under which two food cells count as
// clustered.
const foodClusterRadius = 3

// OffenseStrategy raids the opponent's half for food while keeping track of
// the defending ghosts. While it is still at home it also watches for
// invaders.
type OffenseStrategy struct {
	Extractor
	weights Weights
}

func (o *OffenseStrategy) Role() Role {
	return Offense
}

func (o *OffenseStrategy) Weights() Weights {
	return o.weights
}

func (o *OffenseStrategy) Features(state game.CaptureView, action game.Action) Vector {
	next := o.successor(state, action)
	red := next.IsRed(o.Agent)
	me := next.AgentState(o.Agent).Position
	distancer := next.Distancer()

	features := Vector{SuccessorScore: next.TeamScore(red)}

	enemies := o.opponents(next)
	if len(enemies.defenders) > 0 {
		dists := distances(distancer, me, enemies.defenders)
		features[DangerousEnemyDistance] = stat.Mean(dists, nil)
		features[ClosestEnemy] = floats.Min(dists)
	}

	food := next.Food(!red)
	if len(food) > 0 {
		features[DistanceToFood] = nearest(distancer, me, food)
	}
	if capsules := next.Capsules(!red); len(capsules) > 0 {
		features[DistanceToCapsule] = nearest(distancer, me, capsules)
	}
	if cluster, ok := tightestPair(distancer, food); ok {
		features[FoodCluster] = cluster
	}

	if next.IsHome(red, me) {
		features[NumInvaders] = float64(len(enemies.invaders))
		if len(enemies.invaders) > 0 {
			features[InvaderDistance] = floats.Min(distances(distancer, me, enemies.invaders))
		}
		if o.Pressure != nil {
			features[TerritorialPressure] = float64(o.Pressure.Value())
		}
	}
	return features
}

// tightestPair returns the smallest distance between two distinct food cells,
// if it is under foodClusterRadius.
func tightestPair(distancer game.Distancer, food []game.Position) (float64, bool) {
	best := float64(foodClusterRadius)
	for i := range food {
		for j := i + 1; j < len(food); j++ {
			if d := float64(distancer.Distance(food[i], food[j])); d < best {
				best = d
			}
		}
	}
	return best, best < foodClusterRadius
}
