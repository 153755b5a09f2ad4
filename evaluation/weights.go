package evaluation

// Feature names.
const (
	SuccessorScore           = "successorScore"
	DistanceToFood           = "distanceToFood"
	DistanceToCapsule        = "distanceToCapsule"
	DangerousEnemyDistance   = "dangerousEnemyDistance"
	ClosestEnemy             = "closestEnemy"
	FoodCluster              = "foodCluster"
	NumInvaders              = "numInvaders"
	InvaderDistance          = "invaderDistance"
	TerritorialPressure      = "territorialPressure"
	OnDefense                = "onDefense"
	NumPotentialInvaders     = "numPotentialInvaders"
	PotentialInvaderDistance = "potentialInvaderDistance"
	InTeamSide               = "inTeamSide"
	StopPenalty              = "stop"
	ReversePenalty           = "reverse"
	ScaredIntercept          = "scaredIntercept"
)

// FeatureNames lists every feature either role can extract.
var FeatureNames = []string{
	SuccessorScore, DistanceToFood, DistanceToCapsule, DangerousEnemyDistance,
	ClosestEnemy, FoodCluster, NumInvaders, InvaderDistance, TerritorialPressure,
	OnDefense, NumPotentialInvaders, PotentialInvaderDistance, InTeamSide,
	StopPenalty, ReversePenalty, ScaredIntercept,
}

func DefaultOffenseWeights() Weights {
	return Weights{
		SuccessorScore:         100,
		DistanceToFood:         -5,
		NumInvaders:            -1500,
		InvaderDistance:        -500,
		DistanceToCapsule:      -2,
		DangerousEnemyDistance: 1,
		TerritorialPressure:    -1,
		ClosestEnemy:           2,
		FoodCluster:            -2,
	}
}

func DefaultDefenseWeights() Weights {
	return Weights{
		NumInvaders:              -1500,
		OnDefense:                100,
		InvaderDistance:          -500,
		PotentialInvaderDistance: -5,
		StopPenalty:              -100,
		ReversePenalty:           -10,
		InTeamSide:               150,
		ScaredIntercept:          -1250,
	}
}

// DefaultWeights returns the hand tuned table for role.
func DefaultWeights(role Role) Weights {
	if role == Defense {
		return DefaultDefenseWeights()
	}
	return DefaultOffenseWeights()
}
