package parameter

import "time"

// Item Spawning
const (
	// SpawnMaxAttempts is the placement sampling budget of a single spawn call
	SpawnMaxAttempts = 100

	// SpawnMinHeadDistance is the minimum Manhattan distance between a new item and the snake head
	SpawnMinHeadDistance = 3

	// SpawnGrowthThreshold is the cumulative probability of a random kind being Growth
	SpawnGrowthThreshold = 0.6

	// SpawnBonusThreshold is the cumulative probability of a random kind being Growth or Bonus
	SpawnBonusThreshold = 0.9
)

// Item Population
const (
	// MinGrowthItems is the Growth population topped up every tick
	MinGrowthItems = 2

	// MinBonusItems is the Bonus population ensured every tick
	MinBonusItems = 1

	// HazardTickChance is the per-tick probability of spawning a Hazard when none exists
	HazardTickChance = 0.1

	// HazardSeedChance is the probability of seeding a Hazard on session start
	HazardSeedChance = 0.3

	// HazardLifetime is how long a Hazard stays on the board unless consumed
	HazardLifetime = 15000 * time.Millisecond
)

// Scoring
const (
	// GrowthPoints is the score value of a Growth item
	GrowthPoints = 1

	// BonusPoints is the score value of a Bonus item
	BonusPoints = 2

	// PointsPerLevel is the score span of one level
	PointsPerLevel = 10
)
