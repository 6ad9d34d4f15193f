package drifter

// ScorePerLevel is the score a dimension takes to complete. The threshold
// for dimension n is n * ScorePerLevel, compared with >= so a large single
// award (a gateway bonus) can cross it within one tick.
const ScorePerLevel = 1000

// LevelDefinition describes one dimension: a difficulty tier with its own
// scroll speed, spawn cadence, and permitted obstacle set. Read-only static
// configuration data.
type LevelDefinition struct {
	Number        int
	Name          string
	Theme         string
	Speed         float64 // Scroll speed, cells/s
	SpawnInterval float64 // Obstacle spawn period, seconds
	Obstacles     []ObstacleType
}

var dimensions = []LevelDefinition{
	{
		Number:        1,
		Name:          "Training Grounds",
		Theme:         "holo",
		Speed:         12.0,
		SpawnInterval: 1.6,
		Obstacles:     []ObstacleType{ObstacleWall, ObstaclePit},
	},
	{
		Number:        2,
		Name:          "Neon Sprawl",
		Theme:         "neon",
		Speed:         16.0,
		SpawnInterval: 1.35,
		Obstacles:     []ObstacleType{ObstacleWall, ObstaclePit, ObstaclePlatform},
	},
	{
		Number:        3,
		Name:          "Crystal Wastes",
		Theme:         "crystal",
		Speed:         20.0,
		SpawnInterval: 1.1,
		Obstacles:     []ObstacleType{ObstacleWall, ObstaclePit, ObstaclePlatform, ObstacleMovingWall},
	},
	{
		Number:        4,
		Name:          "Singularity Core",
		Theme:         "void",
		Speed:         26.0,
		SpawnInterval: 0.9,
		Obstacles:     []ObstacleType{ObstacleWall, ObstaclePit, ObstaclePlatform, ObstacleMovingWall, ObstacleLaserGate},
	},
}

// Dimensions returns the full dimension sequence.
func Dimensions() []LevelDefinition {
	return dimensions
}

// DimensionCount returns the number of dimensions in the mission.
func DimensionCount() int {
	return len(dimensions)
}
