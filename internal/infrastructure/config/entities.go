package config

// EntitiesConfig is the root config for entities.yaml
type EntitiesConfig struct {
	Player      BodyConfig  `yaml:"player"`
	Enemy       EnemyConfig `yaml:"enemy"`
	Goal        BodyConfig  `yaml:"goal"`
	Collectible BodyConfig  `yaml:"collectible"`
}

// BodyConfig holds the spawn defaults of one entity kind
type BodyConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Friction     Vec     `yaml:"friction"`
	Velocity     Vec     `yaml:"velocity"`
	Acceleration Vec     `yaml:"acceleration"`
}

type EnemyConfig struct {
	BodyConfig `yaml:",inline"`
	AI         EnemyAIConfig `yaml:"ai"`
}

type EnemyAIConfig struct {
	AlertRangeX float64 `yaml:"alertRangeX"`
	AlertRangeY float64 `yaml:"alertRangeY"`
	AlertAccel  float64 `yaml:"alertAccel"`
	PatrolSpeed float64 `yaml:"patrolSpeed"`
	PatrolAccel float64 `yaml:"patrolAccel"`
	BounceSpeed float64 `yaml:"bounceSpeed"` // speed after hitting a wall
	BounceAccel float64 `yaml:"bounceAccel"`
}

type Vec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}
