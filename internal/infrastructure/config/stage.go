package config

// LevelsConfig is the root config for levels.yaml
type LevelsConfig struct {
	Levels []LevelRef `yaml:"levels"`
}

// LevelRef points at a level file. Width and Height are required for
// Flare files without a header and ignored for TMX maps.
type LevelRef struct {
	Title  string `yaml:"title"`
	File   string `yaml:"file"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Track  string `yaml:"track"`
}
