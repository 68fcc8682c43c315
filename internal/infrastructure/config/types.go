package config

// PhysicsConfig is the root config for physics.yaml
type PhysicsConfig struct {
	Display    DisplayConfig    `yaml:"display"`
	Simulation SimulationConfig `yaml:"simulation"`
	Physics    PhysicsSettings  `yaml:"physics"`
	Movement   MovementConfig   `yaml:"movement"`
	Camera     CameraConfig     `yaml:"camera"`
	Animation  AnimationConfig  `yaml:"animation"`
	Banner     BannerConfig     `yaml:"banner"`
	Audio      AudioConfig      `yaml:"audio"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screenWidth"`
	ScreenHeight int    `yaml:"screenHeight"`
	Scale        int    `yaml:"scale"`
	TilePixels   int    `yaml:"tilePixels"` // on-screen size of one world unit
	Title        string `yaml:"title"`
}

type SimulationConfig struct {
	Step             float64 `yaml:"step"`             // seconds
	MaxStepsPerFrame int     `yaml:"maxStepsPerFrame"` // 0 disables the cap
}

type PhysicsSettings struct {
	TileSize           float64 `yaml:"tileSize"`
	Gravity            float64 `yaml:"gravity"`
	PenetrationEpsilon float64 `yaml:"penetrationEpsilon"`
	SolidTiles         []int   `yaml:"solidTiles"`
}

type MovementConfig struct {
	Acceleration float64 `yaml:"acceleration"`
	JumpImpulse  float64 `yaml:"jumpImpulse"`
	MaxSpeedX    float64 `yaml:"maxSpeedX"`
}

type CameraConfig struct {
	OffsetY float64 `yaml:"offsetY"`
}

type AnimationConfig struct {
	FPS    float64 `yaml:"fps"`
	Frames int     `yaml:"frames"`
}

type BannerConfig struct {
	Seconds float64 `yaml:"seconds"`
}

type AudioConfig struct {
	SampleRate  int     `yaml:"sampleRate"`
	MusicVolume float64 `yaml:"musicVolume"` // 0..1
	SFXVolume   float64 `yaml:"sfxVolume"`   // 0..1
	Muted       bool    `yaml:"muted"`
}
