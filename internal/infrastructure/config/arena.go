package config

// ArenaConfig is the root config for arenas/<id>.yaml
type ArenaConfig struct {
	ID          string           `yaml:"id"`
	Name        string           `yaml:"name"`
	Size        ArenaSizeConfig  `yaml:"size"`
	FloorY      float64          `yaml:"floorY"`
	Background  string           `yaml:"background"`
	PlayerSpawn PositionConfig   `yaml:"playerSpawn"`
	Platforms   []PlatformConfig `yaml:"platforms"`
	Enemies     []EnemySpawn     `yaml:"enemies"`
}

type ArenaSizeConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type PositionConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type PlatformConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// EnemySpawn places one enemy. When Y is omitted the enemy stands on the floor.
type EnemySpawn struct {
	Kind     string   `yaml:"kind"`
	X        float64  `yaml:"x"`
	Y        *float64 `yaml:"y,omitempty"`
	Enhanced bool     `yaml:"enhanced"`
}
