package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// GameSpec holds every tuning constant of the simulation.
type GameSpec struct {
	Name      string        `yaml:"name"`
	TickRate  int           `yaml:"tick_rate"`
	Playfield PlayfieldSpec `yaml:"playfield"`
	Player    PlayerSpec    `yaml:"player"`
	Wave      WaveSpec      `yaml:"wave"`
	Bullet    BulletSpec    `yaml:"bullet"`
	Enemy     EnemySpec     `yaml:"enemy"`
	Pickups   PickupsSpec   `yaml:"pickups"`
}

type PlayfieldSpec struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	TileSize float64 `yaml:"tile_size"`
}

type PlayerSpec struct {
	Speed      float64 `yaml:"speed"`
	MaxHealth  int     `yaml:"max_health"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	SpawnX     float64 `yaml:"spawn_x"`
	SpawnY     float64 `yaml:"spawn_y"`
	FrameSpeed float64 `yaml:"frame_speed"`
	FrameCount int     `yaml:"frame_count"`
}

type WaveSpec struct {
	Speed            float64 `yaml:"speed"`
	Budget           int     `yaml:"budget"`
	BaseSize         float64 `yaml:"base_size"`
	GrowthMS         float64 `yaml:"growth_ms"`
	MaxScale         float64 `yaml:"max_scale"`
	Amplify          float64 `yaml:"amplify"`
	ReflectThreshold float64 `yaml:"reflect_threshold"`
}

type BulletSpec struct {
	Speed  float64 `yaml:"speed"`
	Size   float64 `yaml:"size"`
	TTLMS  float64 `yaml:"ttl_ms"`
	Damage int     `yaml:"damage"`
}

type EnemySpec struct {
	WeakHealth      int     `yaml:"weak_health"`
	StrongHealth    int     `yaml:"strong_health"`
	MinSpeed        int     `yaml:"min_speed"`
	MaxSpeed        int     `yaml:"max_speed"`
	ShootIntervalMS float64 `yaml:"shoot_interval_ms"`
	KillScore       int     `yaml:"kill_score"`
	ContactDamage   int     `yaml:"contact_damage"`
	FireScript      string  `yaml:"fire_script"`
}

type PickupsSpec struct {
	Heal       int `yaml:"heal"`
	BonusScore int `yaml:"bonus_score"`
}

// LoadGameSpec reads game.yaml, preferring the on-disk copy.
func LoadGameSpec() (*GameSpec, error) {
	spec, err := LoadSpec[GameSpec]("game.yaml")
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: game.yaml: %w", err)
	}
	return &spec, nil
}

// Validate rejects values that would break simulation invariants.
func (s *GameSpec) Validate() error {
	switch {
	case s.TickRate <= 0:
		return fmt.Errorf("tick_rate must be positive, got %d", s.TickRate)
	case s.Playfield.TileSize <= 0:
		return fmt.Errorf("playfield.tile_size must be positive")
	case s.Playfield.Width <= 0 || s.Playfield.Height <= 0:
		return fmt.Errorf("playfield size must be positive")
	case s.Player.MaxHealth <= 0:
		return fmt.Errorf("player.max_health must be positive")
	case s.Wave.Speed <= 0 || s.Bullet.Speed <= 0:
		return fmt.Errorf("projectile speeds must be positive")
	case s.Wave.Budget < 0:
		return fmt.Errorf("wave.budget must not be negative")
	case s.Wave.ReflectThreshold <= 0:
		return fmt.Errorf("wave.reflect_threshold must be positive")
	case s.Bullet.TTLMS <= 0:
		return fmt.Errorf("bullet.ttl_ms must be positive")
	case s.Enemy.WeakHealth <= 0 || s.Enemy.StrongHealth <= 0:
		return fmt.Errorf("enemy healths must be positive, got weak=%d strong=%d", s.Enemy.WeakHealth, s.Enemy.StrongHealth)
	case s.Wave.MaxScale < 1:
		return fmt.Errorf("wave.max_scale must be at least 1")
	case s.Enemy.MinSpeed <= 0 || s.Enemy.MaxSpeed < s.Enemy.MinSpeed:
		return fmt.Errorf("enemy speed range [%d,%d] is invalid", s.Enemy.MinSpeed, s.Enemy.MaxSpeed)
	}
	return nil
}

// MS converts a tick count into elapsed simulation milliseconds.
func (s *GameSpec) MS(ticks int) float64 {
	return float64(ticks) * 1000 / float64(s.TickRate)
}
