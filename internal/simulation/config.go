// Package simulation runs the real-time arena: it owns the entities,
// buildings and shockwaves of one play session and advances them each frame.
// Tuning values are loaded from data files so the feel can be adjusted
// without rebuilding.
package simulation

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"chosenoffset.com/outbreak/internal/entity"
)

// MeleeMode selects how a hostile decides it is close enough to hit the player.
type MeleeMode string

const (
	// MeleeBlockedMove hits when a chase move is blocked by a building.
	MeleeBlockedMove MeleeMode = "blocked_move"
	// MeleeContact hits when the hostile's circle touches the player's.
	MeleeContact MeleeMode = "contact"
)

// Config holds all simulation tuning for a session
type Config struct {
	Arena     ArenaConfig     `yaml:"arena"`
	Player    PlayerConfig    `yaml:"player"`
	Shockwave ShockwaveConfig `yaml:"shockwave"`
	Zombie    ActorConfig     `yaml:"zombie"`
	NPC       NPCConfig       `yaml:"npc"`
	Building  BuildingConfig  `yaml:"building"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Combat    CombatConfig    `yaml:"combat"`
	Knockback KnockbackConfig `yaml:"knockback"`

	// Seed for the session RNG. Zero means seed from the clock.
	Seed int64 `yaml:"seed"`
}

// ArenaConfig defines the bounded play area and building placement limits
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	FPS    int     `yaml:"fps"`

	BuildingMargin       float64 `yaml:"building_margin"`        // keep buildings this far from the edges
	BuildingPadding      float64 `yaml:"building_padding"`       // total growth before overlap tests
	SpawnExclusionRadius float64 `yaml:"spawn_exclusion_radius"` // no building centre this close to the player
	PlacementAttempts    int     `yaml:"placement_attempts"`     // retries per building
}

// PlayerConfig defines the player's movement and melee
type PlayerConfig struct {
	Speed          float64 `yaml:"speed"`
	Radius         float64 `yaml:"radius"`
	MaxHealth      float64 `yaml:"max_health"`
	Damage         float64 `yaml:"damage"`
	AttackCooldown float64 `yaml:"attack_cooldown"`
	AttackReach    float64 `yaml:"attack_reach"` // gap allowed between circles for a melee hit
}

// ShockwaveConfig defines the player's area attack
type ShockwaveConfig struct {
	StartRadius float64 `yaml:"start_radius"`
	MaxRadius   float64 `yaml:"max_radius"`
	GrowthRate  float64 `yaml:"growth_rate"`
	Damage      float64 `yaml:"damage"`
	Knockback   float64 `yaml:"knockback"`
	Cooldown    float64 `yaml:"cooldown"`
}

// ActorConfig defines a hostile kind
type ActorConfig struct {
	Speed           float64 `yaml:"speed"`
	Radius          float64 `yaml:"radius"`
	MaxHealth       float64 `yaml:"max_health"`
	Damage          float64 `yaml:"damage"`
	AttackCooldown  float64 `yaml:"attack_cooldown"`
	DetectionRadius float64 `yaml:"detection_radius"`
}

// NPCConfig defines disguised NPCs
type NPCConfig struct {
	ActorConfig    `yaml:",inline"`
	HostileChance  float64 `yaml:"hostile_chance"`
	FollowDistance float64 `yaml:"follow_distance"`
	AttackRange    float64 `yaml:"attack_range"`
	FriendlyDamage float64 `yaml:"friendly_damage"`
}

// BuildingConfig defines random building generation
type BuildingConfig struct {
	MinSize  float64 `yaml:"min_size"`
	MaxSize  float64 `yaml:"max_size"`
	Count    int     `yaml:"count"`
	DoorSize float64 `yaml:"door_size"`
}

// SpawnConfig defines where actors appear around the player
type SpawnConfig struct {
	Zombies     int     `yaml:"zombies"`
	NPCs        int     `yaml:"npcs"`
	MinDistance float64 `yaml:"min_distance"`
	MaxDistance float64 `yaml:"max_distance"`
	ProbeSize   float64 `yaml:"probe_size"`
	Attempts    int     `yaml:"attempts"`
	Margin      float64 `yaml:"margin"` // fallback positions stay this far inside the arena
}

// CombatConfig defines shared hit rules
type CombatConfig struct {
	KnockbackForce float64   `yaml:"knockback_force"`
	MeleeMode      MeleeMode `yaml:"melee_mode"`
}

// KnockbackConfig defines how accumulated knockback is consumed
type KnockbackConfig struct {
	Apply          bool    `yaml:"apply"`
	DecayPerSecond float64 `yaml:"decay_per_second"`
}

// DefaultConfig returns the stock tuning of the game
func DefaultConfig() *Config {
	return &Config{
		Arena: ArenaConfig{
			Width:                1280,
			Height:               720,
			FPS:                  60,
			BuildingMargin:       50,
			BuildingPadding:      50,
			SpawnExclusionRadius: 200,
			PlacementAttempts:    50,
		},
		Player: PlayerConfig{
			Speed:          350,
			Radius:         25,
			MaxHealth:      100,
			Damage:         20,
			AttackCooldown: 0.5,
			AttackReach:    30,
		},
		Shockwave: ShockwaveConfig{
			StartRadius: 10,
			MaxRadius:   100,
			GrowthRate:  300,
			Damage:      15,
			Knockback:   400,
			Cooldown:    1.0,
		},
		Zombie: ActorConfig{
			Speed:           120,
			Radius:          25,
			MaxHealth:       50,
			Damage:          5,
			AttackCooldown:  1.5,
			DetectionRadius: 250,
		},
		NPC: NPCConfig{
			ActorConfig: ActorConfig{
				Speed:           150,
				Radius:          25,
				MaxHealth:       75,
				Damage:          8,
				AttackCooldown:  1.2,
				DetectionRadius: 150,
			},
			HostileChance:  0.4,
			FollowDistance: 100,
			AttackRange:    100,
			FriendlyDamage: 10,
		},
		Building: BuildingConfig{
			MinSize:  100,
			MaxSize:  300,
			Count:    5,
			DoorSize: 30,
		},
		Spawn: SpawnConfig{
			Zombies:     5,
			NPCs:        3,
			MinDistance: 300,
			MaxDistance: 500,
			ProbeSize:   50,
			Attempts:    50,
			Margin:      50,
		},
		Combat: CombatConfig{
			KnockbackForce: 300,
			MeleeMode:      MeleeBlockedMove,
		},
		Knockback: KnockbackConfig{
			Apply:          true,
			DecayPerSecond: 8,
		},
	}
}

// LoadConfig loads simulation config from a YAML (or JSON) file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read simulation config: %w", err)
	}

	config := DefaultConfig() // Start with defaults
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse simulation config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid simulation config %s: %w", path, err)
	}

	return config, nil
}

// Validate rejects tuning the simulation cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Arena.Width <= 0 || c.Arena.Height <= 0:
		return errors.New("arena size must be positive")
	case c.Arena.FPS <= 0:
		return errors.New("arena.fps must be positive")
	case c.Player.Radius <= 0 || c.Zombie.Radius <= 0 || c.NPC.Radius <= 0:
		return errors.New("actor radius must be positive")
	case c.Player.MaxHealth <= 0 || c.Zombie.MaxHealth <= 0 || c.NPC.MaxHealth <= 0:
		return errors.New("actor max_health must be positive")
	case c.Zombie.DetectionRadius < 0 || c.NPC.DetectionRadius < 0:
		return errors.New("actor detection_radius must not be negative")
	case c.Shockwave.MaxRadius < c.Shockwave.StartRadius:
		return errors.New("shockwave.max_radius is below start_radius")
	case c.Shockwave.GrowthRate <= 0:
		return errors.New("shockwave.growth_rate must be positive")
	case c.Building.MinSize <= 0 || c.Building.MaxSize < c.Building.MinSize:
		return errors.New("building size range is invalid")
	case c.Building.DoorSize <= 0 || c.Building.DoorSize*2 > c.Building.MinSize:
		return errors.New("building.door_size must fit twice into min_size")
	case c.Spawn.MaxDistance < c.Spawn.MinDistance:
		return errors.New("spawn distance range is inverted")
	case c.NPC.HostileChance < 0 || c.NPC.HostileChance > 1:
		return errors.New("npc.hostile_chance must be within [0, 1]")
	case c.Combat.MeleeMode != MeleeBlockedMove && c.Combat.MeleeMode != MeleeContact:
		return fmt.Errorf("unknown combat.melee_mode %q", c.Combat.MeleeMode)
	case c.Knockback.DecayPerSecond < 0:
		return errors.New("knockback.decay_per_second must not be negative")
	}
	return nil
}

// FrameTime returns the fixed step for one frame at the configured rate.
func (c *Config) FrameTime() float64 {
	return 1 / float64(c.Arena.FPS)
}

// PlayerStats converts the player section into entity stats.
func (c *Config) PlayerStats() entity.Stats {
	return entity.Stats{
		Speed:          c.Player.Speed,
		Radius:         c.Player.Radius,
		MaxHealth:      c.Player.MaxHealth,
		Damage:         c.Player.Damage,
		AttackInterval: c.Player.AttackCooldown,
	}
}

// ZombieStats converts the zombie section into entity stats.
func (c *Config) ZombieStats() entity.Stats {
	return c.Zombie.stats()
}

// NPCStats converts the npc section into entity stats.
func (c *Config) NPCStats() entity.Stats {
	s := c.NPC.stats()
	s.AttackRange = c.NPC.AttackRange
	s.FollowDistance = c.NPC.FollowDistance
	return s
}

// ShockwaveParams converts the shockwave section for new emissions.
func (c *Config) ShockwaveParams() entity.ShockwaveParams {
	return entity.ShockwaveParams{
		StartRadius: c.Shockwave.StartRadius,
		MaxRadius:   c.Shockwave.MaxRadius,
		GrowthRate:  c.Shockwave.GrowthRate,
		Damage:      c.Shockwave.Damage,
		Knockback:   c.Shockwave.Knockback,
	}
}

func (a ActorConfig) stats() entity.Stats {
	return entity.Stats{
		Speed:           a.Speed,
		Radius:          a.Radius,
		MaxHealth:       a.MaxHealth,
		Damage:          a.Damage,
		AttackInterval:  a.AttackCooldown,
		DetectionRadius: a.DetectionRadius,
	}
}
