package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/ball-arena/core"
	"github.com/lixenwraith/ball-arena/parameter"
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config is the full match configuration
// Zero-valued fields in a loaded file keep their defaults
type Config struct {
	Seed    uint64        `yaml:"seed"`
	Scoring ScoringConfig `yaml:"scoring"`
	Arena   ArenaConfig   `yaml:"arena"`
	Barrier BarrierConfig `yaml:"barrier"`
	Paddle  PaddleConfig  `yaml:"paddle"`
	Ball    BallConfig    `yaml:"ball"`
	Timing  TimingConfig  `yaml:"timing"`
	Teams   TeamsConfig   `yaml:"teams"`

	// FlowPath optionally replaces the embedded game-flow graph
	FlowPath string `yaml:"flow_path"`
}

// ScoringConfig controls goal hit points and the match length
type ScoringConfig struct {
	HitPoints   uint32 `yaml:"hit_points"`
	Damage      uint32 `yaml:"damage"`
	RoundsToWin int    `yaml:"rounds_to_win"`
}

// ArenaConfig is the square playfield on the XZ plane
type ArenaConfig struct {
	HalfExtent        float64 `yaml:"half_extent"`
	GoalDepth         float64 `yaml:"goal_depth"`
	WallThickness     float64 `yaml:"wall_thickness"`
	OutOfBoundsMargin float64 `yaml:"out_of_bounds_margin"`
}

// BarrierConfig is the corner cylinder geometry
// Radius zero means derived from Diameter
type BarrierConfig struct {
	Diameter float64 `yaml:"diameter"`
	Radius   float64 `yaml:"radius"`
	Height   float64 `yaml:"height"`
}

// ShapeRadius returns the cylinder radius used for shape generation
func (b BarrierConfig) ShapeRadius() float64 {
	if b.Radius == 0 {
		return b.Diameter * 0.5
	}
	return b.Radius
}

// PaddleConfig controls paddle geometry, movement and deflection bonus
type PaddleConfig struct {
	Offset     float64 `yaml:"offset"`
	Length     float64 `yaml:"length"`
	Thickness  float64 `yaml:"thickness"`
	Speed      float64 `yaml:"speed"`
	SpinFactor float64 `yaml:"spin_factor"`
	SpeedBonus float64 `yaml:"speed_bonus"`
	AIDeadZone float64 `yaml:"ai_dead_zone"`
	AIReaction float64 `yaml:"ai_reaction"`
}

// BallConfig controls serving
type BallConfig struct {
	Radius        float64       `yaml:"radius"`
	ServeSpeed    float64       `yaml:"serve_speed"`
	MaxSpeed      float64       `yaml:"max_speed"`
	MaxBalls      int           `yaml:"max_balls"`
	ServeInterval time.Duration `yaml:"serve_interval"`
}

// TimingConfig holds fade and flow durations
type TimingConfig struct {
	FadeIn    time.Duration `yaml:"fade_in"`
	FadeOut   time.Duration `yaml:"fade_out"`
	Countdown time.Duration `yaml:"countdown"`
	RoundOver time.Duration `yaml:"round_over"`
}

// TeamsConfig assigns goal sides to the allied team; other sides are enemies
type TeamsConfig struct {
	Allies []string `yaml:"allies"`

	// AIAllies hands allied paddles to the AI instead of the keyboard
	AIAllies bool `yaml:"ai_allies"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Seed: parameter.DefaultRandomSeed,
		Scoring: ScoringConfig{
			HitPoints:   parameter.GoalHitPoints,
			Damage:      parameter.GoalDamage,
			RoundsToWin: parameter.RoundsToWin,
		},
		Arena: ArenaConfig{
			HalfExtent:        parameter.ArenaHalfExtent,
			GoalDepth:         parameter.GoalDepth,
			WallThickness:     parameter.WallThickness,
			OutOfBoundsMargin: parameter.OutOfBoundsMargin,
		},
		Barrier: BarrierConfig{
			Diameter: parameter.BarrierDiameter,
			Radius:   parameter.BarrierRadius,
			Height:   parameter.BarrierHeight,
		},
		Paddle: PaddleConfig{
			Offset:     parameter.PaddleOffset,
			Length:     parameter.PaddleLength,
			Thickness:  parameter.PaddleThickness,
			Speed:      parameter.PaddleSpeed,
			SpinFactor: parameter.PaddleSpinFactor,
			SpeedBonus: parameter.PaddleSpeedBonus,
			AIDeadZone: parameter.AIDeadZone,
			AIReaction: parameter.AIReactionFraction,
		},
		Ball: BallConfig{
			Radius:        parameter.BallRadius,
			ServeSpeed:    parameter.BallServeSpeed,
			MaxSpeed:      parameter.BallMaxSpeed,
			MaxBalls:      parameter.MaxBalls,
			ServeInterval: parameter.BallServeInterval,
		},
		Timing: TimingConfig{
			FadeIn:    parameter.FadeInDuration,
			FadeOut:   parameter.FadeOutDuration,
			Countdown: parameter.CountdownDuration,
			RoundOver: parameter.RoundOverDelay,
		},
		Teams: TeamsConfig{
			Allies: []string{parameter.DefaultAlliesGoalSide},
		},
	}
}

// Load reads a YAML file over the defaults and validates the result
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges and team layout
func (c *Config) Validate() error {
	switch {
	case c.Scoring.HitPoints == 0:
		return invalid("scoring.hit_points must be > 0")
	case c.Scoring.Damage == 0:
		return invalid("scoring.damage must be > 0")
	case c.Scoring.RoundsToWin <= 0:
		return invalid("scoring.rounds_to_win must be > 0, got %d", c.Scoring.RoundsToWin)
	case c.Arena.HalfExtent <= 0:
		return invalid("arena.half_extent must be > 0, got %.2f", c.Arena.HalfExtent)
	case c.Arena.GoalDepth <= 0 || c.Arena.WallThickness <= 0:
		return invalid("arena.goal_depth and arena.wall_thickness must be > 0")
	case c.Arena.OutOfBoundsMargin < 0:
		return invalid("arena.out_of_bounds_margin must be >= 0")
	case c.Barrier.Diameter <= 0 || c.Barrier.Height <= 0:
		return invalid("barrier diameter and height must be > 0")
	case c.Barrier.Radius != 0 && math.Abs(c.Barrier.Radius-c.Barrier.Diameter*0.5) > 1e-9:
		return invalid("barrier.radius(%.3f) must be half of barrier.diameter(%.3f)", c.Barrier.Radius, c.Barrier.Diameter)
	case c.Barrier.Diameter >= c.Arena.HalfExtent:
		return invalid("barrier.diameter(%.2f) must be smaller than arena.half_extent(%.2f)", c.Barrier.Diameter, c.Arena.HalfExtent)
	case c.Paddle.Length <= 0 || c.Paddle.Thickness <= 0 || c.Paddle.Speed <= 0:
		return invalid("paddle length, thickness and speed must be > 0")
	case c.Paddle.Length >= 2*c.Arena.HalfExtent:
		return invalid("paddle.length(%.2f) must fit the arena", c.Paddle.Length)
	case c.Paddle.Offset < 0 || c.Paddle.Offset >= c.Arena.HalfExtent:
		return invalid("paddle.offset(%.2f) out of range", c.Paddle.Offset)
	case c.Paddle.SpeedBonus < 1:
		return invalid("paddle.speed_bonus must be >= 1, got %.2f", c.Paddle.SpeedBonus)
	case c.Paddle.AIReaction <= 0 || c.Paddle.AIReaction > 1:
		return invalid("paddle.ai_reaction must be in (0, 1]")
	case c.Ball.Radius <= 0 || c.Ball.ServeSpeed <= 0:
		return invalid("ball radius and serve_speed must be > 0")
	case c.Ball.MaxSpeed < c.Ball.ServeSpeed:
		return invalid("ball.max_speed(%.2f) < ball.serve_speed(%.2f)", c.Ball.MaxSpeed, c.Ball.ServeSpeed)
	case c.Ball.MaxBalls <= 0:
		return invalid("ball.max_balls must be > 0")
	case c.Ball.ServeInterval < 0:
		return invalid("ball.serve_interval must be >= 0")
	case c.Timing.FadeIn < 0 || c.Timing.FadeOut < 0 || c.Timing.Countdown < 0 || c.Timing.RoundOver < 0:
		return invalid("timing durations must be >= 0")
	}

	allies, err := c.AlliedSides()
	if err != nil {
		return err
	}
	if len(allies) == 0 || len(allies) == int(core.SideCount) {
		return invalid("teams.allies must leave both teams at least one side, got %d", len(allies))
	}
	return nil
}

// AlliedSides resolves and de-duplicates teams.allies
func (c *Config) AlliedSides() ([]core.GoalSide, error) {
	seen := make(map[core.GoalSide]bool, len(c.Teams.Allies))
	sides := make([]core.GoalSide, 0, len(c.Teams.Allies))
	for _, name := range c.Teams.Allies {
		side, ok := core.ParseSide(name)
		if !ok {
			return nil, invalid("teams.allies: unknown side %q", name)
		}
		if seen[side] {
			return nil, invalid("teams.allies: duplicate side %q", name)
		}
		seen[side] = true
		sides = append(sides, side)
	}
	return sides, nil
}

// TeamOf returns the team defending a side; invalid layouts fall back to enemies
func (c *Config) TeamOf(side core.GoalSide) core.Team {
	for _, name := range c.Teams.Allies {
		if s, ok := core.ParseSide(name); ok && s == side {
			return core.TeamAllies
		}
	}
	return core.TeamEnemies
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}
