// Package config loads runtime tunables from PIGROLL_* environment variables
// Defaults come from the parameter package; unset variables keep them
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/lixenwraith/pigroll/engine"
	"github.com/lixenwraith/pigroll/parameter"
	"github.com/lixenwraith/pigroll/physics"
)

// EnvPrefix is prepended to every variable name
const EnvPrefix = "PIGROLL_"

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config is the full set of runtime tunables
type Config struct {
	// Match
	TargetScore   int    `env:"TARGET_SCORE"`
	PlayerOneName string `env:"PLAYER_ONE"`
	PlayerTwoName string `env:"PLAYER_TWO"`

	// Physics
	Gravity            float64 `env:"GRAVITY"`
	BounceDamping      float64 `env:"BOUNCE_DAMPING"`
	Friction           float64 `env:"FRICTION"`
	AngularDamping     float64 `env:"ANGULAR_DAMPING"`
	WallRestitution    float64 `env:"WALL_RESTITUTION"`
	FloorY             float64 `env:"FLOOR_Y"`
	RingHalfExtent     float64 `env:"RING_HALF_EXTENT"`
	RestSpeedThreshold float64 `env:"REST_SPEED_THRESHOLD"`
	RestHeightBand     float64 `env:"REST_HEIGHT_BAND"`
	SettleDuration     float64 `env:"SETTLE_SECONDS"`
	ImpactThreshold    float64 `env:"IMPACT_THRESHOLD"`

	// Toss
	SpawnHeight float64 `env:"SPAWN_HEIGHT"`
	TossSpeed   float64 `env:"TOSS_SPEED"`
	TossSpin    float64 `env:"TOSS_SPIN"`

	// Timing
	DisplayDelay        time.Duration `env:"DISPLAY_DELAY"`
	SettleCheckInterval time.Duration `env:"SETTLE_CHECK_INTERVAL"`
	SettleConfirmDelay  time.Duration `env:"SETTLE_CONFIRM_DELAY"`
	MaxDelta            time.Duration `env:"MAX_DELTA"`
	PhysicsStep         time.Duration `env:"PHYSICS_STEP"`
	FrameInterval       time.Duration `env:"FRAME_INTERVAL"`
	StreamInterval      time.Duration `env:"STREAM_INTERVAL"`

	// Runtime; zero seed draws one from crypto/rand
	Seed   uint64 `env:"SEED"`
	Listen string `env:"LISTEN"`
	Audio  bool   `env:"AUDIO"`
	Debug  bool   `env:"DEBUG"`
}

// Default returns the stock configuration
func Default() Config {
	ep := engine.DefaultParams()
	pp := ep.Physics
	return Config{
		TargetScore:   parameter.TargetScore,
		PlayerOneName: parameter.DefaultPlayerOneName,
		PlayerTwoName: parameter.DefaultPlayerTwoName,

		Gravity:            pp.Gravity,
		BounceDamping:      pp.BounceDamping,
		Friction:           pp.Friction,
		AngularDamping:     pp.AngularDamping,
		WallRestitution:    pp.WallRestitution,
		FloorY:             pp.FloorY,
		RingHalfExtent:     pp.RingHalfExtent,
		RestSpeedThreshold: pp.RestSpeedThreshold,
		RestHeightBand:     pp.RestHeightBand,
		SettleDuration:     pp.SettleDuration,
		ImpactThreshold:    ep.ImpactThreshold,

		SpawnHeight: ep.Spawn.Height,
		TossSpeed:   ep.Spawn.HorizontalSpeed,
		TossSpin:    ep.Spawn.Spin,

		DisplayDelay:        ep.DisplayDelay,
		SettleCheckInterval: ep.SettleCheckInterval,
		SettleConfirmDelay:  ep.SettleConfirmDelay,
		MaxDelta:            ep.MaxDelta,
		PhysicsStep:         ep.PhysicsStep,
		FrameInterval:       parameter.FrameUpdateInterval,
		StreamInterval:      parameter.StreamUpdateInterval,

		Audio: true,
	}
}

// ParseEnv overlays PIGROLL_* environment variables onto target
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load returns the defaults overlaid with the environment, validated
func Load() (Config, error) {
	cfg := Default()
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every out-of-range value; each error wraps ErrInvalidConfig
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}
	unit := func(v float64) bool { return v >= 0 && v <= 1 }

	check(c.TargetScore > 0, "target score must be positive, got %d", c.TargetScore)
	check(c.PlayerOneName != "" && c.PlayerTwoName != "", "player names must not be empty")
	check(c.Gravity > 0, "gravity must be positive, got %g", c.Gravity)
	check(unit(c.BounceDamping), "bounce damping must be in [0,1], got %g", c.BounceDamping)
	check(unit(c.Friction), "friction must be in [0,1], got %g", c.Friction)
	check(unit(c.AngularDamping), "angular damping must be in [0,1], got %g", c.AngularDamping)
	check(unit(c.WallRestitution), "wall restitution must be in [0,1], got %g", c.WallRestitution)
	check(c.RingHalfExtent >= 0, "ring half extent must not be negative, got %g", c.RingHalfExtent)
	check(c.RestSpeedThreshold > 0, "rest speed threshold must be positive, got %g", c.RestSpeedThreshold)
	check(c.RestHeightBand >= 0, "rest height band must not be negative, got %g", c.RestHeightBand)
	check(c.SettleDuration > 0, "settle duration must be positive, got %g", c.SettleDuration)
	check(c.SpawnHeight >= 0, "spawn height must not be negative, got %g", c.SpawnHeight)
	check(c.DisplayDelay >= 0, "display delay must not be negative, got %v", c.DisplayDelay)
	check(c.SettleCheckInterval > 0, "settle check interval must be positive, got %v", c.SettleCheckInterval)
	check(c.SettleConfirmDelay >= 0, "settle confirm delay must not be negative, got %v", c.SettleConfirmDelay)
	check(c.MaxDelta > 0 && c.MaxDelta <= parameter.MaxDelta, "max delta must be in (0,%v], got %v", parameter.MaxDelta, c.MaxDelta)
	check(c.PhysicsStep > 0, "physics step must be positive, got %v", c.PhysicsStep)
	settle := c.Physics().MaxSettleStep()
	check(c.PhysicsStep.Seconds() < settle, "physics step %v too long for pigs to settle, must be under %.4fs", c.PhysicsStep, settle)
	check(c.FrameInterval > 0, "frame interval must be positive, got %v", c.FrameInterval)
	check(c.StreamInterval > 0, "stream interval must be positive, got %v", c.StreamInterval)

	return errors.Join(errs...)
}

// Physics projects the simulation tunables
func (c Config) Physics() physics.Params {
	return physics.Params{
		Gravity:            c.Gravity,
		BounceDamping:      c.BounceDamping,
		Friction:           c.Friction,
		AngularDamping:     c.AngularDamping,
		WallRestitution:    c.WallRestitution,
		FloorY:             c.FloorY,
		RingHalfExtent:     c.RingHalfExtent,
		RestSpeedThreshold: c.RestSpeedThreshold,
		RestHeightBand:     c.RestHeightBand,
		SettleDuration:     c.SettleDuration,
	}
}

// Rest projects the settle detector
func (c Config) Rest() *physics.RestDetector {
	return c.Physics().RestDetector()
}

// Match projects the controller parameters; seed is passed through as is
func (c Config) Match() engine.Params {
	p := engine.DefaultParams()
	p.Physics = c.Physics()
	p.Spawn.Height = c.SpawnHeight
	p.Spawn.HorizontalSpeed = c.TossSpeed
	p.Spawn.Spin = c.TossSpin
	p.TargetScore = c.TargetScore
	p.Names = [2]string{c.PlayerOneName, c.PlayerTwoName}
	p.DisplayDelay = c.DisplayDelay
	p.SettleCheckInterval = c.SettleCheckInterval
	p.SettleConfirmDelay = c.SettleConfirmDelay
	p.MaxDelta = c.MaxDelta
	p.PhysicsStep = c.PhysicsStep
	p.ImpactThreshold = c.ImpactThreshold
	p.Seed = c.Seed
	return p
}
