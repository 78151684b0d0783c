// Package config provides YAML-based game configuration loading and
// difficulty management for skyhop.
package config

// SkyhopConfig contains every tuning constant for the skyhop simulation.
type SkyhopConfig struct {
	Physics    PhysicsConfig    `yaml:"physics"`
	Player     PlayerConfig     `yaml:"player"`
	Turbo      TurboConfig      `yaml:"turbo"`
	Flight     FlightConfig     `yaml:"flight"`
	Boost      BoostConfig      `yaml:"boost"`
	Safety     SafetyConfig     `yaml:"safety"`
	Level      LevelGenConfig   `yaml:"level"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PhysicsConfig defines world physics and collision tolerances.
// All lengths are in world pixels, all times in seconds.
type PhysicsConfig struct {
	Gravity             float64 `yaml:"gravity"`               // Downward acceleration, px/s^2
	MaxFallSpeed        float64 `yaml:"max_fall_speed"`        // Terminal fall velocity, px/s
	FlightGravityFactor float64 `yaml:"flight_gravity_factor"` // Gravity fraction while flying
	Friction            float64 `yaml:"friction"`              // Per-frame vx retention
	IcyFriction         float64 `yaml:"icy_friction"`          // Per-frame slide retention on icy platforms
	ScrollSpeed         float64 `yaml:"scroll_speed"`          // Base world scroll speed, px/s
	HorizontalMargin    float64 `yaml:"horizontal_margin"`     // Landing overlap tolerance, px
	VerticalBand        float64 `yaml:"vertical_band"`         // Landing gap tolerance, px
	SpringBounce        float64 `yaml:"spring_bounce"`         // Velocity reflection factor on spring platforms
	PowerupRadiusScale  float64 `yaml:"powerup_radius_scale"`  // Pickup radius inflation for powerups
}

// PlayerConfig defines the player entity.
type PlayerConfig struct {
	X              float64 `yaml:"x"`                // Fixed world x position
	Width          float64 `yaml:"width"`            // Hitbox width, px
	Height         float64 `yaml:"height"`           // Hitbox height, px
	MaxHealth      int     `yaml:"max_health"`       // Health points
	MaxJumpForce   float64 `yaml:"max_jump_force"`   // Jump impulse, px/s (negative = up)
	SuperJumpForce float64 `yaml:"super_jump_force"` // Jump impulse with the super-jump powerup
	InvulnDuration float64 `yaml:"invuln_duration"`  // Invulnerability window after damage, s
	ShieldInvuln   float64 `yaml:"shield_invuln"`    // Invulnerability granted when a shield absorbs a hit, s
	DamageFlash    float64 `yaml:"damage_flash"`     // Visual damage flash duration, s
}

// TurboConfig defines the turbo ability.
type TurboConfig struct {
	Duration      float64 `yaml:"duration"`       // Active window, s
	Cooldown      float64 `yaml:"cooldown"`       // Cooldown after expiry, s
	BaseMult      float64 `yaml:"base_mult"`      // Speed multiplier at level 1
	PerLevelMult  float64 `yaml:"per_level_mult"` // Extra multiplier per level
	MaxMult       float64 `yaml:"max_mult"`       // Multiplier cap
	TrailLife     float64 `yaml:"trail_life"`     // Trail particle lifetime cap, s
	TrailInterval float64 `yaml:"trail_interval"` // Seconds between trail particle bursts
}

// FlightConfig defines button-triggered flight and the instant-flight bonus.
type FlightConfig struct {
	Duration         float64 `yaml:"duration"`           // Active window, s
	Cooldown         float64 `yaml:"cooldown"`           // Cooldown after expiry, s
	InstantDuration  float64 `yaml:"instant_duration"`   // Bonus-triggered flight window, s
	Step             float64 `yaml:"step"`               // Target Y change per up/down command, px
	ApproachGain     float64 `yaml:"approach_gain"`      // Proportional control gain, 1/s
	MaxApproachSpeed float64 `yaml:"max_approach_speed"` // Approach velocity cap, px/s
	HoverAmplitude   float64 `yaml:"hover_amplitude"`    // Hover oscillation amplitude, px
	HoverRate        float64 `yaml:"hover_rate"`         // Hover oscillation rate, rad/s
	Margin           float64 `yaml:"margin"`             // Target Y clamp margin from canvas edges, px
}

// BoostConfig defines the boost burst and its combo system.
type BoostConfig struct {
	Duration      float64 `yaml:"duration"`        // Burst window, s
	DecelDuration float64 `yaml:"decel_duration"`  // Ease-out deceleration window, s
	Speed         float64 `yaml:"speed"`           // Burst velocity, px/s
	ComboTimeout  float64 `yaml:"combo_timeout"`   // Rolling combo decay window, s
	ComboBonus    float64 `yaml:"combo_bonus"`     // Speed bonus per combo step
	ComboMaxBonus float64 `yaml:"combo_max_bonus"` // Speed bonus cap
}

// SafetyConfig defines the safety platform rescue system.
type SafetyConfig struct {
	MaxCharges     int     `yaml:"max_charges"`     // Allowed emergency uses
	DissolveAfter  float64 `yaml:"dissolve_after"`  // Time on platform before forced dissolve, s
	RechargeWindow float64 `yaml:"recharge_window"` // Idle window before charges replenish, s
	RechargeRamp   float64 `yaml:"recharge_ramp"`   // Animated replenish ramp duration, s
	BatchInterval  float64 `yaml:"batch_interval"`  // Seconds between rescue platform batches
	TickStart      float64 `yaml:"tick_start"`      // Initial tick cue interval, s
	TickMin        float64 `yaml:"tick_min"`        // Tick cue interval floor, s
	Width          float64 `yaml:"width"`           // Safety platform width, px
	Height         float64 `yaml:"height"`          // Safety platform height, px
	BottomMargin   float64 `yaml:"bottom_margin"`   // Distance from canvas bottom, px
}

// LevelGenConfig defines procedural placement of platforms, obstacles and
// collectibles.
type LevelGenConfig struct {
	MinGap            float64 `yaml:"min_gap"` // Minimum horizontal gap between platforms, px
	MaxGap            float64 `yaml:"max_gap"` // Maximum horizontal gap between platforms, px
	PlatformMinWidth  float64 `yaml:"platform_min_width"`
	PlatformMaxWidth  float64 `yaml:"platform_max_width"`
	PlatformHeight    float64 `yaml:"platform_height"`
	YBandCenter       float64 `yaml:"y_band_center"` // Platform Y band center, fraction of canvas height
	YBandSpread       float64 `yaml:"y_band_spread"` // Platform Y band half-width, fraction of canvas height
	ObstacleChance    float64 `yaml:"obstacle_chance"`
	CollectibleChance float64 `yaml:"collectible_chance"`
	PowerupChance     float64 `yaml:"powerup_chance"`
	IcyChance         float64 `yaml:"icy_chance"`
	CrumblingChance   float64 `yaml:"crumbling_chance"`
	SpringChance      float64 `yaml:"spring_chance"`
	ObstacleSize      float64 `yaml:"obstacle_size"` // Obstacle edge length, px
	CollectibleRadius float64 `yaml:"collectible_radius"`
	CrumbleDelay      float64 `yaml:"crumble_delay"` // Seconds a crumbling platform survives after contact
	LevelLength       float64 `yaml:"level_length"`  // Scrolled distance per level, px
}

// DifficultyConfig defines how generation scales with the level number.
type DifficultyConfig struct {
	Enabled      bool    `yaml:"enabled"`       // Whether difficulty progresses with level
	Growth       float64 `yaml:"growth"`        // Spacing factor growth per level
	MaxFactor    float64 `yaml:"max_factor"`    // Spacing factor cap
	ScrollGrowth float64 `yaml:"scroll_growth"` // Scroll speed growth per level
	MaxScroll    float64 `yaml:"max_scroll"`    // Scroll speed multiplier cap
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ApplySkyhopPreset modifies the config based on a difficulty preset.
func ApplySkyhopPreset(cfg *SkyhopConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	case DifficultyEasy:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.Growth = 0.10
		cfg.Difficulty.ScrollGrowth = 0.04
	case DifficultyNormal:
		cfg.Difficulty.Enabled = true
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.Growth = 0.30
		cfg.Difficulty.ScrollGrowth = 0.10
	}
}
