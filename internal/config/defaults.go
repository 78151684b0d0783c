package config

import (
	_ "embed"
)

//go:embed defaults/skyhop.yaml
var defaultSkyhopYAML []byte

// DefaultSkyhopConfig returns the default skyhop configuration.
// Kept in sync with defaults/skyhop.yaml; the hardcoded copy is the
// fallback of last resort if the embedded YAML fails to parse.
func DefaultSkyhopConfig() SkyhopConfig {
	return SkyhopConfig{
		Physics: PhysicsConfig{
			Gravity:             1200,
			MaxFallSpeed:        700,
			FlightGravityFactor: 0.3,
			Friction:            0.92,
			IcyFriction:         0.96,
			ScrollSpeed:         180,
			HorizontalMargin:    5,
			VerticalBand:        10,
			SpringBounce:        0.85,
			PowerupRadiusScale:  1.5,
		},
		Player: PlayerConfig{
			X:              140,
			Width:          28,
			Height:         36,
			MaxHealth:      5,
			MaxJumpForce:   -550,
			SuperJumpForce: -800,
			InvulnDuration: 1.5,
			ShieldInvuln:   0.8,
			DamageFlash:    0.4,
		},
		Turbo: TurboConfig{
			Duration:      4,
			Cooldown:      10,
			BaseMult:      1.5,
			PerLevelMult:  0.25,
			MaxMult:       3.0,
			TrailLife:     0.6,
			TrailInterval: 0.05,
		},
		Flight: FlightConfig{
			Duration:         6,
			Cooldown:         12,
			InstantDuration:  4,
			Step:             40,
			ApproachGain:     5,
			MaxApproachSpeed: 400,
			HoverAmplitude:   3,
			HoverRate:        6,
			Margin:           50,
		},
		Boost: BoostConfig{
			Duration:      0.6,
			DecelDuration: 0.5,
			Speed:         320,
			ComboTimeout:  4,
			ComboBonus:    0.15,
			ComboMaxBonus: 1.5,
		},
		Safety: SafetyConfig{
			MaxCharges:     4,
			DissolveAfter:  3,
			RechargeWindow: 5,
			RechargeRamp:   0.6,
			BatchInterval:  2,
			TickStart:      0.3,
			TickMin:        0.1,
			Width:          90,
			Height:         14,
			BottomMargin:   20,
		},
		Level: LevelGenConfig{
			MinGap:            80,
			MaxGap:            220,
			PlatformMinWidth:  70,
			PlatformMaxWidth:  160,
			PlatformHeight:    14,
			YBandCenter:       0.7,
			YBandSpread:       0.15,
			ObstacleChance:    0.25,
			CollectibleChance: 0.35,
			PowerupChance:     0.08,
			IcyChance:         0.15,
			CrumblingChance:   0.12,
			SpringChance:      0.10,
			ObstacleSize:      22,
			CollectibleRadius: 10,
			CrumbleDelay:      0.8,
			LevelLength:       1500,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			Growth:       0.18,
			MaxFactor:    3.0,
			ScrollGrowth: 0.06,
			MaxScroll:    2.2,
		},
	}
}
