package config

// DifficultyManager derives generation parameters from the level number.
// The level generator scales its platform spacing bounds linearly with the
// factor, which is capped so late levels stay beatable.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a manager for the given difficulty config.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// Factor returns the spacing scale factor for the given 1-based level.
// Level 1 is always 1.0; growth is linear and capped at MaxFactor.
func (d *DifficultyManager) Factor(level int) float64 {
	if !d.cfg.Enabled || level <= 1 {
		return 1.0
	}
	f := 1.0 + float64(level-1)*d.cfg.Growth
	if f > d.cfg.MaxFactor {
		f = d.cfg.MaxFactor
	}
	return f
}

// ScrollMult returns the scroll speed multiplier for the given level.
func (d *DifficultyManager) ScrollMult(level int) float64 {
	if !d.cfg.Enabled || level <= 1 {
		return 1.0
	}
	m := 1.0 + float64(level-1)*d.cfg.ScrollGrowth
	if m > d.cfg.MaxScroll {
		m = d.cfg.MaxScroll
	}
	return m
}
