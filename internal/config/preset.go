package config

import "fmt"

// SpeedPreset represents a named fixed pace.
type SpeedPreset string

const (
	SpeedSlow   SpeedPreset = "slow"
	SpeedNormal SpeedPreset = "normal"
	SpeedFast   SpeedPreset = "fast"
)

// IntervalForPreset returns the tick interval in milliseconds for a preset.
func IntervalForPreset(preset SpeedPreset) (int, error) {
	switch preset {
	case SpeedSlow:
		return 220, nil
	case SpeedNormal:
		return 150, nil
	case SpeedFast:
		return 90, nil
	default:
		return 0, fmt.Errorf("%w: speed preset %q", ErrInvalidConfig, preset)
	}
}

// ApplySpeedPreset sets the tick interval from a preset. An empty preset
// keeps the configured interval.
func ApplySpeedPreset(cfg *SnakeConfig, preset SpeedPreset) error {
	if preset == "" {
		return nil
	}
	ms, err := IntervalForPreset(preset)
	if err != nil {
		return err
	}
	cfg.Tick.IntervalMS = ms
	return nil
}
