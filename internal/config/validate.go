// internal/config/validate.go
package config

import "fmt"

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	d := cfg.Device

	// 7-bit address space, reserved ranges excluded
	if d.Addr < 0x08 || d.Addr > 0x77 {
		return fmt.Errorf(
			"device: addr 0x%02X outside the usable 7-bit range 0x08-0x77",
			d.Addr,
		)
	}

	if d.TimeoutMs <= 0 {
		return fmt.Errorf("device: timeout_ms must be > 0, got %d", d.TimeoutMs)
	}

	if d.Poll.IntervalMs <= 0 {
		return fmt.Errorf("device: poll.interval_ms must be > 0, got %d", d.Poll.IntervalMs)
	}

	return nil
}
