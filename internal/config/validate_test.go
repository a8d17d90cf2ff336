// internal/config/validate_test.go
package config

import "testing"

// helper to build a valid config quickly
func valid() *Config {
	return &Config{
		Device: DeviceConfig{
			Bus:              "1",
			Addr:             0x76,
			TimeoutMs:        50,
			OfflineThreshold: 5,
			Poll:             PollConfig{IntervalMs: 1000},
		},
	}
}

func TestValidateAccepts(t *testing.T) {
	if err := Validate(valid()); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidateRejectsAddrOutOfRange(t *testing.T) {
	for _, addr := range []uint16{0x00, 0x07, 0x78, 0x100} {
		cfg := valid()
		cfg.Device.Addr = addr
		if err := Validate(cfg); err == nil {
			t.Fatalf("addr 0x%02X accepted", addr)
		}
	}
}

func TestValidateRejectsZeroTimeout(t *testing.T) {
	cfg := valid()
	cfg.Device.TimeoutMs = 0
	if err := Validate(cfg); err == nil {
		t.Fatalf("zero timeout accepted")
	}
}

func TestValidateRejectsZeroInterval(t *testing.T) {
	cfg := valid()
	cfg.Device.Poll.IntervalMs = 0
	if err := Validate(cfg); err == nil {
		t.Fatalf("zero poll interval accepted")
	}
}

func TestNormalizeCoercesThreshold(t *testing.T) {
	cfg := valid()
	cfg.Device.OfflineThreshold = 0
	Normalize(cfg)
	if cfg.Device.OfflineThreshold != 1 {
		t.Fatalf("threshold: got=%d want=1", cfg.Device.OfflineThreshold)
	}

	// non-zero thresholds are left alone
	cfg.Device.OfflineThreshold = 5
	Normalize(cfg)
	if cfg.Device.OfflineThreshold != 5 {
		t.Fatalf("threshold: got=%d want=5", cfg.Device.OfflineThreshold)
	}
}
