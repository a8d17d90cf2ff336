// internal/config/config.go
package config

type Config struct {
	Device DeviceConfig `yaml:"device"`
}

// ---- DEVICE ----

type DeviceConfig struct {
	// Bus is the periph.io bus name ("/dev/i2c-1", "1"). Empty selects the
	// first available bus.
	Bus string `yaml:"bus"`

	// Addr is the 7-bit device address.
	Addr uint16 `yaml:"addr"`

	TimeoutMs int `yaml:"timeout_ms"`

	// OfflineThreshold is the consecutive-failure count at which the
	// device is classified offline. 0 means "use the minimum" (1).
	OfflineThreshold uint8 `yaml:"offline_threshold"`

	Poll PollConfig `yaml:"poll"`
}

// ---- POLL ----

type PollConfig struct {
	IntervalMs int `yaml:"interval_ms"`
}
