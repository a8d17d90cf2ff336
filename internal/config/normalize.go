// internal/config/normalize.go
package config

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	// offline_threshold 0 means "minimum meaningful threshold"
	if cfg.Device.OfflineThreshold == 0 {
		cfg.Device.OfflineThreshold = 1
	}
}
