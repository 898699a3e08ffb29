package testsupport

import (
	"path/filepath"
	"testing"

	"shelfsync/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Notifications.NtfyTopic = ""

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithSyncThreshold overrides the sync drift threshold on the test config.
func WithSyncThreshold(threshold float64) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Sync.Threshold = threshold
	}
}

// WithEditDistanceRatio overrides the title matching tolerance on the test config.
func WithEditDistanceRatio(ratio float64) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Matching.MaxEditDistanceRatio = ratio
	}
}
