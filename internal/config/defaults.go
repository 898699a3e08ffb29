package config

const (
	defaultDataDir = "~/.local/share/shelfsync"
	defaultLogDir  = "~/.local/share/shelfsync/logs"

	// defaultMaxEditDistanceRatio tolerates edits up to 30% of the shorter
	// title's length. Inherited tuning; no empirical derivation exists.
	defaultMaxEditDistanceRatio = 0.30
	defaultSharedTokenLength    = 4

	// defaultSyncThreshold treats the platforms as in sync when their progress
	// fractions differ by less than 5%.
	defaultSyncThreshold = 0.05

	defaultNotifyRequestTimeout = 10

	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Matching: Matching{
			MaxEditDistanceRatio: defaultMaxEditDistanceRatio,
			SharedTokenLength:    defaultSharedTokenLength,
		},
		Sync: Sync{
			Threshold: defaultSyncThreshold,
		},
		Notifications: Notifications{
			RequestTimeout: defaultNotifyRequestTimeout,
			Match:          true,
			Errors:         true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
