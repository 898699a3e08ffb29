package config

import "errors"

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateMatching(); err != nil {
		return err
	}
	if err := c.validateSync(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.Paths.DataDir == "" {
		return errors.New("paths.data_dir must be set")
	}
	if c.Paths.LogDir == "" {
		return errors.New("paths.log_dir must be set")
	}
	return nil
}

func (c *Config) validateMatching() error {
	if c.Matching.MaxEditDistanceRatio < 0 || c.Matching.MaxEditDistanceRatio > 1 {
		return errors.New("matching.max_edit_distance_ratio must be between 0 and 1")
	}
	if c.Matching.SharedTokenLength < 1 {
		return errors.New("matching.shared_token_length must be at least 1")
	}
	return nil
}

func (c *Config) validateSync() error {
	if c.Sync.Threshold < 0 || c.Sync.Threshold > 1 {
		return errors.New("sync.threshold must be between 0 and 1")
	}
	return nil
}
