package main

import (
	"fmt"

	"github.com/jonathan/resume-matcher/internal/config"
)

// mergedConfig combines CLI flag values with the optional config file. Flag
// values win; the file only fills fields the flags left empty. Bool flags are
// never overridden by the file because an unset flag and an explicit false
// are indistinguishable.
func mergedConfig(flagCfg config.Config) (config.Config, error) {
	if rootConfigPath == "" {
		if err := flagCfg.Validate(); err != nil {
			return config.Config{}, err
		}
		return flagCfg, nil
	}

	fileCfg, err := config.LoadConfig(rootConfigPath)
	if err != nil {
		return config.Config{}, err
	}

	merged := flagCfg.MergeWithDefaults(*fileCfg)
	merged.StrictLinks = flagCfg.StrictLinks || fileCfg.StrictLinks
	merged.ClassifyLinks = flagCfg.ClassifyLinks || fileCfg.ClassifyLinks
	merged.FormatPhone = flagCfg.FormatPhone || fileCfg.FormatPhone
	merged.Verbose = flagCfg.Verbose || fileCfg.Verbose

	if err := merged.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return merged, nil
}
