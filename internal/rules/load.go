package rules

import (
	"fmt"

	"github.com/spf13/viper"
)

// Load reads a versioned rule set from a YAML file.
//
// Each tax year (or rule revision) lives in its own file, so swapping in a
// new year's tables never requires touching classification code.
func Load(path string) (*RuleSet, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read rules file %s: %w", path, err)
	}

	var rs RuleSet
	if err := v.Unmarshal(&rs); err != nil {
		return nil, fmt.Errorf("failed to parse rules file %s: %w", path, err)
	}

	if err := rs.Validate(); err != nil {
		return nil, fmt.Errorf("rules file %s: %w", path, err)
	}

	return &rs, nil
}
