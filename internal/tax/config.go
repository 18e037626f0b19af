// Package tax projects self-employment, federal, and state tax liability
// for independent workers.
package tax

import (
	"fmt"

	"github.com/spf13/viper"
)

// Bracket is one marginal federal income tax bracket. Lower is the taxable
// income where the bracket begins; the bracket's rate applies only to the
// portion of taxable income above Lower and below the next bracket's Lower.
type Bracket struct {
	Rate  float64 `mapstructure:"rate" yaml:"rate"`
	Lower float64 `mapstructure:"lower" yaml:"lower"`
}

// YearConfig holds every tax-year constant the engine needs. Configs are
// immutable values passed explicitly, so different years can be projected
// concurrently.
type YearConfig struct {
	Brackets                    []Bracket `mapstructure:"brackets" yaml:"brackets"`
	Year                        int       `mapstructure:"year" yaml:"year"`
	StandardDeduction           float64   `mapstructure:"standard_deduction" yaml:"standard_deduction"`
	SSWageBase                  float64   `mapstructure:"ss_wage_base" yaml:"ss_wage_base"`
	SETaxableShare              float64   `mapstructure:"se_taxable_share" yaml:"se_taxable_share"`
	SSRate                      float64   `mapstructure:"ss_rate" yaml:"ss_rate"`
	MedicareRate                float64   `mapstructure:"medicare_rate" yaml:"medicare_rate"`
	AdditionalMedicareRate      float64   `mapstructure:"additional_medicare_rate" yaml:"additional_medicare_rate"`
	AdditionalMedicareThreshold float64   `mapstructure:"additional_medicare_threshold" yaml:"additional_medicare_threshold"`
	DefaultStateRate            float64   `mapstructure:"default_state_rate" yaml:"default_state_rate"`
}

// Year2024 returns the single-filer constants for tax year 2024.
func Year2024() YearConfig {
	return YearConfig{
		Year:                        2024,
		StandardDeduction:           14600,
		SSWageBase:                  168600,
		SETaxableShare:              0.9235,
		SSRate:                      0.124,
		MedicareRate:                0.029,
		AdditionalMedicareRate:      0.009,
		AdditionalMedicareThreshold: 200000,
		// Flat-rate state approximation, default roughly California.
		DefaultStateRate: 0.093,
		Brackets: []Bracket{
			{Rate: 0.10, Lower: 0},
			{Rate: 0.12, Lower: 11600},
			{Rate: 0.22, Lower: 47150},
			{Rate: 0.24, Lower: 100525},
			{Rate: 0.32, Lower: 191950},
			{Rate: 0.35, Lower: 243725},
			{Rate: 0.37, Lower: 609350},
		},
	}
}

// Year2025 returns the single-filer constants for tax year 2025.
func Year2025() YearConfig {
	return YearConfig{
		Year:                        2025,
		StandardDeduction:           15000,
		SSWageBase:                  176100,
		SETaxableShare:              0.9235,
		SSRate:                      0.124,
		MedicareRate:                0.029,
		AdditionalMedicareRate:      0.009,
		AdditionalMedicareThreshold: 200000,
		DefaultStateRate:            0.093,
		Brackets: []Bracket{
			{Rate: 0.10, Lower: 0},
			{Rate: 0.12, Lower: 11925},
			{Rate: 0.22, Lower: 48475},
			{Rate: 0.24, Lower: 103350},
			{Rate: 0.32, Lower: 197300},
			{Rate: 0.35, Lower: 250525},
			{Rate: 0.37, Lower: 626350},
		},
	}
}

// ForYear returns the built-in config for a supported tax year.
func ForYear(year int) (YearConfig, error) {
	switch year {
	case 2024:
		return Year2024(), nil
	case 2025:
		return Year2025(), nil
	default:
		return YearConfig{}, fmt.Errorf("no built-in tax tables for year %d", year)
	}
}

// LoadConfig reads a year's tax tables from a YAML file, for years without
// built-in tables.
func LoadConfig(path string) (YearConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return YearConfig{}, fmt.Errorf("failed to read tax table %s: %w", path, err)
	}

	var cfg YearConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return YearConfig{}, fmt.Errorf("failed to parse tax table %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return YearConfig{}, fmt.Errorf("tax table %s: %w", path, err)
	}

	return cfg, nil
}

func (c YearConfig) validate() error {
	if len(c.Brackets) == 0 {
		return fmt.Errorf("no federal brackets defined")
	}
	if c.Brackets[0].Lower != 0 {
		return fmt.Errorf("first bracket must start at 0")
	}
	for i := 1; i < len(c.Brackets); i++ {
		if c.Brackets[i].Lower <= c.Brackets[i-1].Lower {
			return fmt.Errorf("bracket thresholds must be strictly increasing")
		}
	}
	if c.StandardDeduction < 0 || c.SSWageBase <= 0 {
		return fmt.Errorf("standard deduction and wage base must be positive")
	}
	return nil
}
