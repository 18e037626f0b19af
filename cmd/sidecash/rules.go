package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sidecash/sidecash/internal/cli"
	"github.com/sidecash/sidecash/internal/rules"
)

func rulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Manage classification rule sets",
	}

	cmd.AddCommand(rulesListCmd())
	cmd.AddCommand(rulesValidateCmd())

	return cmd
}

func rulesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the active rule tables",
		RunE: func(_ *cobra.Command, _ []string) error {
			rs, err := loadRuleSet()
			if err != nil {
				return err
			}

			fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("Rule set %s (tax year %d)", rs.Version, rs.TaxYear)))

			fmt.Println(cli.BoldStyle.Render("Platforms"))
			for _, rule := range rs.PlatformRules {
				fmt.Printf("  %-16s %-10s %v\n", rule.Platform, rule.Category, rule.Matchers)
			}

			fmt.Println(cli.BoldStyle.Render("Expenses"))
			for _, rule := range rs.ExpenseRules {
				fmt.Printf("  %-22s %-12s %3.0f%%  %v\n",
					rule.Subcategory, rule.Category, rule.DeductionRatePercent, rule.Matchers)
			}

			fmt.Println(cli.BoldStyle.Render("Gig fallback keywords"))
			fmt.Printf("  %v\n", rs.GigFallbackPatterns)

			return nil
		},
	}
}

func rulesValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate a versioned rules file",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			rs, err := rules.Load(args[0])
			if err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf(
				"✓ %s: %d platform rules, %d expense rules (version %s, tax year %d)",
				args[0], len(rs.PlatformRules), len(rs.ExpenseRules), rs.Version, rs.TaxYear)))

			return nil
		},
	}
}
