package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Guffawaffle/majel/internal/cli/formatter"
)

func newRulesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Manage behavioral rules applied to model replies",
	}

	cmd.AddCommand(
		newRulesAddCmd(app),
		newRulesListCmd(app),
		newRulesEnableCmd(app),
		newRulesDisableCmd(app),
		newRulesRemoveCmd(app),
	)

	return cmd
}

func newRulesAddCmd(app *App) *cobra.Command {
	var taskType, severity string

	cmd := &cobra.Command{
		Use:   "add <text...>",
		Short: "Add a behavioral rule",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rule, err := app.Rules.Add(cmd.Context(), taskType, strings.Join(args, " "), severity)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added rule %s\n", rule.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&taskType, "task", "", "task type the rule applies to (empty = all)")
	cmd.Flags().StringVar(&severity, "severity", "should", "rule severity: must, should, or style")
	return cmd
}

func newRulesListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List behavioral rules",
		RunE: func(cmd *cobra.Command, args []string) error {
			rules, err := app.Rules.List(cmd.Context(), all)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRuleList(rules))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "include disabled rules")
	return cmd
}

func newRulesEnableCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "enable <id>",
		Short: "Enable a rule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Rules.SetEnabled(cmd.Context(), args[0], true)
		},
	}
}

func newRulesDisableCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "disable <id>",
		Short: "Disable a rule without deleting it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Rules.SetEnabled(cmd.Context(), args[0], false)
		},
	}
}

func newRulesRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete a rule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Rules.Delete(cmd.Context(), args[0])
		},
	}
}
