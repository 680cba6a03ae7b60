package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/Guffawaffle/majel/internal/cli/formatter"
)

func newRosterCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Manage the officer roster",
	}

	cmd.AddCommand(
		newRosterImportCmd(app),
		newRosterListCmd(app),
		newRosterShowCmd(app),
	)

	return cmd
}

func newRosterImportCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import or refresh the roster from a CSV export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			count, err := app.Roster.Count(ctx)
			if err != nil {
				return err
			}

			// Re-import overwrites matching officers; confirm unless --yes.
			if count > 0 && !yes {
				interactive := app.IsInteractive == nil || app.IsInteractive()
				if !interactive {
					return fmt.Errorf("roster already has %d officers; pass --yes to re-import", count)
				}

				confirmed := false
				form := huh.NewForm(huh.NewGroup(
					huh.NewConfirm().
						Title(fmt.Sprintf("Roster already has %d officers. Re-import and update them?", count)).
						Value(&confirmed),
				))
				if err := form.Run(); err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Import cancelled."))
					return nil
				}
			}

			result, err := app.Roster.ImportFile(ctx, args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d officers from %s\n", result.Imported, result.Source)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the re-import confirmation")
	return cmd
}

func newRosterListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List imported officers",
		RunE: func(cmd *cobra.Command, args []string) error {
			officers, err := app.Roster.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatOfficerList(officers))
			return nil
		},
	}
}

func newRosterShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show one officer's imported record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			officer, err := app.Roster.GetByName(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatOfficer(officer))
			return nil
		},
	}
}
