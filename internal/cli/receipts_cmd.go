package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Guffawaffle/majel/internal/cli/formatter"
)

func newReceiptsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "receipts",
		Short: "Inspect validation receipts",
	}

	cmd.AddCommand(
		newReceiptsListCmd(app),
		newReceiptsShowCmd(app),
	)

	return cmd
}

func newReceiptsListCmd(app *App) *cobra.Command {
	var sessionID string
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent receipts",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if sessionID != "" {
				receipts, err := app.Receipts.ListBySession(ctx, sessionID)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatReceiptList(receipts))
				return nil
			}

			receipts, err := app.Receipts.ListRecent(ctx, limit)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatReceiptList(receipts))
			return nil
		},
	}

	cmd.Flags().StringVar(&sessionID, "session", "", "only receipts from this session")
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum receipts to show")
	return cmd
}

func newReceiptsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one receipt in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			receipt, err := app.Receipts.GetByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatReceipt(receipt))
			return nil
		},
	}
}
