package cli

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Guffawaffle/majel/internal/cli/formatter"
)

func newAskCmd(app *App) *cobra.Command {
	var sessionID string

	cmd := &cobra.Command{
		Use:   "ask <question...>",
		Short: "Ask Majel a single question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			question := strings.Join(args, " ")
			if sessionID == "" {
				sessionID = uuid.NewString()
			}

			reply, err := app.Assistant.Respond(cmd.Context(), sessionID, question)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatAnswer(reply))
			return nil
		},
	}

	cmd.Flags().StringVar(&sessionID, "session", "", "session ID to group receipts and transcript entries")
	return cmd
}
