package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Guffawaffle/majel/internal/cli/formatter"
	"github.com/Guffawaffle/majel/internal/domain"
)

func newTranscriptCmd(app *App) *cobra.Command {
	var sessionID string
	var limit int

	cmd := &cobra.Command{
		Use:   "transcript",
		Short: "Show past questions and replies",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var entries []*domain.TranscriptEntry
			var err error
			if sessionID != "" {
				entries, err = app.Transcripts.ListBySession(ctx, sessionID)
			} else {
				entries, err = app.Transcripts.ListRecent(ctx, limit)
			}
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTranscript(entries))
			return nil
		},
	}

	cmd.Flags().StringVar(&sessionID, "session", "", "only entries from this session")
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum entries to show")
	return cmd
}
