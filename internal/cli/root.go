package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Guffawaffle/majel/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Assistant   service.AssistantService
	Roster      service.RosterService
	Rules       service.RuleService
	Receipts    service.ReceiptService
	Transcripts service.TranscriptService

	// IsInteractive reports whether stdin is a terminal; the chat
	// command refuses to start without one.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "majel" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "majel",
		Short: "Fleet operations assistant for Star Trek Fleet Command",
	}

	// Accept snake_case flag spellings from shell history and scripts.
	root.SetGlobalNormalizationFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	root.AddCommand(
		newAskCmd(app),
		newChatCmd(app),
		newRosterCmd(app),
		newRulesCmd(app),
		newReceiptsCmd(app),
		newTranscriptCmd(app),
	)

	return root
}
