package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Guffawaffle/majel/internal/cli/formatter"
	"github.com/Guffawaffle/majel/internal/service"
)

func newChatCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive chat session with Majel",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("chat requires an interactive terminal (use 'majel ask' for scripted queries)")
			}

			count, err := app.Roster.Count(cmd.Context())
			if err != nil {
				return err
			}

			p := tea.NewProgram(newChatModel(app, count))
			_, err = p.Run()
			return err
		},
	}
}

// answerMsg delivers the assistant's reply back into the update loop.
type answerMsg struct {
	reply *service.AssistantReply
	err   error
}

// chatModel is the bubbletea Model for the interactive chat REPL.
type chatModel struct {
	input       textinput.Model
	app         *App
	sessionID   string
	rosterCount int
	busy        bool
	quitting    bool
}

func newChatModel(app *App, rosterCount int) chatModel {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.CharLimit = 500

	return chatModel{
		input:       ti,
		app:         app,
		sessionID:   uuid.NewString(),
		rosterCount: rosterCount,
	}
}

func (m chatModel) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tea.Println(formatter.FormatWelcome(m.rosterCount)),
	)
}

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.input.Width = msg.Width - len("Admiral ❯ ") - 1
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		if m.busy {
			return m, nil
		}
		if msg.Type == tea.KeyEnter {
			return m.submit()
		}

	case answerMsg:
		m.busy = false
		if msg.err != nil {
			return m, tea.Println(formatter.StyleRed.Render("Error: ") + msg.err.Error() + "\n")
		}
		return m, tea.Println(formatter.FormatAnswer(msg.reply))
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m chatModel) submit() (tea.Model, tea.Cmd) {
	question := strings.TrimSpace(m.input.Value())
	if question == "" {
		return m, nil
	}
	if question == "exit" || question == "quit" {
		m.quitting = true
		return m, tea.Quit
	}

	m.input.Reset()
	m.busy = true

	echo := tea.Println(m.promptPrefix() + question)
	ask := func() tea.Msg {
		reply, err := m.app.Assistant.Respond(context.Background(), m.sessionID, question)
		return answerMsg{reply: reply, err: err}
	}
	return m, tea.Batch(echo, ask)
}

func (m chatModel) View() string {
	if m.quitting {
		return formatter.Dim("Majel out.") + "\n"
	}
	if m.busy {
		return m.promptPrefix() + formatter.Dim("…")
	}
	return m.promptPrefix() + m.input.View()
}

func (m chatModel) promptPrefix() string {
	return formatter.StylePurple.Render("Admiral") + " " + formatter.Dim("❯") + " "
}
