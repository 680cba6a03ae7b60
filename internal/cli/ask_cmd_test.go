package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guffawaffle/majel/internal/domain"
	"github.com/Guffawaffle/majel/internal/service"
)

func executeCommand(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestAskCmd_PrintsAnswerAndVerdict(t *testing.T) {
	stub := &stubAssistant{reply: &service.AssistantReply{
		Text: "Data not available, Admiral.",
		Receipt: domain.Receipt{
			ID:       "ab12cd34-0000-0000-0000-000000000000",
			TaskType: domain.TaskStrategyGeneral,
			Verdict:  domain.VerdictPass,
		},
	}}
	app := &App{Assistant: stub}

	out, err := executeCommand(t, app, "ask", "what", "should", "I", "upgrade?")
	require.NoError(t, err)

	assert.Equal(t, "what should I upgrade?", stub.lastMessage)
	assert.NotEmpty(t, stub.lastSession)
	assert.Contains(t, out, "Data not available, Admiral.")
	assert.Contains(t, out, "PASS")
}

func TestAskCmd_SessionFlagReused(t *testing.T) {
	stub := &stubAssistant{reply: &service.AssistantReply{
		Receipt: domain.Receipt{Verdict: domain.VerdictPass},
	}}
	app := &App{Assistant: stub}

	_, err := executeCommand(t, app, "ask", "--session", "alpha-shift", "report")
	require.NoError(t, err)
	assert.Equal(t, "alpha-shift", stub.lastSession)
}

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	root := NewRootCmd(&App{})

	names := make(map[string]bool)
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"ask", "chat", "roster", "rules", "receipts", "transcript"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}
