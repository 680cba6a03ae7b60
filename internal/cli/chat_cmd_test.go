package cli

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guffawaffle/majel/internal/domain"
	"github.com/Guffawaffle/majel/internal/service"
)

type stubAssistant struct {
	lastSession string
	lastMessage string
	reply       *service.AssistantReply
	err         error
}

func (s *stubAssistant) Respond(_ context.Context, sessionID, message string) (*service.AssistantReply, error) {
	s.lastSession = sessionID
	s.lastMessage = message
	return s.reply, s.err
}

func typeString(m chatModel, s string) chatModel {
	for _, r := range s {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(chatModel)
	}
	return m
}

func TestChatModel_ExitQuits(t *testing.T) {
	m := newChatModel(&App{}, 0)
	m = typeString(m, "exit")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(chatModel)

	assert.True(t, m.quitting)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestChatModel_CtrlCQuits(t *testing.T) {
	m := newChatModel(&App{}, 0)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = next.(chatModel)

	assert.True(t, m.quitting)
	require.NotNil(t, cmd)
}

func TestChatModel_EmptyInputIgnored(t *testing.T) {
	m := newChatModel(&App{}, 0)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(chatModel)

	assert.False(t, m.busy)
	assert.Nil(t, cmd)
}

func TestChatModel_SubmitCallsAssistant(t *testing.T) {
	stub := &stubAssistant{reply: &service.AssistantReply{
		Text:    "Acknowledged, Admiral.",
		Receipt: domain.Receipt{Verdict: domain.VerdictPass},
	}}
	m := newChatModel(&App{Assistant: stub}, 0)
	m = typeString(m, "status report")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(chatModel)

	assert.True(t, m.busy)
	require.NotNil(t, cmd)

	// Drain the batch until the assistant answers.
	msg := drainForAnswer(t, cmd)
	assert.Equal(t, "status report", stub.lastMessage)
	assert.NotEmpty(t, stub.lastSession)

	next, _ = m.Update(msg)
	m = next.(chatModel)
	assert.False(t, m.busy)
}

func TestChatModel_IgnoresKeysWhileBusy(t *testing.T) {
	m := newChatModel(&App{}, 0)
	m.busy = true

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	m = next.(chatModel)

	assert.Nil(t, cmd)
	assert.Empty(t, m.input.Value())
}

// drainForAnswer executes a command tree until it yields an answerMsg.
func drainForAnswer(t *testing.T, cmd tea.Cmd) answerMsg {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		switch msg := c().(type) {
		case answerMsg:
			return msg
		case tea.BatchMsg:
			queue = append(queue, msg...)
		}
	}
	t.Fatal("no answerMsg produced")
	return answerMsg{}
}
