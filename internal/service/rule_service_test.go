package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guffawaffle/majel/internal/domain"
	"github.com/Guffawaffle/majel/internal/repository"
	"github.com/Guffawaffle/majel/internal/testutil"
)

func newRuleService(t *testing.T) RuleService {
	t.Helper()
	db := testutil.NewTestDB(t)
	return NewRuleService(repository.NewSQLiteRuleRepo(db))
}

func TestRuleService_Add(t *testing.T) {
	svc := newRuleService(t)
	ctx := context.Background()

	rule, err := svc.Add(ctx, "dock_planning", "Always state the dock number.", "must")
	require.NoError(t, err)
	assert.NotEmpty(t, rule.ID)
	assert.Equal(t, domain.TaskDockPlanning, rule.TaskType)
	assert.Equal(t, domain.SeverityMust, rule.Severity)
	assert.True(t, rule.Enabled)
}

func TestRuleService_Add_EmptyTaskTypeIsGlobal(t *testing.T) {
	svc := newRuleService(t)

	rule, err := svc.Add(context.Background(), "", "Be concise.", "")
	require.NoError(t, err)
	assert.Equal(t, domain.TaskType(""), rule.TaskType)
	assert.Equal(t, domain.SeverityShould, rule.Severity)
}

func TestRuleService_Add_Invalid(t *testing.T) {
	svc := newRuleService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "warp_planning", "text", "must")
	assert.ErrorContains(t, err, "invalid task type")

	_, err = svc.Add(ctx, "dock_planning", "text", "critical")
	assert.ErrorContains(t, err, "invalid severity")

	_, err = svc.Add(ctx, "dock_planning", "   ", "must")
	assert.ErrorContains(t, err, "rule text is required")
}

func TestRuleService_DisableAndList(t *testing.T) {
	svc := newRuleService(t)
	ctx := context.Background()

	rule, err := svc.Add(ctx, "", "Be concise.", "style")
	require.NoError(t, err)
	require.NoError(t, svc.SetEnabled(ctx, rule.ID, false))

	enabled, err := svc.List(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, enabled)

	all, err := svc.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
