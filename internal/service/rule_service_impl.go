package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Guffawaffle/majel/internal/domain"
	"github.com/Guffawaffle/majel/internal/repository"
)

type ruleService struct {
	rules repository.RuleRepo
}

// NewRuleService creates the behavioral-rule management service.
func NewRuleService(rules repository.RuleRepo) RuleService {
	return &ruleService{rules: rules}
}

// Add validates and stores a behavioral rule. An empty task type scopes
// the rule to every category. Severity defaults to "should".
func (s *ruleService) Add(ctx context.Context, taskType, text, severity string) (*domain.BehavioralRule, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("rule text is required")
	}

	if taskType != "" && !domain.ValidTaskTypes[taskType] {
		return nil, fmt.Errorf("invalid task type %q", taskType)
	}

	if severity == "" {
		severity = string(domain.SeverityShould)
	}
	if !domain.ValidSeverities[severity] {
		return nil, fmt.Errorf("invalid severity %q (expected must, should, or style)", severity)
	}

	rule := &domain.BehavioralRule{
		ID:        uuid.NewString(),
		TaskType:  domain.TaskType(taskType),
		Text:      text,
		Severity:  domain.RuleSeverity(severity),
		Enabled:   true,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.rules.Create(ctx, rule); err != nil {
		return nil, err
	}
	return rule, nil
}

func (s *ruleService) List(ctx context.Context, includeDisabled bool) ([]*domain.BehavioralRule, error) {
	return s.rules.List(ctx, includeDisabled)
}

func (s *ruleService) SetEnabled(ctx context.Context, id string, enabled bool) error {
	return s.rules.SetEnabled(ctx, id, enabled)
}

func (s *ruleService) Delete(ctx context.Context, id string) error {
	return s.rules.Delete(ctx, id)
}
