package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Guffawaffle/majel/internal/domain"
	"github.com/Guffawaffle/majel/internal/guard"
	"github.com/Guffawaffle/majel/internal/llm"
	"github.com/Guffawaffle/majel/internal/repository"
)

// systemPrompt is the standing instruction sent with every model call.
const systemPrompt = `You are Majel, the fleet operations assistant for a Star Trek Fleet Command admiral.

TRUTH: Only state facts that appear in the provided fleet context or that are well-established game knowledge. Never invent officer stats, dock configurations, or numeric values.
UNKNOWN: When the provided data does not cover the question, say "Data not available" instead of guessing.
CITATION: When you use a fact from the provided context, attribute it ("from your roster", "per the provided data").
DETERMINISM: Given the same question and the same data, give the same answer. Do not speculate about patch changes you cannot verify.

Address the user as Admiral. Be concise.`

// failureDisclaimer is prepended when a reply fails validation and the
// single repair attempt did not produce a clean reply.
const failureDisclaimer = "[Unverified: this reply failed fleet-data validation. Treat specific figures with caution.]\n\n"

type assistantService struct {
	officers    repository.OfficerRepo
	rules       repository.RuleRepo
	receipts    repository.ReceiptRepo
	transcripts repository.TranscriptRepo
	client      llm.Client
	logger      guard.ReceiptLogger
	observer    UseCaseObserver
}

// NewAssistantService wires a full assistant turn pipeline. logger and
// observer may be nil.
func NewAssistantService(
	officers repository.OfficerRepo,
	rules repository.RuleRepo,
	receipts repository.ReceiptRepo,
	transcripts repository.TranscriptRepo,
	client llm.Client,
	logger guard.ReceiptLogger,
	observer UseCaseObserver,
) AssistantService {
	if logger == nil {
		logger = guard.NoopReceiptLogger{}
	}
	return &assistantService{
		officers:    officers,
		rules:       rules,
		receipts:    receipts,
		transcripts: transcripts,
		client:      client,
		logger:      logger,
		observer:    observerOrNoop(observer),
	}
}

func (s *assistantService) Respond(ctx context.Context, sessionID, message string) (*AssistantReply, error) {
	start := time.Now()

	reply, err := s.respond(ctx, sessionID, message, start)

	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "assistant_respond",
		Duration:  time.Since(start),
		Success:   err == nil,
		Err:       err,
		StartedAt: start,
		Fields:    map[string]any{"session_id": sessionID},
	})
	return reply, err
}

func (s *assistantService) respond(ctx context.Context, sessionID, message string, start time.Time) (*AssistantReply, error) {
	snapshot, err := loadFleetSnapshot(ctx, s.officers)
	if err != nil {
		return nil, err
	}
	rules := &taskRules{ctx: ctx, repo: s.rules}

	orch := guard.NewOrchestrator(snapshot, snapshot, rules, s.logger)
	prep := orch.Prepare(message)
	if rules.err != nil {
		return nil, rules.err
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskAnswer,
		SystemPrompt: systemPrompt,
		UserPrompt:   prep.AugmentedMessage,
	})
	if err != nil {
		return nil, fmt.Errorf("generating reply: %w", err)
	}

	text := resp.Text
	validated := orch.Validate(text, prep.Contract, prep.Context, sessionID, start)
	receipt := validated.Receipt

	// One repair attempt, never more. A clean second pass earns the
	// repaired verdict; anything else ships with a disclaimer.
	if validated.NeedsRepair {
		repaired, repairErr := s.client.Generate(ctx, llm.GenerateRequest{
			Task:         llm.TaskRepair,
			SystemPrompt: systemPrompt,
			UserPrompt:   validated.RepairPrompt,
		})
		if repairErr != nil {
			receipt.RepairAttempted = true
			text = failureDisclaimer + text
		} else {
			second := orch.Validate(repaired.Text, prep.Contract, prep.Context, sessionID, start)
			second.Receipt.RepairAttempted = true
			if second.Result.Pass {
				second.Receipt.Verdict = domain.VerdictRepaired
				text = repaired.Text
			} else {
				text = failureDisclaimer + repaired.Text
			}
			receipt = second.Receipt
		}
	}

	orch.Finalize(receipt)

	if err := s.receipts.Create(ctx, &receipt); err != nil {
		return nil, fmt.Errorf("persisting receipt: %w", err)
	}

	entry := &domain.TranscriptEntry{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		TaskType:  receipt.TaskType,
		Question:  message,
		Reply:     text,
		Verdict:   receipt.Verdict,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.transcripts.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("persisting transcript entry: %w", err)
	}

	return &AssistantReply{
		Text:    text,
		Model:   resp.Model,
		Receipt: receipt,
	}, nil
}
