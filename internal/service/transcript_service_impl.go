package service

import (
	"context"

	"github.com/Guffawaffle/majel/internal/domain"
	"github.com/Guffawaffle/majel/internal/repository"
)

type transcriptService struct {
	transcripts repository.TranscriptRepo
}

// NewTranscriptService creates the transcript query service.
func NewTranscriptService(transcripts repository.TranscriptRepo) TranscriptService {
	return &transcriptService{transcripts: transcripts}
}

func (s *transcriptService) ListBySession(ctx context.Context, sessionID string) ([]*domain.TranscriptEntry, error) {
	return s.transcripts.ListBySession(ctx, sessionID)
}

func (s *transcriptService) ListRecent(ctx context.Context, limit int) ([]*domain.TranscriptEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.transcripts.ListRecent(ctx, limit)
}
