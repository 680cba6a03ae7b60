package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Guffawaffle/majel/internal/db"
	"github.com/Guffawaffle/majel/internal/domain"
	"github.com/Guffawaffle/majel/internal/importer"
	"github.com/Guffawaffle/majel/internal/repository"
)

type rosterService struct {
	officers repository.OfficerRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

// NewRosterService creates the roster import/query service.
func NewRosterService(officers repository.OfficerRepo, uow db.UnitOfWork, observer UseCaseObserver) RosterService {
	return &rosterService{
		officers: officers,
		uow:      uow,
		observer: observerOrNoop(observer),
	}
}

// ImportFile loads a roster CSV, validates it, and upserts every
// officer inside one transaction: a failure partway through the file
// leaves the stored roster untouched. Validation collects all errors
// before failing so the user can fix the whole file in one pass.
func (s *rosterService) ImportFile(ctx context.Context, path string) (*ImportResult, error) {
	start := time.Now()

	result, err := s.importFile(ctx, path)

	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "roster_import",
		Duration:  time.Since(start),
		Success:   err == nil,
		Err:       err,
		StartedAt: start,
		Fields:    map[string]any{"path": path},
	})
	return result, err
}

func (s *rosterService) importFile(ctx context.Context, path string) (*ImportResult, error) {
	rf, err := importer.LoadRosterFile(path)
	if err != nil {
		return nil, err
	}

	if errs := importer.ValidateRoster(rf); len(errs) > 0 {
		return nil, fmt.Errorf("roster validation failed: %w", errors.Join(errs...))
	}

	officers := importer.Convert(rf)
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txOfficers := repository.NewSQLiteOfficerRepo(tx)
		for _, o := range officers {
			if err := txOfficers.Upsert(ctx, o); err != nil {
				return fmt.Errorf("importing officer %q: %w", o.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ImportResult{Imported: len(officers), Source: rf.Source}, nil
}

func (s *rosterService) List(ctx context.Context) ([]*domain.Officer, error) {
	return s.officers.List(ctx)
}

func (s *rosterService) GetByName(ctx context.Context, name string) (*domain.Officer, error) {
	return s.officers.GetByName(ctx, name)
}

func (s *rosterService) Count(ctx context.Context) (int, error) {
	return s.officers.Count(ctx)
}
