// Package intake turns raw form input into stored customer records.
package intake

import (
	"context"
	"errors"
	"log/slog"

	"github.com/leapstack-labs/custdb/internal/validate"
	"github.com/leapstack-labs/custdb/pkg/core"
)

// Service validates submissions and persists the ones that pass.
type Service struct {
	Validator *validate.Validator
	Store     core.Runner
	Logger    *slog.Logger
}

// NewService creates a Service with a fresh Validator.
func NewService(store core.Runner, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{
		Validator: validate.New(),
		Store:     store,
		Logger:    logger,
	}
}

// Submit normalizes and validates sub, then creates the record.
// A *core.ValidationError means nothing was written and the store was not opened.
func (s *Service) Submit(ctx context.Context, sub core.Submission) (core.Receipt, error) {
	sub = sub.Normalize()

	if err := s.Validator.Check(sub); err != nil {
		var ve *core.ValidationError
		if errors.As(err, &ve) {
			first := ve.First()
			s.Logger.Warn("submission rejected",
				"field", first.Field,
				"rule", first.Rule.String(),
				"failures", len(ve.Failures))
		}
		return core.Receipt{}, err
	}

	record, err := sub.ToNewCustomer()
	if err != nil {
		return core.Receipt{}, err
	}

	var id int64
	err = s.Store.Do(ctx, func(store core.Store) error {
		var createErr error
		id, createErr = store.Create(ctx, record)
		return createErr
	})
	if err != nil {
		s.Logger.Error("failed to save customer", "error", err)
		return core.Receipt{}, err
	}

	s.Logger.Info("customer created", "id", id, "name", record.Name)
	return core.Receipt{ID: id, Name: record.Name}, nil
}
