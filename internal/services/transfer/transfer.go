package transfer

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/vadiminshakov/tokenswap/internal/entity"
	"go.uber.org/zap"
)

// Executor performs the asset transfer for a validated swap. The
// session treats any returned error as a failed, non-committed swap.
type Executor interface {
	Execute(ctx context.Context, res entity.SwapResult) error
}

// Simulated is a transfer executor that waits a fixed delay and
// succeeds, standing in for a real settlement backend.
type Simulated struct {
	delay  time.Duration
	logger *zap.Logger
}

// NewSimulated creates a simulated executor with the given settle
// delay.
func NewSimulated(delay time.Duration, logger *zap.Logger) *Simulated {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Simulated{delay: delay, logger: logger}
}

func (s *Simulated) Execute(ctx context.Context, res entity.SwapResult) error {
	id := uuid.NewString()
	s.logger.Info("transfer started",
		zap.String("id", id),
		zap.String("swap", res.String()))

	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "transfer cancelled")
	case <-timer.C:
	}

	s.logger.Info("transfer settled", zap.String("id", id))
	return nil
}
