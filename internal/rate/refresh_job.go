package rate

import (
	"context"
	"errors"
	"time"

	"trm/internal/domain"

	"github.com/sirupsen/logrus"
)

type Refresher interface {
	Refresh(ctx context.Context) error
}

// RunRefreshJob refreshes the store once within timeout. Failures are logged
// and left in the state; the next run retries.
func RunRefreshJob(ctx context.Context, execID string, refresher Refresher, timeout time.Duration) error {
	jobCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	started := time.Now()
	err := refresher.Refresh(jobCtx)
	log := logrus.WithFields(logrus.Fields{"exec_id": execID, "elapsed": time.Since(started).String()})

	switch {
	case err == nil:
		log.Info("Refresh job finished")
	case errors.Is(err, ErrRefreshSuperseded):
		log.Debug("Refresh job superseded by a newer refresh")
		return nil
	case domain.IsTransient(err):
		log.WithError(err).Warn("Refresh job failed, keeping previous rates")
	default:
		log.WithError(err).Error("Refresh job failed")
	}
	return err
}
