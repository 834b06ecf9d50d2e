package workers

import (
	"context"
	"time"

	"skillgate_backend/internal/logger"
	"skillgate_backend/internal/repositories"
)

// TokenWorker периодически удаляет истекшие refresh-токены
type TokenWorker struct {
	refreshTokenRepo repositories.RefreshTokenRepository
	interval         time.Duration
}

func NewTokenWorker(refreshTokenRepo repositories.RefreshTokenRepository) *TokenWorker {
	return &TokenWorker{
		refreshTokenRepo: refreshTokenRepo,
		interval:         24 * time.Hour,
	}
}

// Start запускает фоновую чистку истекших refresh-токенов
func (w *TokenWorker) Start(ctx context.Context) {
	go w.cleanupLoop(ctx)
}

func (w *TokenWorker) cleanupLoop(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Token worker stopped")
			return
		case <-ticker.C:
			w.removeExpired()
		}
	}
}

func (w *TokenWorker) removeExpired() {
	if err := w.refreshTokenRepo.DeleteExpired(); err != nil {
		logger.WithError(err).Error("Error cleaning up expired refresh tokens")
	}
}
