package workers

import (
	"context"
	"time"

	"skillgate_backend/internal/logger"
	"skillgate_backend/internal/repositories"
)

type DriveWorker struct {
	driveRepo repositories.DriveRepository
	interval  time.Duration
}

func NewDriveWorker(driveRepo repositories.DriveRepository) *DriveWorker {
	return &DriveWorker{
		driveRepo: driveRepo,
		interval:  1 * time.Hour,
	}
}

// Start запускает фоновые задачи для drives
func (w *DriveWorker) Start(ctx context.Context) {
	go w.autoCloseDrives(ctx)
}

// autoCloseDrives закрывает drives с прошедшим дедлайном каждый час
func (w *DriveWorker) autoCloseDrives(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Drive worker stopped")
			return
		case <-ticker.C:
			closed, err := w.driveRepo.CloseExpired()
			if err != nil {
				logger.WithError(err).Error("Error auto-closing expired drives")
				continue
			}
			if closed > 0 {
				logger.Info("Auto-closed expired drives", "count", closed)
			}
		}
	}
}
