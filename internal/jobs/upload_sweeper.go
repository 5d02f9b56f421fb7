package jobs

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// UploadSweeperJob removes staged resume uploads that outlived their TTL.
// Uploads are deleted per-request after extraction; the sweeper only catches
// files left behind by crashed requests.
type UploadSweeperJob struct {
	config *SweeperConfig
	logger *zap.Logger
	cron   *cron.Cron
}

// SweeperConfig contains configuration for the sweeper job
type SweeperConfig struct {
	Schedule  string        // Cron schedule (e.g., "@every 30m")
	UploadDir string        // Directory holding staged uploads
	TTL       time.Duration // Age after which a staged file is stale
}

func NewUploadSweeperJob(config *SweeperConfig, logger *zap.Logger) *UploadSweeperJob {
	return &UploadSweeperJob{
		config: config,
		logger: logger,
		cron:   cron.New(),
	}
}

// Start begins the scheduled sweep
func (j *UploadSweeperJob) Start() error {
	_, err := j.cron.AddFunc(j.config.Schedule, func() {
		if err := j.RunSweep(); err != nil {
			j.logger.Error("Upload sweep failed", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule upload sweep: %w", err)
	}

	j.cron.Start()
	j.logger.Info("Upload sweeper started", zap.String("schedule", j.config.Schedule))
	return nil
}

// Stop stops the scheduled sweep
func (j *UploadSweeperJob) Stop() {
	if j.cron != nil {
		j.cron.Stop()
	}
}

// RunSweep performs a single sweep over the upload directory
func (j *UploadSweeperJob) RunSweep() error {
	entries, err := os.ReadDir(j.config.UploadDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	cutoff := time.Now().Add(-j.config.TTL)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(filepath.Join(j.config.UploadDir, entry.Name())); err == nil {
				removed++
			}
		}
	}

	if removed > 0 {
		j.logger.Info("Swept stale uploads", zap.Int("removed", removed))
	}
	return nil
}
