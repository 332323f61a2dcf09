package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

const defaultProbeTimeout = 5 * time.Second

// StorageChecker verifies that storage is reachable and ready for requests.
type StorageChecker interface {
	Check(ctx context.Context) error
}

// AvailabilitySetter records the probe outcome. Set reports whether the state
// changed.
type AvailabilitySetter interface {
	Set(available bool) bool
}

// StorageProbeJob keeps the availability gate in line with the database. It
// probes once on start and then on every tick of the interval.
type StorageProbeJob struct {
	checker  StorageChecker
	gate     AvailabilitySetter
	interval time.Duration
	timeout  time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewStorageProbeJob creates a probe running every interval.
func NewStorageProbeJob(
	checker StorageChecker,
	gate AvailabilitySetter,
	interval time.Duration,
	logger *slog.Logger,
) *StorageProbeJob {
	return &StorageProbeJob{
		checker:  checker,
		gate:     gate,
		interval: interval,
		timeout:  defaultProbeTimeout,
		cron:     cron.New(),
		logger:   logger.With("component", "storage_probe_job"),
	}
}

// Start runs the first probe synchronously and schedules the rest.
func (j *StorageProbeJob) Start() error {
	if j.interval <= 0 {
		return fmt.Errorf("storage probe interval must be positive, got %s", j.interval)
	}

	_, err := j.cron.AddFunc(fmt.Sprintf("@every %s", j.interval), func() {
		j.Probe(context.Background())
	})
	if err != nil {
		return err
	}

	if !j.Probe(context.Background()) {
		j.logger.WarnContext(context.Background(), "Storage unavailable at startup, serving 503 until it recovers")
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Storage probe job started", "interval", j.interval.String())
	return nil
}

// Probe checks storage once and updates the gate. Only state changes are logged.
func (j *StorageProbeJob) Probe(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()

	err := j.checker.Check(ctx)
	available := err == nil
	if !j.gate.Set(available) {
		return available
	}

	if available {
		j.logger.InfoContext(ctx, "Storage became available")
	} else {
		j.logger.WarnContext(ctx, "Storage became unavailable", "error", err)
	}
	return available
}

// Stop stops scheduling and waits for a running probe to finish.
func (j *StorageProbeJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Storage probe job stopped")
}
