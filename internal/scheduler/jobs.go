package scheduler

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/aristath/holidays/internal/modules/holidays/publisher"
	"github.com/aristath/holidays/internal/modules/holidays/store"
)

const (
	warmTimeout    = 5 * time.Minute
	publishTimeout = 15 * time.Minute
)

// Warmer precomputes holiday collections.
type Warmer interface {
	Warm(ctx context.Context, years []int, locales ...string) (int, error)
}

// Publisher uploads holiday documents.
type Publisher interface {
	PublishAll(ctx context.Context, years []int, locales []string) ([]publisher.Result, error)
}

// PublicationRecorder keeps the log of uploaded objects.
type PublicationRecorder interface {
	RecordPublication(p store.Publication) error
}

// Maintainer is the storage housekeeping used by MaintenanceJob.
type Maintainer interface {
	PurgeExpired() (int64, error)
}

// Checkpointer truncates the SQLite write-ahead log.
type Checkpointer interface {
	WALCheckpoint(mode string) error
}

// yearWindow returns the current year followed by ahead more years.
func yearWindow(now time.Time, ahead int) []int {
	if ahead < 0 {
		ahead = 0
	}
	years := make([]int, 0, ahead+1)
	for y := now.Year(); y <= now.Year()+ahead; y++ {
		years = append(years, y)
	}
	return years
}

// WarmCacheJob computes every jurisdiction for the current year and the
// configured number of years ahead.
type WarmCacheJob struct {
	warmer     Warmer
	yearsAhead int
	locales    []string
	now        func() time.Time
	log        zerolog.Logger
}

// NewWarmCacheJob creates a new WarmCacheJob
func NewWarmCacheJob(warmer Warmer, yearsAhead int, locales []string, log zerolog.Logger) *WarmCacheJob {
	return &WarmCacheJob{
		warmer:     warmer,
		yearsAhead: yearsAhead,
		locales:    locales,
		now:        time.Now,
		log:        log.With().Str("job", "warm_cache").Logger(),
	}
}

// Name returns the job name
func (j *WarmCacheJob) Name() string {
	return "warm_cache"
}

// Run executes the warm cache job
func (j *WarmCacheJob) Run() error {
	runID := uuid.NewString()
	years := yearWindow(j.now(), j.yearsAhead)
	start := time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), warmTimeout)
	defer cancel()

	count, err := j.warmer.Warm(ctx, years, j.locales...)
	if err != nil {
		j.log.Error().Err(err).Str("run_id", runID).Int("computed", count).Msg("Cache warm finished with errors")
		return err
	}

	j.log.Info().
		Str("run_id", runID).
		Ints("years", years).
		Int("computed", count).
		Dur("duration", time.Since(start)).
		Msg("Cache warmed")
	return nil
}

// PublishJob uploads every jurisdiction for the current year and the
// configured number of years ahead, and records each uploaded object.
type PublishJob struct {
	publisher  Publisher
	recorder   PublicationRecorder
	yearsAhead int
	locales    []string
	now        func() time.Time
	log        zerolog.Logger
}

// NewPublishJob creates a new PublishJob. recorder may be nil.
func NewPublishJob(p Publisher, recorder PublicationRecorder, yearsAhead int, locales []string, log zerolog.Logger) *PublishJob {
	return &PublishJob{
		publisher:  p,
		recorder:   recorder,
		yearsAhead: yearsAhead,
		locales:    locales,
		now:        time.Now,
		log:        log.With().Str("job", "publish").Logger(),
	}
}

// Name returns the job name
func (j *PublishJob) Name() string {
	return "publish"
}

// Run executes the publish job
func (j *PublishJob) Run() error {
	runID := uuid.NewString()
	years := yearWindow(j.now(), j.yearsAhead)

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	results, err := j.publisher.PublishAll(ctx, years, j.locales)

	if j.recorder != nil {
		for _, r := range results {
			if recErr := j.recorder.RecordPublication(store.Publication{
				RunID:     runID,
				ObjectKey: r.Key,
				SizeBytes: int64(r.Size),
			}); recErr != nil {
				j.log.Warn().Err(recErr).Str("key", r.Key).Msg("Failed to record publication")
			}
		}
	}

	if err != nil {
		j.log.Error().Err(err).Str("run_id", runID).Int("published", len(results)).Msg("Publish finished with errors")
		return err
	}

	j.log.Info().Str("run_id", runID).Int("published", len(results)).Msg("Holidays published")
	return nil
}

// MaintenanceJob purges expired snapshots and checkpoints the WAL.
type MaintenanceJob struct {
	store Maintainer
	db    Checkpointer
	log   zerolog.Logger
}

// NewMaintenanceJob creates a new MaintenanceJob. db may be nil.
func NewMaintenanceJob(s Maintainer, db Checkpointer, log zerolog.Logger) *MaintenanceJob {
	return &MaintenanceJob{
		store: s,
		db:    db,
		log:   log.With().Str("job", "maintenance").Logger(),
	}
}

// Name returns the job name
func (j *MaintenanceJob) Name() string {
	return "maintenance"
}

// Run executes the maintenance job
func (j *MaintenanceJob) Run() error {
	deleted, err := j.store.PurgeExpired()
	if err != nil {
		return err
	}
	if deleted > 0 {
		j.log.Info().Int64("deleted", deleted).Msg("Purged expired snapshots")
	}

	if j.db != nil {
		if err := j.db.WALCheckpoint("TRUNCATE"); err != nil {
			j.log.Warn().Err(err).Msg("WAL checkpoint failed")
		}
	}
	return nil
}
