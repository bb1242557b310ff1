package worker

// retry_cron.go
// Background goroutine that periodically drains the dead letter queue back
// onto its source queue, so jobs that died on a transient failure (SMTP
// outage, redis hiccup) get another chance without manual intervention.
// Each entry carries a requeue count; past maxDLQRequeues it is parked
// aside for manual inspection.

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	retryTickInterval = 5 * time.Minute
	retryBatchSize    = 10
	maxDLQRequeues    = 3

	parkedPrefix = "dlq:parked:"
)

// StartRetryCron launches a goroutine that ticks every retryTickInterval and
// requeues dead jobs from the DLQ of each given queue. It respects the
// context for graceful shutdown.
func StartRetryCron(ctx context.Context, rdb *redis.Client, queues ...string) {
	go func() {
		ticker := time.NewTicker(retryTickInterval)
		defer ticker.Stop()

		log.Info().Msg("retry_cron: started")

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("retry_cron: shutting down")
				return
			case <-ticker.C:
				for _, q := range queues {
					drainDLQ(ctx, rdb, q)
				}
			}
		}
	}()
}

func drainDLQ(ctx context.Context, rdb *redis.Client, queue string) {
	dlqKey := DLQPrefix + queue
	for i := 0; i < retryBatchSize; i++ {
		raw, err := rdb.RPop(ctx, dlqKey).Result()
		if err != nil {
			return // empty queue or redis unavailable; next tick retries
		}

		var entry DLQEntry
		if err := json.Unmarshal([]byte(raw), &entry); err != nil {
			log.Error().Err(err).Str("dlq_key", dlqKey).Msg("retry_cron: unreadable entry dropped")
			continue
		}

		job, ok := rearmarJob(entry)
		if !ok {
			if err := rdb.LPush(ctx, parkedPrefix+queue, raw).Err(); err != nil {
				log.Error().Err(err).Str("queue", queue).Msg("retry_cron: failed to park entry")
			}
			log.Warn().
				Str("queue", queue).
				Str("job_type", entry.JobType).
				Int("requeues", entry.Requeues).
				Msg("retry_cron: requeue budget exhausted, job parked")
			continue
		}

		data, err := json.Marshal(job)
		if err != nil {
			log.Error().Err(err).Str("queue", queue).Msg("retry_cron: failed to marshal job")
			continue
		}
		if err := rdb.LPush(ctx, entry.OriginalQueue, data).Err(); err != nil {
			// Put the entry back so the next tick can try again.
			_ = rdb.LPush(ctx, dlqKey, raw).Err()
			return
		}

		log.Info().
			Str("queue", entry.OriginalQueue).
			Str("job_type", entry.JobType).
			Int("requeues", job.Requeues).
			Msg("retry_cron: job requeued from DLQ")
	}
}

// rearmarJob rebuilds the queue envelope for a dead entry. Returns false
// once the entry has burned through its requeue budget.
func rearmarJob(entry DLQEntry) (Job, bool) {
	if entry.Requeues >= maxDLQRequeues {
		return Job{}, false
	}
	return Job{Type: entry.JobType, Payload: entry.Payload, Requeues: entry.Requeues + 1}, true
}
