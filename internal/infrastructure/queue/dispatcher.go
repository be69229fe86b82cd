package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/skillshare/skillshare-api/internal/api/metrics"
	"github.com/skillshare/skillshare-api/internal/core/domain"
	"github.com/skillshare/skillshare-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// ActivityDispatcher routes audit events to a fixed set of workers using
// consistent hashing on the actor id, so one actor's events persist in the
// order they were produced.
type ActivityDispatcher struct {
	workers []chan domain.ActivityEvent
	service ports.ActivityService
	log     zerolog.Logger
}

// NewActivityDispatcher creates a dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewActivityDispatcher(numWorkers int, service ports.ActivityService, log zerolog.Logger) *ActivityDispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &ActivityDispatcher{
		workers: make([]chan domain.ActivityEvent, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.ActivityEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *ActivityDispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Record enqueues an event for its actor's worker. The call never blocks:
// when the worker's buffer is full the event is dropped and counted, since
// losing an audit row is preferable to stalling the mutation path.
func (d *ActivityDispatcher) Record(event domain.ActivityEvent) {
	idx := d.shardIndex(event.ActorID)
	select {
	case d.workers[idx] <- event:
		metrics.ActivityQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	default:
		metrics.ActivityErrorsTotal.Inc()
		d.log.Warn().
			Str("actor", event.ActorID).
			Str("action", event.Action).
			Int("worker_id", idx).
			Msg("activity queue full, event dropped")
	}
}

// shardIndex maps an actor id deterministically to a worker index.
func (d *ActivityDispatcher) shardIndex(actorID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(actorID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *ActivityDispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.ActivityEvent) {
	workerID := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			metrics.ActivityQueueDepth.WithLabelValues(workerID).Set(float64(len(ch)))
			if err := d.service.Process(ctx, event); err != nil {
				metrics.ActivityErrorsTotal.Inc()
				d.log.Error().Err(err).
					Str("actor", event.ActorID).
					Str("action", event.Action).
					Int("worker_id", id).
					Msg("activity event processing failed")
			}
		}
	}
}
