package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/credora/creator-platform/internal/api/metrics"
	"github.com/credora/creator-platform/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

// RatingApplier is the interface the dispatcher drives.
type RatingApplier interface {
	Apply(ctx context.Context, in ports.RatingAssignment) error
}

// Dispatcher routes rating assignments to a fixed set of workers using
// consistent hashing on the creator ID, guaranteeing per-creator ordering of
// score updates and history entries.
type Dispatcher struct {
	workers []chan ports.RatingAssignment
	ratings RatingApplier
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, ratings RatingApplier, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.RatingAssignment, numWorkers),
		ratings: ratings,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.RatingAssignment, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends an assignment to the worker responsible for its creator.
// Non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(in ports.RatingAssignment) {
	idx := d.shardIndex(in.CreatorID)
	d.workers[idx] <- in
	metrics.RatingQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
}

// shardIndex maps a creator ID deterministically to a worker index.
func (d *Dispatcher) shardIndex(creatorID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(creatorID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.RatingAssignment) {
	workerID := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case in, ok := <-ch:
			if !ok {
				return
			}
			metrics.RatingQueueDepth.WithLabelValues(workerID).Set(float64(len(ch)))

			start := time.Now()
			if err := d.ratings.Apply(ctx, in); err != nil {
				d.log.Error().Err(err).
					Str("creator_id", in.CreatorID).
					Int("worker_id", id).
					Msg("rating apply failed")
				metrics.RatingApplyDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
				continue
			}
			metrics.RatingApplyDuration.WithLabelValues("ok").Observe(time.Since(start).Seconds())
		}
	}
}
