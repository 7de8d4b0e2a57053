package pipeline

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"colorgate/internal/logger"
	"colorgate/internal/threshold"

	"gocv.io/x/gocv"
	"golang.org/x/sync/errgroup"
)

// MaskSink receives each produced mask and takes ownership of it.
type MaskSink func(mask gocv.Mat)

// Metrics aggregates per-frame processing statistics.
type Metrics struct {
	Frames       uint64
	Failures     uint64
	LastLatency  time.Duration
	TotalLatency time.Duration
}

// Runner drives the classification loop: it pulls frames from a
// source, classifies each against a shared spec, and hands masks to a
// sink. The spec may be mutated concurrently by a tuning session;
// Classify snapshots the bounds per frame, so the runner needs no
// locking of its own around the spec.
type Runner struct {
	spec   *threshold.Spec
	source FrameSource
	sink   MaskSink
	log    logger.Logger

	mu      sync.RWMutex
	metrics Metrics
}

func NewRunner(spec *threshold.Spec, source FrameSource, sink MaskSink, log logger.Logger) *Runner {
	if log == nil {
		log = logger.Nop{}
	}
	return &Runner{
		spec:   spec,
		source: source,
		sink:   sink,
		log:    log,
	}
}

// Run processes frames until the source is exhausted or the context is
// cancelled. A classification failure aborts only that frame; the loop
// keeps going.
func (r *Runner) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	frames := make(chan gocv.Mat, 1)

	g.Go(func() error {
		defer close(frames)
		for {
			frame, err := r.source.Next(ctx)
			if err != nil {
				if errors.Is(err, io.EOF) {
					return nil
				}
				return err
			}

			select {
			case frames <- frame:
			case <-ctx.Done():
				frame.Close()
				return ctx.Err()
			}
		}
	})

	g.Go(func() error {
		for frame := range frames {
			r.classifyFrame(frame)
		}
		return nil
	})

	err := g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (r *Runner) classifyFrame(frame gocv.Mat) {
	defer frame.Close()

	start := time.Now()
	mask, err := threshold.Classify(r.spec, frame)
	elapsed := time.Since(start)

	r.mu.Lock()
	r.metrics.Frames++
	r.metrics.LastLatency = elapsed
	r.metrics.TotalLatency += elapsed
	if err != nil {
		r.metrics.Failures++
	}
	r.mu.Unlock()

	if err != nil {
		r.log.Error("pipeline", err, map[string]interface{}{
			"frame": r.Metrics().Frames,
		})
		return
	}

	r.sink(mask)
}

// Metrics returns a copy of the current counters.
func (r *Runner) Metrics() Metrics {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.metrics
}
