package renderer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/df07/go-sphere-pathtracer/pkg/log"
)

var logger = log.New("renderer")

// RowSeed derives the sampler seed for a row from the base seed. Rows never
// share a random stream, and the seed depends only on (base, row), so the
// image does not depend on how rows are scheduled across workers.
func RowSeed(base int64, row int) int64 {
	// splitmix64 finalizer
	z := uint64(base) + uint64(row+1)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return int64(z ^ (z >> 31))
}

// Render renders every row of the image in parallel and reassembles them top
// to bottom. Failed rows are resubmitted with the same seed up to
// Config.MaxRetries times. The render gives up with ErrRenderTimeout when
// Config.Timeout elapses, or ErrInterrupted when ctx is cancelled.
func (rt *Raytracer) Render(ctx context.Context) (*Frame, RenderStats, error) {
	return renderRows(ctx, rt, rt.config, rt.width, rt.height)
}

// renderRows runs the row tasks for a width x height frame through a worker pool
func renderRows(ctx context.Context, renderer RowRenderer, config Config, width, height int) (*Frame, RenderStats, error) {
	start := time.Now()

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	stats := RenderStats{
		Width:           width,
		Height:          height,
		SamplesPerPixel: config.SamplesPerPixel,
		MaxDepth:        config.MaxDepth,
		Seed:            seed,
		TotalPixels:     width * height,
		TotalSamples:    width * height * config.SamplesPerPixel,
	}

	if config.Timeout > 0 {
		var cancelTimeout context.CancelFunc
		ctx, cancelTimeout = context.WithTimeout(ctx, config.Timeout)
		defer cancelTimeout()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Every row is in flight at most once, so height bounds both queues
	pool := NewWorkerPool(renderer, height, config.NumWorkers)
	stats.NumWorkers = pool.GetNumWorkers()
	logger.Noticef("Rendering %dx%d, %d spp, depth %d, seed %d on %d workers",
		width, height, config.SamplesPerPixel, config.MaxDepth, seed, stats.NumWorkers)

	pool.Start(ctx)
	for row := 0; row < height; row++ {
		pool.SubmitTask(RowTask{Row: row, Seed: RowSeed(seed, row)})
	}

	collector := newStatsCollector()
	results := make([]RowResult, 0, height)
	for len(results) < height {
		select {
		case result := <-pool.Results():
			if result.Err == nil {
				collector.addRow(result)
				results = append(results, result)
				logger.Debugf("Row %d done by worker %d in %s", result.Row, result.WorkerID, result.RenderTime)
				continue
			}

			if result.Attempt >= config.MaxRetries {
				cancel()
				pool.Release()
				logger.Errorf("Row %d failed after %d attempt(s): %v", result.Row, result.Attempt+1, result.Err)
				return nil, stats, &RowError{Row: result.Row, Attempts: result.Attempt + 1, Err: result.Err}
			}

			collector.retries++
			logger.Warningf("Row %d failed on attempt %d, retrying: %v", result.Row, result.Attempt+1, result.Err)
			pool.SubmitTask(RowTask{
				Row:     result.Row,
				Seed:    RowSeed(seed, result.Row),
				Attempt: result.Attempt + 1,
			})

		case <-ctx.Done():
			pool.Release()
			missing := height - len(results)
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				logger.Errorf("Timed out after %s with %d row(s) outstanding", config.Timeout, missing)
				return nil, stats, fmt.Errorf("%w: %d of %d rows outstanding after %s",
					ErrRenderTimeout, missing, height, config.Timeout)
			}
			return nil, stats, fmt.Errorf("%w: %d of %d rows outstanding", ErrInterrupted, missing, height)
		}
	}
	pool.Stop()

	frame, err := AssembleRows(results, width, height)
	if err != nil {
		return nil, stats, err
	}

	stats.RenderTime = time.Since(start)
	collector.finish(&stats)
	logger.Noticef("Render completed in %s", stats.RenderTime)
	return frame, stats, nil
}
