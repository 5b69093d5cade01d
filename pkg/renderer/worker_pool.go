package renderer

import (
	"context"
	"fmt"
	"image/color"
	"runtime"
	"sync"
	"time"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
)

// RowRenderer computes the pixels of a single image row
type RowRenderer interface {
	RenderRow(row int, sampler core.Sampler) ([]color.RGBA, error)
}

// RowTask represents a row rendering task for the worker pool
type RowTask struct {
	Row     int   // Image row, 0 is the top
	Seed    int64 // Seed for the row's private sampler
	Attempt int   // 0 for the first submission, incremented on every retry
}

// RowResult contains the result from rendering a row
type RowResult struct {
	Row        int
	Pixels     []color.RGBA
	Attempt    int
	WorkerID   int
	RenderTime time.Duration
	Err        error
}

// WorkerPool manages parallel row rendering
type WorkerPool struct {
	taskQueue   chan RowTask
	resultQueue chan RowResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
	closeOnce   sync.Once
}

// Worker handles individual row rendering tasks
type Worker struct {
	ID          int
	renderer    RowRenderer
	taskQueue   chan RowTask
	resultQueue chan RowResult
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// queueSize bounds the number of tasks in flight; callers must never have
// more than queueSize tasks submitted but not yet collected.
func NewWorkerPool(renderer RowRenderer, queueSize, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		taskQueue:   make(chan RowTask, queueSize),
		resultQueue: make(chan RowResult, queueSize),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			renderer:    renderer,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		})
	}

	return wp
}

// Start begins all workers. Tasks dequeued after ctx is done are dropped.
func (wp *WorkerPool) Start(ctx context.Context) {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(ctx, &wp.wg)
	}
}

// Stop gracefully shuts down all workers and waits for them to exit
func (wp *WorkerPool) Stop() {
	wp.Release()
	wp.wg.Wait()
}

// Release stops accepting tasks without waiting for busy workers. It is used
// when the collector gives up, so a stalled row cannot block the caller.
func (wp *WorkerPool) Release() {
	wp.closeOnce.Do(func() {
		close(wp.taskQueue)
	})
}

// SubmitTask submits a row task to the worker pool
func (wp *WorkerPool) SubmitTask(task RowTask) {
	wp.taskQueue <- task
}

// Results returns the channel completed rows are delivered on
func (wp *WorkerPool) Results() <-chan RowResult {
	return wp.resultQueue
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		if ctx.Err() != nil {
			continue // drain without rendering
		}
		w.resultQueue <- w.renderTask(task)
	}
}

// renderTask renders one row with a sampler private to this task. Panics
// (for example a degenerate vector being normalized) become row errors.
func (w *Worker) renderTask(task RowTask) (result RowResult) {
	start := time.Now()
	result = RowResult{
		Row:      task.Row,
		Attempt:  task.Attempt,
		WorkerID: w.ID,
	}

	defer func() {
		if r := recover(); r != nil {
			if err, ok := r.(error); ok {
				result.Err = fmt.Errorf("panic: %w", err)
			} else {
				result.Err = fmt.Errorf("panic: %v", r)
			}
			result.Pixels = nil
		}
		result.RenderTime = time.Since(start)
	}()

	result.Pixels, result.Err = w.renderer.RenderRow(task.Row, core.NewSeededSampler(task.Seed))
	return result
}
