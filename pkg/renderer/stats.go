package renderer

import (
	"image"
	"sort"
	"time"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width           int           // Image width in pixels
	Height          int           // Image height in pixels
	SamplesPerPixel int           // Samples taken per pixel
	MaxDepth        int           // Maximum bounce depth
	Seed            int64         // Base seed actually used; reproduces the render
	NumWorkers      int           // Workers the rows were spread across
	TotalPixels     int           // Total number of pixels rendered
	TotalSamples    int           // Total number of samples taken
	Retries         int           // Rows that had to be resubmitted
	RenderTime      time.Duration // Wall-clock time of the whole render
	Workers         []WorkerStats // Per-worker breakdown, sorted by worker ID
}

// WorkerStats tracks the rows completed by a single worker
type WorkerStats struct {
	ID           int
	Rows         int
	FramePercent float64       // Share of the frame's rows this worker rendered
	RenderTime   time.Duration // Time spent inside RenderRow
}

// statsCollector accumulates per-worker figures as rows arrive
type statsCollector struct {
	workers map[int]*WorkerStats
	retries int
}

func newStatsCollector() *statsCollector {
	return &statsCollector{workers: make(map[int]*WorkerStats)}
}

// addRow records a completed row for the worker that produced it
func (sc *statsCollector) addRow(result RowResult) {
	ws, ok := sc.workers[result.WorkerID]
	if !ok {
		ws = &WorkerStats{ID: result.WorkerID}
		sc.workers[result.WorkerID] = ws
	}
	ws.Rows++
	ws.RenderTime += result.RenderTime
}

// finish fills the per-worker breakdown of stats
func (sc *statsCollector) finish(stats *RenderStats) {
	stats.Retries = sc.retries
	stats.Workers = make([]WorkerStats, 0, len(sc.workers))
	for _, ws := range sc.workers {
		if stats.Height > 0 {
			ws.FramePercent = 100 * float64(ws.Rows) / float64(stats.Height)
		}
		stats.Workers = append(stats.Workers, *ws)
	}
	sort.Slice(stats.Workers, func(i, j int) bool {
		return stats.Workers[i].ID < stats.Workers[j].ID
	})
}

// CalculateAverageLuminance returns the mean Rec. 709 luminance of img,
// with every channel scaled to [0, 1]
func CalculateAverageLuminance(img image.Image) float64 {
	bounds := img.Bounds()
	pixels := bounds.Dx() * bounds.Dy()
	if pixels == 0 {
		return 0
	}

	var total float64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			total += 0.2126*float64(r)/0xffff + 0.7152*float64(g)/0xffff + 0.0722*float64(b)/0xffff
		}
	}
	return total / float64(pixels)
}
