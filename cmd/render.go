package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/pprof"
	"time"

	"github.com/df07/go-sphere-pathtracer/pkg/output"
	"github.com/df07/go-sphere-pathtracer/pkg/renderer"
	"github.com/df07/go-sphere-pathtracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Render a still frame.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)
	logSystemInfo()

	config := renderConfig(ctx)
	if err := config.Validate(); err != nil {
		return err
	}

	desc, err := sceneDescription(ctx, config.Seed)
	if err != nil {
		return err
	}
	sc, err := desc.Build(config.AspectRatio)
	if err != nil {
		return err
	}
	logger.Infof("scene %q: %d spheres", desc.Name, sc.GetPrimitiveCount())

	rt, err := renderer.NewRaytracer(sc, config)
	if err != nil {
		return err
	}

	if profile := ctx.String("cpuprofile"); profile != "" {
		stopProfile, err := startCPUProfile(profile)
		if err != nil {
			return err
		}
		defer stopProfile()
	}

	// Ctrl-C abandons the render instead of leaving a partial image
	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	frame, stats, err := rt.Render(runCtx)
	if err != nil {
		return err
	}

	// Display stats
	displayRenderStats(stats, renderer.CalculateAverageLuminance(frame.Image()))

	out := ctx.String("out")
	if err := output.SaveFrame(out, frame); err != nil {
		return err
	}
	logger.Noticef("saved %s (seed %d)", out, stats.Seed)

	return nil
}

// renderConfig maps command line flags onto the renderer configuration. A
// zero seed is replaced by a clock seed here so the scene and the render share
// it and it can be reported back.
func renderConfig(ctx *cli.Context) renderer.Config {
	config := renderer.DefaultConfig()
	config.Width = ctx.Int("width")
	config.AspectRatio = ctx.Float64("aspect")
	config.SamplesPerPixel = ctx.Int("spp")
	config.MaxDepth = ctx.Int("depth")
	config.NumWorkers = ctx.Int("workers")
	config.MaxRetries = ctx.Int("retries")
	config.Timeout = ctx.Duration("timeout")
	config.Seed = ctx.Int64("seed")

	if config.NumWorkers == 0 {
		config.NumWorkers = defaultWorkerCount()
	}
	if config.Seed == 0 {
		config.Seed = time.Now().UnixNano()
	}
	return config
}

// sceneDescription picks the scene file when one is given, otherwise the
// named built-in scene
func sceneDescription(ctx *cli.Context, seed int64) (*scene.Description, error) {
	if path := ctx.String("scene-file"); path != "" {
		return scene.LoadDescription(path)
	}
	return scene.LoadDescriptionByID(ctx.String("scene"), seed)
}

func startCPUProfile(path string) (func(), error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create cpu profile: %w", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to start cpu profile: %w", err)
	}
	logger.Infof("writing cpu profile to %s", path)

	return func() {
		pprof.StopCPUProfile()
		f.Close()
	}, nil
}

func displayRenderStats(stats renderer.RenderStats, avgLuminance float64) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Rows", "% of frame", "Render time"})
	for _, stat := range stats.Workers {
		table.Append([]string{
			fmt.Sprintf("%d", stat.ID),
			fmt.Sprintf("%d", stat.Rows),
			fmt.Sprintf("%02.1f %%", stat.FramePercent),
			stat.RenderTime.String(),
		})
	}
	table.SetFooter([]string{"", "", "TOTAL", stats.RenderTime.String()})

	table.Render()
	logger.Noticef("frame statistics (%dx%d, %d spp, depth %d, %d samples, %d retries, avg luminance %.3f)\n%s",
		stats.Width, stats.Height, stats.SamplesPerPixel, stats.MaxDepth,
		stats.TotalSamples, stats.Retries, avgLuminance, buf.String())
}
