package main

import (
	"os"

	"github.com/df07/go-sphere-pathtracer/cmd"
	"github.com/df07/go-sphere-pathtracer/pkg/log"
	"github.com/df07/go-sphere-pathtracer/pkg/renderer"
	"github.com/df07/go-sphere-pathtracer/pkg/scene"
	"github.com/urfave/cli"
)

var logger = log.New("pathtracer")

func newApp() *cli.App {
	// The default "version, v" flag would shadow the -v verbosity switch
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	defaults := renderer.DefaultConfig()

	app := cli.NewApp()
	app.Name = "go-sphere-pathtracer"
	app.Usage = "render sphere scenes using path tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a single frame",
			Description: `
Render a scene with a Monte Carlo path tracer and write the image to disk.

Rows are rendered in parallel and reassembled top to bottom. The output format
follows the file extension: ".png" writes PNG, anything else a plain-text PPM.
Pass a non-zero --seed to make the render reproducible.`,
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Value: defaults.Width,
					Usage: "image width in pixels",
				},
				cli.Float64Flag{
					Name:  "aspect",
					Value: defaults.AspectRatio,
					Usage: "aspect ratio (width / height)",
				},
				cli.IntFlag{
					Name:  "spp",
					Value: defaults.SamplesPerPixel,
					Usage: "samples per pixel",
				},
				cli.IntFlag{
					Name:  "depth",
					Value: defaults.MaxDepth,
					Usage: "maximum number of ray bounces",
				},
				cli.IntFlag{
					Name:  "workers",
					Value: 0,
					Usage: "number of render workers (0 = one per logical CPU)",
				},
				cli.StringFlag{
					Name:  "scene, s",
					Value: scene.DefaultSceneID,
					Usage: "built-in scene to render (see list-scenes)",
				},
				cli.StringFlag{
					Name:  "scene-file",
					Usage: "JSON scene description; overrides --scene",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 0,
					Usage: "random seed (0 = seed from the clock)",
				},
				cli.IntFlag{
					Name:  "retries",
					Value: defaults.MaxRetries,
					Usage: "times a failed row is retried before giving up",
				},
				cli.DurationFlag{
					Name:  "timeout",
					Usage: "abort the render after this long (0 = no limit)",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "image.ppm",
					Usage: "image filename for the rendered frame",
				},
				cli.StringFlag{
					Name:  "cpuprofile",
					Usage: "write a CPU profile to this file",
				},
			},
			Action: cmd.RenderFrame,
		},
		{
			Name:  "list-scenes",
			Usage: "list built-in scenes and scene files",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "dir",
					Value: "scenes",
					Usage: "directory scanned for *.json scene descriptions",
				},
			},
			Action: cmd.ListScenes,
		},
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}
