package cmd

import (
	"bytes"
	"fmt"

	"github.com/df07/go-sphere-pathtracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// List built-in scenes and the scene files found in the scenes directory.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	scenes, err := scene.ListAllScenes(ctx.String("dir"))
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	writeSceneTable(&buf, scenes)
	logger.Noticef("%d scene(s) available\n%s", len(scenes), buf.String())
	return nil
}

func writeSceneTable(buf *bytes.Buffer, scenes []scene.SceneInfo) {
	table := tablewriter.NewWriter(buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"ID", "Name", "Type", "Spheres", "Description"})
	for _, info := range scenes {
		id := info.ID
		if id == scene.DefaultSceneID {
			id += " (default)"
		}
		table.Append([]string{
			id,
			info.DisplayName,
			info.Type,
			fmt.Sprintf("%d", info.Spheres),
			info.Description,
		})
	}
	table.Render()
}
