package cmd

import (
	"bytes"
	"fmt"
	"runtime"

	"github.com/olekukonko/tablewriter"
	"github.com/stephaneworkspace/R3D3/config"
	"github.com/stephaneworkspace/R3D3/renderer"
	"github.com/urfave/cli"
)

// List connected monitors.
func ListMonitors(ctx *cli.Context) error {
	if err := setupLogging(ctx, config.Default()); err != nil {
		return err
	}

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	monitors, err := renderer.ListMonitors()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Name", "Primary", "Resolution", "Refresh rate", "Position", "Physical size"})
	for _, m := range monitors {
		table.Append([]string{
			m.Name,
			fmt.Sprintf("%t", m.Primary),
			fmt.Sprintf("%dx%d", m.Width, m.Height),
			fmt.Sprintf("%d Hz", m.RefreshRate),
			fmt.Sprintf("%d, %d", m.PosX, m.PosY),
			fmt.Sprintf("%dx%d mm", m.PhysicalW, m.PhysicalH),
		})
	}
	table.Render()

	logger.Noticef("system provides %d monitor(s)\n%s", len(monitors), buf.String())
	return nil
}
