package cmd

import (
	"bytes"
	"runtime"

	"github.com/olekukonko/tablewriter"
	"github.com/stephaneworkspace/R3D3/renderer"
	"github.com/urfave/cli"
)

// Compile and link the configured shader pair without opening a visible
// window. Compiler and linker diagnostics are returned unmodified.
func CheckShaders(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	if err = setupLogging(ctx, cfg); err != nil {
		return err
	}

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	report, err := renderer.CheckShaders(cfg.Shaders.Vertex, cfg.Shaders.Fragment)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Stage", "Source", "Status"})
	table.Append([]string{"vertex", report.VertexPath, "compiled"})
	table.Append([]string{"fragment", report.FragmentPath, "compiled"})
	table.SetFooter([]string{"program", report.GLVersion, "linked"})
	table.Render()

	logger.Noticef("shader check\n%s", buf.String())
	return nil
}
