package cmd

import (
	"bytes"
	"fmt"
	"runtime"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/olekukonko/tablewriter"
	"github.com/stephaneworkspace/R3D3/config"
	"github.com/stephaneworkspace/R3D3/renderer"
	"github.com/stephaneworkspace/R3D3/types"
	"github.com/urfave/cli"
)

// Open an interactive viewer window.
func View(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	if err = setupLogging(ctx, cfg); err != nil {
		return err
	}

	// glfw and opengl calls must come from the main thread
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	r, err := renderer.NewViewer(optionsFromConfig(cfg))
	if err != nil {
		return err
	}
	defer r.Close()

	if err = r.Render(); err != nil {
		return err
	}

	displayFrameStats(r.Stats())
	return nil
}

// Convert a configuration to renderer options. Angles are converted to
// radians.
func optionsFromConfig(cfg *config.Config) renderer.Options {
	cam := cfg.Camera
	return renderer.Options{
		Title:          cfg.Window.Title,
		FrameW:         uint32(cfg.Window.Width),
		FrameH:         uint32(cfg.Window.Height),
		VSync:          cfg.Window.VSync,
		ClearColor:     types.XYZ(cfg.ClearColor[0], cfg.ClearColor[1], cfg.ClearColor[2]),
		VertexShader:   cfg.Shaders.Vertex,
		FragmentShader: cfg.Shaders.Fragment,
		MarkerSize:     cfg.Debug.MarkerSize,
		ShowAxes:       cfg.Debug.ShowAxes,
		Camera: renderer.CameraOptions{
			FOV:               mgl32.DegToRad(cam.FOVDegrees),
			Near:              cam.Near,
			Far:               cam.Far,
			Yaw:               mgl32.DegToRad(cam.YawDegrees),
			Pitch:             mgl32.DegToRad(cam.PitchDegrees),
			Distance:          cam.Distance,
			MinDistance:       cam.MinDistance,
			MaxDistance:       cam.MaxDistance,
			MoveSpeed:         cam.MoveSpeed,
			FasterMultiplier:  cam.FasterMultiplier,
			RotateSensitivity: cam.RotateSensitivity,
			ZoomSensitivity:   cam.ZoomSensitivity,
		},
	}
}

func displayFrameStats(stats renderer.FrameStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Frames", "Min frame time", "Max frame time", "Avg frame time"})
	table.Append([]string{
		fmt.Sprintf("%d", stats.Frames),
		stats.MinFrameTime.String(),
		stats.MaxFrameTime.String(),
		stats.AvgFrameTime().String(),
	})
	table.SetFooter([]string{"", "", "FPS", fmt.Sprintf("%3.1f", stats.FPS())})

	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())
}
