package main

import (
	"os"

	"github.com/stephaneworkspace/R3D3/cmd"
	"github.com/stephaneworkspace/R3D3/log"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	configFlag := cli.StringFlag{
		Name:  "config, c",
		Usage: "load settings from a yaml file",
	}

	app := cli.NewApp()
	app.Name = "r3d3"
	app.Usage = "minimal real-time 3D viewer"
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
			Name:  "view",
			Usage: "open an interactive viewer window",
			Description: `
Render a cube and debug lines through an orbiting target camera.

Controls:
  W/S A/D Space/Q   move the camera target (arrow keys and E/Left Ctrl also work)
  Shift             move faster
  Right mouse drag  rotate around the target
  Scroll wheel      zoom
  C                 toggle camera control
  R                 reset the camera
  Escape            quit`,
			Flags: []cli.Flag{
				configFlag,
				cli.IntFlag{
					Name:  "width",
					Value: 800,
					Usage: "window width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 600,
					Usage: "window height",
				},
			},
			Action: cmd.View,
		},
		{
			Name:        "check-shaders",
			Usage:       "compile and link the configured shaders",
			Description: `Open a hidden window, compile and link the configured shader pair and report the raw compiler or linker log on failure.`,
			Flags:       []cli.Flag{configFlag},
			Action:      cmd.CheckShaders,
		},
		{
			Name:   "list-monitors",
			Usage:  "list connected monitors",
			Action: cmd.ListMonitors,
		},
		{
			Name:  "config",
			Usage: "manage configuration files",
			Subcommands: []cli.Command{
				{
					Name:   "dump",
					Usage:  "print the effective configuration",
					Flags:  []cli.Flag{configFlag},
					Action: cmd.DumpConfig,
				},
				{
					Name:      "init",
					Usage:     "write the default configuration to a file",
					ArgsUsage: "config.yaml",
					Flags: []cli.Flag{
						cli.BoolFlag{
							Name:  "force, f",
							Usage: "overwrite an existing file",
						},
					},
					Action: cmd.InitConfig,
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.New("r3d3").Error(err)
		os.Exit(1)
	}
}
