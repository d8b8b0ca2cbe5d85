package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/stephaneworkspace/R3D3/config"
	"github.com/urfave/cli"
)

// Load the file passed with --config, or the defaults, and apply the
// command line overrides.
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	cfg := config.Default()
	if path := ctx.String("config"); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}

	if ctx.IsSet("width") {
		cfg.Window.Width = ctx.Int("width")
	}
	if ctx.IsSet("height") {
		cfg.Window.Height = ctx.Int("height")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Print the effective configuration.
func DumpConfig(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}

// Write the default configuration to a new file.
func InitConfig(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return errors.New("missing config file argument")
	}
	path := ctx.Args().First()

	if _, err := os.Stat(path); err == nil && !ctx.Bool("force") {
		return fmt.Errorf("%s already exists; use --force to overwrite it", path)
	}

	if err := config.Save(path, config.Default()); err != nil {
		return err
	}
	logger.Noticef("wrote default configuration to %s", path)
	return nil
}
