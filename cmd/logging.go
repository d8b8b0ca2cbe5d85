package cmd

import (
	"github.com/stephaneworkspace/R3D3/config"
	"github.com/stephaneworkspace/R3D3/log"
	"github.com/urfave/cli"
)

var logger = log.New("r3d3")

// Apply the configured log level. The global -v and -vv flags take
// precedence over the configuration.
func setupLogging(ctx *cli.Context, cfg *config.Config) error {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)

	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
	return nil
}
