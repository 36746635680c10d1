package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/urfave/cli/v3"

	"robotgrid/internal/center"
	"robotgrid/internal/config"
	"robotgrid/internal/logging"
	"robotgrid/internal/script"
)

func main() {
	if err := newCommand(os.Stdin, os.Stdout).Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func newCommand(in io.Reader, out io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "robotgrid",
		Usage:     "drive robots around a square table",
		ArgsUsage: "[script]",
		Reader:    in,
		Writer:    out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "config file (.yml, .yaml or .toml)",
				Sources: cli.EnvVars(config.EnvConfigPath),
			},
			&cli.BoolFlag{
				Name:  "show",
				Usage: "print the table after every command",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn or error",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return run(ctx, cmd, in, out)
		},
	}
}

func run(ctx context.Context, cmd *cli.Command, in io.Reader, out io.Writer) error {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return err
	}
	if lvl := cmd.String("log-level"); lvl != "" {
		cfg.Log.Level = &lvl
	}
	logger, closeLog, err := logging.Init(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	bounds, err := cfg.Bounds()
	if err != nil {
		return err
	}
	sh := &shell{
		center:   center.New(center.WithBounds(bounds), center.WithLogger(logger)),
		out:      out,
		show:     cfg.Show || cmd.Bool("show"),
		renderer: lipgloss.NewRenderer(out),
	}

	if cmd.Args().Len() == 0 {
		return sh.repl(ctx, in)
	}
	path := cmd.Args().First()
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	lines, err := script.Parse(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	logger.Debug("running script", "path", path, "lines", len(lines))
	return sh.runScript(ctx, lines)
}
