package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/woliveiras/datafetch/internal/config"
	"github.com/woliveiras/datafetch/internal/logging"
	"github.com/woliveiras/datafetch/pkg/fetch"
	"go.uber.org/zap"
)

// app carries the collaborators commands use. Tests swap them out.
type app struct {
	ui        UI
	errOut    io.Writer
	newCloner func(name string, out io.Writer) (fetch.ShallowCloner, error)
	newLogger func(level string) (*zap.Logger, error)
}

func defaultApp() *app {
	return &app{
		ui:        NewStdUI(),
		errOut:    os.Stderr,
		newCloner: fetch.NewCloner,
		newLogger: logging.New,
	}
}

// Run is the main entrypoint for the CLI. args includes the program name,
// as in os.Args. Errors are returned unprinted; use fetch.ExitCode to pick
// the process exit status.
func Run(ctx context.Context, args []string) error {
	return run(ctx, args, defaultApp())
}

// run is the internal implementation that allows injecting collaborators.
func run(ctx context.Context, args []string, a *app) error {
	if len(args) == 0 {
		return fmt.Errorf("no arguments provided")
	}

	cmd := a.rootCommand()
	cmd.SetArgs(args[1:])
	return cmd.ExecuteContext(ctx)
}

// loadConfig resolves configuration for cmd from defaults, the config file,
// DATAFETCH_* variables and flags, then installs the logger it asks for.
func (a *app) loadConfig(cmd *cobra.Command) (config.Config, *zap.Logger, error) {
	v := config.New()
	if err := config.BindFlags(v, cmd.Flags()); err != nil {
		return config.Config{}, nil, err
	}

	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(v, configFile)
	if err != nil {
		return config.Config{}, nil, err
	}

	logger, err := a.newLogger(cfg.LogLevel)
	if err != nil {
		return config.Config{}, nil, err
	}
	fetch.SetLogger(logger)
	return cfg, logger, nil
}
