package cli

import (
	"github.com/spf13/cobra"
	"github.com/woliveiras/datafetch/internal/config"
	"github.com/woliveiras/datafetch/pkg/fetch"
	"go.uber.org/zap"
)

func (a *app) rootCommand() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "datafetch",
		Short: "Fetch the test dataset if it is not already present",
		Long: `datafetch makes sure the dataset root exists and shallow-clones the dataset
repository into <root>/<name> unless that directory is already there.

An existing directory is never updated or validated; delete it to fetch again.
Run "datafetch status" to check whether an existing directory is a complete checkout.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := a.loadConfig(cmd)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			if dryRun {
				return a.printPlan(cfg)
			}
			return a.fetch(cmd, cfg, logger)
		},
	}

	cmd.SetErr(a.errOut)

	pf := cmd.PersistentFlags()
	pf.String("config", "", "config file (default ./datafetch.yaml if present)")
	pf.String("root", config.DefaultRoot, "directory holding datasets")
	pf.String("name", config.DefaultName, "dataset directory name under root")
	pf.String("remote", config.DefaultRemote, "repository URL to clone")
	pf.Int("depth", fetch.DefaultDepth, "number of revisions to fetch")
	pf.String("cloner", fetch.ClonerExec, "clone backend: exec, go-git or noop")
	pf.String("state-log", "", "append a YAML record of each run to this file")
	pf.String("log-level", "info", "log level: debug, info, warn or error")

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "show what would happen without changing anything")

	cmd.AddCommand(a.planCommand(), a.statusCommand(), a.versionCommand())
	return cmd
}

func (a *app) fetch(cmd *cobra.Command, cfg config.Config, logger *zap.Logger) error {
	cloner, err := a.newCloner(cfg.Cloner, a.errOut)
	if err != nil {
		return err
	}

	opts := cfg.FetchOptions()
	outcome, err := fetch.New(opts, cloner).EnsureDataset(cmd.Context())

	if cfg.StateLog != "" {
		entry := fetch.NewStateEntry(opts, cfg.Cloner, outcome, err)
		if logErr := fetch.AppendStateLog(cfg.StateLog, entry); logErr != nil {
			logger.Warn("cannot write state log", zap.String("path", cfg.StateLog), zap.Error(logErr))
		}
	}
	return err
}
