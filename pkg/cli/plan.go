package cli

import (
	"github.com/spf13/cobra"
	"github.com/woliveiras/datafetch/internal/config"
	"github.com/woliveiras/datafetch/pkg/fetch"
)

func (a *app) planCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Show whether a fetch would clone or skip",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := a.loadConfig(cmd)
			if err != nil {
				return err
			}
			return a.printPlan(cfg)
		},
	}
}

func (a *app) printPlan(cfg config.Config) error {
	plan, err := fetch.Plan(cfg.FetchOptions())
	if err != nil {
		return err
	}
	a.ui.Printf("%s", plan.String())
	return nil
}
