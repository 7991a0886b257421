package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/woliveiras/datafetch/pkg/fetch"
)

func (a *app) statusCommand() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Report what is checked out in the dataset directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := a.loadConfig(cmd)
			if err != nil {
				return err
			}

			path := cfg.FetchOptions().DatasetPath()
			st, err := fetch.Inspect(path)
			if err != nil {
				return err
			}
			a.ui.Printf("%s", st.String())

			if cfg.StateLog != "" {
				entries, err := fetch.ReadStateLog(cfg.StateLog)
				if err != nil {
					return err
				}
				if n := len(entries); n > 0 {
					last := entries[n-1]
					a.ui.Printf("  last run: %s at %s\n", last.Phase, last.Time)
				}
			}

			if check && !st.Complete() {
				return fmt.Errorf("dataset at %s is not a complete checkout", path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "exit non-zero unless the dataset is a complete checkout")
	return cmd
}
