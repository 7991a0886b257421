package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

// Version is overridden at build time with -ldflags "-X".
var Version = "dev"

func (a *app) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of datafetch",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			a.ui.Println("datafetch version", strings.TrimSpace(Version))
		},
	}
}
