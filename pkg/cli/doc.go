// Package cli provides the command-line interface used by datafetch.
//
// The root command resolves configuration (flags, DATAFETCH_* environment
// variables, an optional datafetch.yaml) and ensures the dataset checkout
// exists. Subcommands report the plan, the checkout status and the version.
// Use `Run` as the entry point when embedding the CLI in other tools.
//
// Example usage:
//
//	if err := cli.Run(ctx, os.Args); err != nil {
//		fmt.Fprintln(os.Stderr, "datafetch:", err)
//		os.Exit(fetch.ExitCode(err))
//	}
package cli
