package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/woliveiras/datafetch/pkg/cli"
	"github.com/woliveiras/datafetch/pkg/fetch"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cli.Run(ctx, os.Args)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "datafetch: %v\n", err)
		os.Exit(fetch.ExitCode(err))
	}
}
