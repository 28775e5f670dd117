// Command fitrank filters and ranks exercise catalogs.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/roach88/fitrank/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cli.NewRootCommand().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, "fitrank:", err)
	}
	os.Exit(cli.GetExitCode(err))
}
