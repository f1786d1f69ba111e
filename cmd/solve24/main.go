// Command solve24 is a thin command-line caller of the search engine.
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := newRootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		newLogger(os.Stderr, false).Error("command failed", "error", err)
		stop()
		os.Exit(1)
	}
}
