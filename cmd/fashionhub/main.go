// Command fashionhub runs the FashionHub end-to-end checks: link validation,
// console error monitoring, the pull-request report and an HTTP link-check
// endpoint.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "fashionhub: %v\n", err)
		stop()
		os.Exit(1)
	}
}
