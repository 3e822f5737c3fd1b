// Command fixturegen prints generated fixture values, one per line, for use in scripts and hand written test data.
//
//	fixturegen [--seed N] [--count N] COMMAND [FLAGS] [ARGS]
//
// Run without arguments to list the available commands.
package main

import (
	"context"
	"errors"
	"os"
	"syscall"

	"github.com/saylorsolutions/testkit/internal/cli"
	"github.com/saylorsolutions/testkit/internal/config"
)

func main() {
	ctx := cli.SignalContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	set := newCommandSet(config.Load())
	if err := set.Exec(ctx, os.Args[1:]); err != nil {
		if errors.Is(err, &cli.UsageError{}) {
			os.Exit(2)
		}
		set.Printer().Println("Error:", err)
		os.Exit(1)
	}
}
