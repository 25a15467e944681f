// Package appshell adapts a runner to the process: signals, argv and exit status.
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"drach/internal/apperr"
)

// Runner is the signature of app.RunContext.
type Runner func(ctx context.Context, argv []string, stdout, stderr io.Writer) int

// Main runs r with os.Args and exits. A bare invocation prints help.
func Main(r Runner) {
	os.Exit(run(r, os.Args[1:], os.Stdout, os.Stderr))
}

func run(r Runner, argv []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if len(argv) == 0 {
		argv = []string{"--help"}
	}
	code := r(ctx, argv, stdout, stderr)
	if ctx.Err() != nil && code == apperr.ExitOK {
		code = apperr.ExitCanceled
	}
	return code
}
