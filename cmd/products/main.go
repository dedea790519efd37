package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/deppfellow/products/internal/app"
	"github.com/deppfellow/products/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	root := cli.NewRootCommand(func() (cli.Backend, error) {
		a, err := app.Open(os.Stderr)
		if err != nil {
			return nil, err
		}
		return a, nil
	})

	code := cli.Execute(ctx, root, os.Stderr)
	stop()
	os.Exit(code)
}
