package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"productivity-clock/internal/cli"
	"productivity-clock/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	factory := NewHostFactory(getEnvironment())
	root := cli.NewRootCommand(config.NewLoader(), factory.CreateHost)

	if err := root.ExecuteContext(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, cli.UserMessage(err))
		stop()
		os.Exit(1)
	}
}
