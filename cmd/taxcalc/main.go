package main

import (
	"context"
	"os"
	"os/signal"

	"taxcalc/cmd/taxcalc/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := commands.Execute(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
