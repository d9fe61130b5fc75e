package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/rs/zerolog"

	"github.com/maxviazov/paging-service/cmd/pagecalc/commands"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := commands.NewRootCmd(logger).ExecuteContext(ctx); err != nil {
		logger.Error().Err(err).Msg("pagecalc failed")
		stop()
		os.Exit(1)
	}
}
