package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"github.com/bankcat-dev/bankcat/internal/commands"
	"github.com/bankcat-dev/bankcat/internal/logging"
)

func main() {
	// Fallback setup; the root command reconfigures the level from
	// --loglevel before running.
	_ = logging.Setup("info")

	if err := commands.NewRootCommand().Execute(); err != nil {
		log.Error().Msg(err.Error())
		os.Exit(1)
	}
}
