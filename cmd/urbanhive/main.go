package main

import (
	"os"

	"github.com/urbanhive/urbanhive-client/internal/pkg/logger"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.Debug().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}
