// Command errorgen generates error-correction exercises: random English
// paragraphs with injected learner mistakes, plus an answer text marking
// every altered word.
//
// Configuration is read from --config, ERRORGEN_CONFIG_PATH or
// ./errorgen.yaml, with environment overrides.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/myenglish-errorgen/cmd/errorgen/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := commands.Root().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
