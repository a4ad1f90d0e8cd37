package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fit-tools/fittrack/pkg/runtime/terminal"
	"github.com/fit-tools/fittrack/pkg/services/workout"
	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cli := terminal.NewCLI(terminal.Options{
		Registry: workout.NewDefaultRegistry(),
		Output:   os.Stdout,
	})

	if err := cli.ExecuteContext(logger.WithContext(context.Background())); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
