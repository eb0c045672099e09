package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/sm-tools/social-pulse/pkg/runtime/terminal"
	"github.com/sm-tools/social-pulse/pkg/services/source"
)

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	ctx := logger.WithContext(context.Background())

	cli := terminal.NewCLI(terminal.Options{
		Sources: source.NewRegistry(map[string]source.Factory{
			"static": source.StaticFactory,
			"csv":    source.CSVFactory,
			"duckdb": source.DuckDBFactory,
		}),
		Output: os.Stdout,
	})

	if err := cli.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
