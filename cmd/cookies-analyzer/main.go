package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/yankh764/cookies-analyzer/internal/cli"
	"github.com/yankh764/cookies-analyzer/internal/config"
)

func main() {
	os.Exit(run(os.Stdout, os.Stderr, os.Args[1:]))
}

// run loads configuration, executes the command line and returns the
// process exit code.
func run(stdout, stderr io.Writer, args []string) int {
	// Load .env file if it exists; real environment variables take precedence
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(stderr, "Error: read .env: %v\n", err)
		return 1
	}

	// Load and validate configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if err := cli.Execute(context.Background(), cfg, stdout, stderr, args); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(stderr, exitErr.Message)
			return exitErr.Code
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
