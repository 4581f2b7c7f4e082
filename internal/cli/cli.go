// Package cli implements the cookies-analyzer command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/yankh764/cookies-analyzer/internal/config"
	"github.com/yankh764/cookies-analyzer/internal/core"
	"github.com/yankh764/cookies-analyzer/internal/logging"
	"github.com/yankh764/cookies-analyzer/internal/render"
	"github.com/yankh764/cookies-analyzer/internal/service"
	"github.com/yankh764/cookies-analyzer/internal/source"
)

// ExitError is a custom error type that includes a specific exit code.
// Message is printed verbatim to stderr.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

type rootOptions struct {
	file      string
	date      string
	format    string
	logLevel  string
	logFormat string
}

// Execute runs the command line described by args. Results go to stdout,
// logs and help errors to stderr. Any failure is returned as an *ExitError.
func Execute(ctx context.Context, cfg *config.Config, stdout, stderr io.Writer, args []string) error {
	cmd := NewRootCommand(cfg, stdout, stderr)
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(ctx); err != nil {
		return toExitError(err)
	}
	return nil
}

// NewRootCommand builds the command tree: the root command answers a single
// most-active query and "serve" starts the HTTP API.
func NewRootCommand(cfg *config.Config, stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "cookies-analyzer -f <file> -d <YYYY-MM-DD>",
		Short: "Find the most active cookies of a day",
		Long: `cookies-analyzer reads a cookie log (cookie,timestamp rows, newest first)
and prints the cookies seen most often on the given UTC day, one per line.

Logs ending in .gz or .zst are decompressed on the fly.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := validateLogging(opts.logLevel, opts.logFormat); err != nil {
				return err
			}
			logging.Setup(stderr, opts.logLevel, opts.logFormat)
			cmd.SetContext(logging.WithRunID(cmd.Context(), uuid.NewString()))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd.Context(), opts, stdout)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringVarP(&opts.file, "file", "f", "", "path to the cookie log")
	flags.StringVarP(&opts.date, "date", "d", "", "day to analyze, as YYYY-MM-DD")
	flags.StringVar(&opts.format, "format", render.FormatText, "output format: text or json")
	cmd.MarkFlagRequired("file")
	cmd.MarkFlagRequired("date")

	persistent := cmd.PersistentFlags()
	persistent.StringVar(&opts.logLevel, "log-level", cfg.Logging.Level, "log level: debug, info, warn or error")
	persistent.StringVar(&opts.logFormat, "log-format", cfg.Logging.Format, "log format: text or json")

	cmd.AddCommand(newServeCommand(cfg))
	return cmd
}

func runAnalyze(ctx context.Context, opts *rootOptions, stdout io.Writer) error {
	if !render.ValidFormat(opts.format) {
		return fmt.Errorf("invalid format %q: must be 'text' or 'json'", opts.format)
	}

	date, err := core.ParseDate(opts.date)
	if err != nil {
		return err
	}

	logger := logging.WithFields(ctx, "file", opts.file, "date", date.String())
	logger.Debug("analysis started")

	report, err := service.New(nil, nil).AnalyzeFile(ctx, opts.file, date)
	if err != nil {
		return err
	}

	logger.Debug("analysis finished", "max_count", report.MaxCount, "cookies", len(report.Cookies))
	return render.Write(stdout, opts.format, report)
}

func validateLogging(level, format string) error {
	switch strings.ToLower(level) {
	case "debug", "info", "warn", "error":
	default:
		return errors.New("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}

	switch strings.ToLower(format) {
	case "text", "json":
	default:
		return errors.New("invalid log-format: must be 'text' or 'json'")
	}
	return nil
}

// toExitError renders err the way the command line reports failures.
func toExitError(err error) *ExitError {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}

	var notFound *source.NotFoundError
	if errors.As(err, &notFound) {
		return &ExitError{Code: 1, Message: fmt.Sprintf("Error: '%s' not found.", notFound.Path)}
	}
	return &ExitError{Code: 1, Message: "Error: " + err.Error()}
}
