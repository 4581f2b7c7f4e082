// Package service answers most-active queries for the CLI and the HTTP API.
//
// It opens the log, runs the analyzer and turns the outcome into a
// render.Report. File-backed queries are cached by log identity and date when
// a result cache is configured.
package service

import (
	"context"
	"errors"
	"io"

	"github.com/yankh764/cookies-analyzer/internal/cache"
	"github.com/yankh764/cookies-analyzer/internal/core"
	"github.com/yankh764/cookies-analyzer/internal/logging"
	"github.com/yankh764/cookies-analyzer/internal/render"
	"github.com/yankh764/cookies-analyzer/internal/source"
)

// Service runs most-active queries. It is safe for concurrent use.
type Service struct {
	results *cache.ResultCache
	limiter *Limiter
}

// New creates a Service. Either argument may be nil: a nil cache disables
// caching and a nil limiter leaves concurrency unbounded.
func New(results *cache.ResultCache, limiter *Limiter) *Service {
	return &Service{
		results: results,
		limiter: limiter,
	}
}

// Limiter returns the service's limiter, or nil.
func (s *Service) Limiter() *Limiter {
	return s.limiter
}

// AnalyzeFile reports the most active cookies of the log at path on date.
// A missing file yields a *source.NotFoundError.
func (s *Service) AnalyzeFile(ctx context.Context, path string, date core.Date) (render.Report, error) {
	logger := logging.WithFields(ctx, "file", path, "date", date.String())

	identity, err := source.Stat(path)
	if err != nil {
		return render.Report{}, err
	}

	key := cache.Key(identity.Key(), date.String())
	if s.caching() {
		report, err := s.results.Get(key)
		if err == nil {
			logger.Debug("result cache hit")
			return report, nil
		}
		if !errors.Is(err, cache.ErrKeyNotFound) {
			logger.Warn("result cache read failed", "error", err)
		}
	}

	release, err := s.acquire(ctx)
	if err != nil {
		return render.Report{}, err
	}
	defer release()

	stream, err := source.Open(path)
	if err != nil {
		return render.Report{}, err
	}
	defer stream.Close()

	report, err := s.analyze(ctx, path, stream, date)
	if err != nil {
		return render.Report{}, err
	}

	if s.caching() && !s.results.Put(key, report) {
		logger.Debug("result cache rejected report", "cookies", len(report.Cookies))
	}
	return report, nil
}

// AnalyzeReader reports the most active cookies of an in-memory or otherwise
// seekable log. name labels the report; results are never cached.
func (s *Service) AnalyzeReader(ctx context.Context, name string, stream io.ReadSeeker, date core.Date) (render.Report, error) {
	release, err := s.acquire(ctx)
	if err != nil {
		return render.Report{}, err
	}
	defer release()

	return s.analyze(ctx, name, stream, date)
}

func (s *Service) analyze(ctx context.Context, name string, stream io.ReadSeeker, date core.Date) (render.Report, error) {
	logger := logging.WithFields(ctx, "file", name)

	analyzer, err := core.NewAnalyzer(stream, core.WithLogger(logger))
	if err != nil {
		return render.Report{}, err
	}

	analysis, err := analyzer.Analyze(date)
	if err != nil {
		return render.Report{}, err
	}

	return render.Report{
		File:     name,
		Date:     date.String(),
		MaxCount: analysis.MaxCount,
		Cookies:  analysis.MostActive(),
	}, nil
}

func (s *Service) caching() bool {
	return s.results != nil && s.results.Enabled()
}

func (s *Service) acquire(ctx context.Context) (func(), error) {
	if s.limiter == nil {
		return func() {}, nil
	}
	if err := s.limiter.Acquire(ctx); err != nil {
		return nil, err
	}
	return s.limiter.Release, nil
}
