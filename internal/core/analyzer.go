package core

import (
	"io"
	"log/slog"
)

// Analyzer finds the most active cookies of a log for a given day.
//
// The log must be ordered by timestamp, newest first. Analysis stops at the
// first entry older than the target date, so rows after that point are never
// read; an unordered log gives undefined (usually truncated) results.
type Analyzer struct {
	file     *LogFile
	bindings []Column
	logger   *slog.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithLogger sets the logger used for debug output. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(a *Analyzer) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// NewAnalyzer reads the header row of stream and prepares the column bindings.
// It fails if the header row names an unsupported, duplicate or missing column.
func NewAnalyzer(stream io.ReadSeeker, opts ...Option) (*Analyzer, error) {
	a := &Analyzer{
		file:   NewLogFile(stream),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}

	headers, err := a.file.Headers()
	if err != nil {
		return nil, err
	}

	bindings, err := BuildBindings(headers)
	if err != nil {
		return nil, err
	}
	a.bindings = bindings

	return a, nil
}

// Bindings returns the columns in the order the log declares them.
func (a *Analyzer) Bindings() []Column {
	out := make([]Column, len(a.bindings))
	copy(out, a.bindings)
	return out
}

// Analyze counts how often each cookie was logged on target.
//
// Rows newer than target are skipped. The first row older than target ends
// the scan successfully. Any malformed row met before that point aborts the
// analysis with its error.
func (a *Analyzer) Analyze(target Date) (*Analysis, error) {
	rows, err := a.file.Rows(true)
	if err != nil {
		return nil, err
	}

	analysis := newAnalysis()
	stopped := false

scan:
	for rows.Next() {
		entry, err := DecodeRow(rows.Row(), a.bindings, rows.Line())
		if err != nil {
			return nil, err
		}

		day := entry.Date()
		switch {
		case day.Before(target):
			stopped = true
			break scan
		case day == target:
			analysis.add(entry.Cookie)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	a.logger.Debug("cookie log analyzed",
		"date", target.String(),
		"last_line", rows.Line(),
		"early_stop", stopped,
		"cookies", len(analysis.Counts),
		"max_count", analysis.MaxCount,
	)

	return analysis, nil
}

// MostActive returns the cookies logged most often on target, in first-seen order.
func (a *Analyzer) MostActive(target Date) ([]string, error) {
	analysis, err := a.Analyze(target)
	if err != nil {
		return nil, err
	}
	return analysis.MostActive(), nil
}

// Analysis holds the per-cookie counts for one target date.
type Analysis struct {
	// Counts maps each cookie seen on the target date to its occurrences.
	Counts map[string]int
	// MaxCount is the highest value in Counts, or 0 when Counts is empty.
	MaxCount int

	order []string
}

func newAnalysis() *Analysis {
	return &Analysis{Counts: make(map[string]int)}
}

func (a *Analysis) add(cookie string) {
	n := a.Counts[cookie] + 1
	if n == 1 {
		a.order = append(a.order, cookie)
	}
	a.Counts[cookie] = n
	if n > a.MaxCount {
		a.MaxCount = n
	}
}

// Cookies returns every counted cookie in the order it was first seen.
func (a *Analysis) Cookies() []string {
	out := make([]string, len(a.order))
	copy(out, a.order)
	return out
}

// MostActive returns all cookies whose count equals MaxCount, in first-seen
// order. Ties are all included. The result is empty, not nil, when nothing
// was counted.
func (a *Analysis) MostActive() []string {
	result := make([]string, 0, 1)
	if a.MaxCount == 0 {
		return result
	}
	for _, cookie := range a.order {
		if a.Counts[cookie] == a.MaxCount {
			result = append(result, cookie)
		}
	}
	return result
}
