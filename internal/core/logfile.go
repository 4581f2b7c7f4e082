package core

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// LogFile reads a comma-separated cookie log from a seekable stream.
//
// Every read operation seeks back to the start of the stream first, so the
// same stream can serve any number of passes. That seek is a side effect on
// the caller's stream: a LogFile must not be used from several goroutines,
// and the stream must not be read by anything else in between.
type LogFile struct {
	stream io.ReadSeeker
}

// NewLogFile returns a LogFile reading from stream.
func NewLogFile(stream io.ReadSeeker) *LogFile {
	return &LogFile{stream: stream}
}

// rewind seeks the stream back to its start and returns a fresh line reader.
func (f *LogFile) rewind() (*bufio.Reader, error) {
	if _, err := f.stream.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewind log: %w", err)
	}
	return newLineReader(f.stream)
}

// Headers returns the tokenized first line of the log.
// It returns ErrEmptyLog if the stream holds no data.
func (f *LogFile) Headers() ([]string, error) {
	br, err := f.rewind()
	if err != nil {
		return nil, err
	}

	line, err := readLine(br)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyLog
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	return SplitLine(line), nil
}

// Rows returns an iterator over the tokenized lines of the log.
// With skipHeader the first line is consumed and not returned.
func (f *LogFile) Rows(skipHeader bool) (*RowIterator, error) {
	br, err := f.rewind()
	if err != nil {
		return nil, err
	}

	it := &RowIterator{reader: br}
	if skipHeader {
		if _, err := readLine(br); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read header: %w", err)
		}
		it.line = 1
	}
	return it, nil
}

// RowIterator walks a log one line at a time.
//
//	for it.Next() {
//	    fields := it.Row()
//	    ...
//	}
//	if err := it.Err(); err != nil { ... }
type RowIterator struct {
	reader *bufio.Reader
	line   int
	row    []string
	err    error
}

// Next reads the next line. It returns false at the end of the log or on a
// read failure, which Err then reports.
func (it *RowIterator) Next() bool {
	if it.err != nil || it.reader == nil {
		return false
	}

	text, err := readLine(it.reader)
	if err != nil {
		if !errors.Is(err, io.EOF) {
			it.err = fmt.Errorf("read line %d: %w", it.line+1, err)
		}
		it.row = nil
		it.reader = nil
		return false
	}

	it.line++
	it.row = SplitLine(text)
	return true
}

// Row returns the fields of the current line.
func (it *RowIterator) Row() []string {
	return it.row
}

// Line returns the 1-based line number of the current line. The header is line 1.
func (it *RowIterator) Line() int {
	return it.line
}

// Err returns the read failure that stopped iteration, if any.
func (it *RowIterator) Err() error {
	return it.err
}
