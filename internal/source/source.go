// Package source opens cookie logs as seekable streams.
//
// Plain files are returned as-is. Files ending in .gz or .zst are decompressed
// on the fly; rewinding such a stream seeks the underlying file back to the
// start and resets the decoder, so the analyzer can make several passes
// without holding the decompressed log in memory.
package source

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrUnsupportedSeek is returned by compressed streams for any seek other
// than a rewind to the start.
var ErrUnsupportedSeek = errors.New("compressed log only supports seeking to the start")

// NotFoundError reports a log path that does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("log file not found: %s", e.Path)
}

// Is lets errors.Is(err, fs.ErrNotExist) match a NotFoundError.
func (e *NotFoundError) Is(target error) bool {
	return target == fs.ErrNotExist
}

// Compression identifies how a log file is encoded on disk.
type Compression string

const (
	CompressionNone Compression = "none"
	CompressionGzip Compression = "gzip"
	CompressionZstd Compression = "zstd"
)

// CompressionFor infers the compression of path from its extension.
func CompressionFor(path string) Compression {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz", ".gzip":
		return CompressionGzip
	case ".zst", ".zstd":
		return CompressionZstd
	default:
		return CompressionNone
	}
}

// Open opens the log at path as a seekable stream.
// A missing file yields a *NotFoundError.
func Open(path string) (io.ReadSeekCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, fmt.Errorf("open log: %w", err)
	}

	var stream io.ReadSeekCloser
	switch CompressionFor(path) {
	case CompressionGzip:
		stream, err = newGzipStream(f)
	case CompressionZstd:
		stream, err = newZstdStream(f)
	default:
		return f, nil
	}
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("open %s log: %w", CompressionFor(path), err)
	}
	return stream, nil
}

// Identity describes a log file version. Two identities are equal only if the
// path, size and modification time all match.
type Identity struct {
	Path    string
	Size    int64
	ModTime time.Time
}

// Key returns a string form of the identity suitable for cache keys.
func (id Identity) Key() string {
	return fmt.Sprintf("%s|%d|%d", id.Path, id.Size, id.ModTime.UnixNano())
}

// Stat returns the identity of the log at path.
func Stat(path string) (Identity, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Identity{}, &NotFoundError{Path: path}
		}
		return Identity{}, fmt.Errorf("stat log: %w", err)
	}
	if info.IsDir() {
		return Identity{}, fmt.Errorf("stat log: %s is a directory", path)
	}
	return Identity{Path: path, Size: info.Size(), ModTime: info.ModTime()}, nil
}
