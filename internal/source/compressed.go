package source

import (
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// rewindable is the part of a decoder a compressed stream needs.
type rewindable interface {
	io.Reader
	reset(r io.Reader) error
	close() error
}

// compressedStream decompresses file on the fly and supports rewinding.
type compressedStream struct {
	file    io.ReadSeekCloser
	decoder rewindable
	// atStart is true until the first byte is read after a rewind.
	atStart bool
}

func (s *compressedStream) Read(p []byte) (int, error) {
	n, err := s.decoder.Read(p)
	if n > 0 {
		s.atStart = false
	}
	return n, err
}

// Seek supports Seek(0, io.SeekStart), and Seek(0, io.SeekCurrent) while the
// stream is still at its start.
func (s *compressedStream) Seek(offset int64, whence int) (int64, error) {
	if offset != 0 {
		return 0, ErrUnsupportedSeek
	}
	switch whence {
	case io.SeekStart:
		if _, err := s.file.Seek(0, io.SeekStart); err != nil {
			return 0, err
		}
		if err := s.decoder.reset(s.file); err != nil {
			return 0, err
		}
		s.atStart = true
		return 0, nil
	case io.SeekCurrent:
		if s.atStart {
			return 0, nil
		}
	}
	return 0, ErrUnsupportedSeek
}

func (s *compressedStream) Close() error {
	decErr := s.decoder.close()
	fileErr := s.file.Close()
	if decErr != nil {
		return decErr
	}
	return fileErr
}

type gzipDecoder struct {
	*gzip.Reader
}

func (d gzipDecoder) reset(r io.Reader) error { return d.Reader.Reset(r) }
func (d gzipDecoder) close() error            { return d.Reader.Close() }

func newGzipStream(file io.ReadSeekCloser) (*compressedStream, error) {
	zr, err := gzip.NewReader(file)
	if err != nil {
		return nil, err
	}
	return &compressedStream{file: file, decoder: gzipDecoder{zr}, atStart: true}, nil
}

type zstdDecoder struct {
	*zstd.Decoder
}

func (d zstdDecoder) reset(r io.Reader) error { return d.Decoder.Reset(r) }
func (d zstdDecoder) close() error {
	d.Decoder.Close()
	return nil
}

func newZstdStream(file io.ReadSeekCloser) (*compressedStream, error) {
	// A single goroutine keeps decoding sequential and cheap to reset.
	dec, err := zstd.NewReader(file, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, err
	}
	return &compressedStream{file: file, decoder: zstdDecoder{dec}, atStart: true}, nil
}
