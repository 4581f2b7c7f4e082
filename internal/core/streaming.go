package core

// streaming.go reads a log line by line without loading it into memory.
//
// Lines have no length limit (bufio.Reader.ReadString grows as needed) and a
// UTF-8 byte order mark written by Windows tools is dropped before the header,
// otherwise it would be glued to the first header name.

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
)

// utf8BOM is the UTF-8 encoding of U+FEFF.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// newLineReader wraps r in a buffered reader positioned after any leading BOM.
func newLineReader(r io.Reader) (*bufio.Reader, error) {
	br := bufio.NewReader(r)

	prefix, err := br.Peek(len(utf8BOM))
	switch {
	case err == nil && bytes.Equal(prefix, utf8BOM):
		if _, err := br.Discard(len(utf8BOM)); err != nil {
			return nil, err
		}
	case err != nil && !errors.Is(err, io.EOF):
		// Short inputs report EOF from Peek; anything else is a read failure.
		return nil, err
	}

	return br, nil
}

// readLine returns the next line without its trailing newline.
// A final line without a newline is still returned; io.EOF is reported only
// once nothing is left.
func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return line, nil
		}
		return "", err
	}
	return strings.TrimSuffix(line, "\n"), nil
}
