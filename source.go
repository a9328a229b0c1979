package rastercodec

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// Source is an opaque, caller-owned byte origin: a file path, an
// in-memory buffer, or a seekable stream. Codecs open it fresh on every
// probe or decode call; nothing is cached between calls.
type Source struct {
	path   string
	data   []byte
	reader io.ReadSeeker
}

// FileSource names a file on disk.
func FileSource(path string) *Source {
	return &Source{path: path}
}

// BytesSource wraps an in-memory buffer.
func BytesSource(data []byte) *Source {
	return &Source{data: data}
}

// ReaderSource wraps a seekable stream. The stream is rewound to its
// start on every Open call.
func ReaderSource(r io.ReadSeeker) *Source {
	return &Source{reader: r}
}

// Name returns an identity string for error messages and logs.
func (s *Source) Name() string {
	switch {
	case s == nil:
		return "<nil>"
	case s.path != "":
		return s.path
	case s.data != nil:
		return fmt.Sprintf("<%d bytes>", len(s.data))
	default:
		return "<stream>"
	}
}

// Open returns a ReadSeeker positioned at the start of the source and a
// close func the caller must invoke when done.
func (s *Source) Open() (io.ReadSeeker, func() error, error) {
	noop := func() error { return nil }

	switch {
	case s == nil:
		return nil, noop, fmt.Errorf("%w: no source", ErrOpenSource)
	case s.path != "":
		f, err := os.Open(s.path)
		if err != nil {
			return nil, noop, fmt.Errorf("%w: %q: %v", ErrOpenSource, s.path, err)
		}
		return f, f.Close, nil
	case s.data != nil:
		return bytes.NewReader(s.data), noop, nil
	case s.reader != nil:
		if _, err := s.reader.Seek(0, io.SeekStart); err != nil {
			return nil, noop, fmt.Errorf("%w: rewind: %v", ErrOpenSource, err)
		}
		return s.reader, noop, nil
	default:
		return nil, noop, fmt.Errorf("%w: empty source", ErrOpenSource)
	}
}
