package rastercodec

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// WriteCodec is the capability set one write format implements.
type WriteCodec interface {
	// Descriptor returns the codec's immutable format descriptor.
	Descriptor() Descriptor

	// CanEncode reports whether this codec can encode the raster. It
	// never fails and has no side effects.
	CanEncode(raster Raster) bool

	// Encode serializes raster to dst. The parameter bag may carry
	// encoder hints; it is never required.
	Encode(raster Raster, dst io.Writer, params *Params) error
}

// Writer wraps a WriteCodec with the shared write-path contract,
// mirroring Reader.
type Writer struct {
	codec WriteCodec
	log   *slog.Logger
}

// NewWriter wraps codec using the default slog logger for diagnostics.
func NewWriter(codec WriteCodec) *Writer {
	return NewWriterWithLogger(codec, nil)
}

// NewWriterWithLogger wraps codec with an explicit logger. A nil logger
// falls back to slog.Default().
func NewWriterWithLogger(codec WriteCodec, log *slog.Logger) *Writer {
	if log == nil {
		log = slog.Default()
	}

	return &Writer{codec: codec, log: log}
}

// Codec returns the wrapped codec.
func (w *Writer) Codec() WriteCodec {
	return w.codec
}

// CanWrite reports whether the wrapped codec accepts the raster under
// the given suffix. It returns false when raster is nil or the suffix is
// empty or unmatched. CanWrite never fails.
func (w *Writer) CanWrite(raster Raster, suffix string) bool {
	if raster == nil || suffix == "" {
		return false
	}
	if !w.codec.Descriptor().MatchesSuffix(suffix) {
		return false
	}

	return w.codec.CanEncode(raster)
}

// Write encodes raster to dst. Like Read, it validates arguments,
// re-runs the CanWrite guard, and normalizes codec failures into a
// single wrapped error.
func (w *Writer) Write(raster Raster, suffix string, dst io.Writer, params *Params) error {
	if raster == nil {
		return fmt.Errorf("%w: raster is nil", ErrInvalidArgument)
	}
	if suffix == "" {
		return fmt.Errorf("%w: suffix is empty", ErrInvalidArgument)
	}
	if dst == nil {
		return fmt.Errorf("%w: destination is nil", ErrInvalidArgument)
	}
	if !w.CanWrite(raster, suffix) {
		return fmt.Errorf("%w: suffix %q", ErrUnsupportedFormat, NormalizeSuffix(suffix))
	}

	if err := w.codec.Encode(raster, dst, params); err != nil {
		if errors.Is(err, ErrMissingParameter) || errors.Is(err, ErrInvalidArgument) {
			return err
		}
		return fmt.Errorf("%w: suffix %q: %v", ErrWrite, NormalizeSuffix(suffix), err)
	}

	return nil
}
