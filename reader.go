package rastercodec

import (
	"errors"
	"fmt"
	"log/slog"
)

// ReadCodec is the capability set one read format implements. The Reader
// wrapper supplies the shared validation and dispatch skeleton; codecs
// only provide format-specific behavior.
type ReadCodec interface {
	// Descriptor returns the codec's immutable format descriptor.
	Descriptor() Descriptor

	// Probe inspects the leading bytes of src and reports whether this
	// codec can decode it. On success it may inject derived parameters
	// (e.g. pixel format) into a non-nil bag; on failure it must leave
	// the bag untouched. A returned error is mapped to a no-match by the
	// Reader, never surfaced to the caller.
	Probe(src *Source, params *Params) (bool, error)

	// Decode fully decodes src into zero or more rasters. An empty,
	// error-free result means "nothing to decode", which is distinct
	// from a decode failure.
	Decode(src *Source, params *Params) ([]Raster, error)

	// DecodeMetadata populates params with header-derived facts without
	// constructing a raster.
	DecodeMetadata(src *Source, params *Params) error
}

// Reader wraps a ReadCodec with the shared read-path contract.
type Reader struct {
	codec ReadCodec
	log   *slog.Logger
}

// NewReader wraps codec using the default slog logger for diagnostics.
func NewReader(codec ReadCodec) *Reader {
	return NewReaderWithLogger(codec, nil)
}

// NewReaderWithLogger wraps codec with an explicit logger. A nil logger
// falls back to slog.Default().
func NewReaderWithLogger(codec ReadCodec, log *slog.Logger) *Reader {
	if log == nil {
		log = slog.Default()
	}

	return &Reader{codec: codec, log: log}
}

// Codec returns the wrapped codec.
func (r *Reader) Codec() ReadCodec {
	return r.codec
}

// CanRead reports whether the wrapped codec accepts src under the given
// suffix. It returns false when src is nil or the suffix is empty, when
// the suffix matches none of the codec's declared suffixes, or when the
// codec's probe rejects the content. Probe errors are logged at debug
// level and treated as a rejection; CanRead never fails and mutates
// nothing observable on rejection.
func (r *Reader) CanRead(src *Source, suffix string, params *Params) bool {
	if src == nil || suffix == "" {
		return false
	}
	if !r.codec.Descriptor().MatchesSuffix(suffix) {
		return false
	}

	ok, err := r.codec.Probe(src, params)
	if err != nil {
		r.log.Debug("codec probe failed",
			"source", src.Name(),
			"suffix", NormalizeSuffix(suffix),
			"error", err)
		return false
	}

	return ok
}

// Read decodes src into rasters. It validates arguments, re-runs the
// CanRead guard (so Read is safe to call without a prior CanRead, at the
// cost of probing twice), delegates to the codec, and normalizes any
// codec failure into a single wrapped error.
func (r *Reader) Read(src *Source, suffix string, params *Params) ([]Raster, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: source is nil", ErrInvalidArgument)
	}
	if suffix == "" {
		return nil, fmt.Errorf("%w: suffix is empty", ErrInvalidArgument)
	}
	if !r.CanRead(src, suffix, params) {
		return nil, fmt.Errorf("%w: %s: suffix %q", ErrUnsupportedFormat, src.Name(), NormalizeSuffix(suffix))
	}

	rasters, err := r.codec.Decode(src, params)
	if err != nil {
		return nil, r.wrapFailure(src, err)
	}

	return rasters, nil
}

// ReadMetadata populates params from the source header without decoding
// a raster, so callers can catalog sources cheaply.
func (r *Reader) ReadMetadata(src *Source, params *Params) error {
	if src == nil {
		return fmt.Errorf("%w: source is nil", ErrInvalidArgument)
	}
	if params == nil {
		return fmt.Errorf("%w: params is nil", ErrInvalidArgument)
	}

	if err := r.codec.DecodeMetadata(src, params); err != nil {
		return r.wrapFailure(src, err)
	}

	return nil
}

// wrapFailure normalizes a codec failure into a single read error.
// Contract violations keep their own class so callers can tell a
// configuration defect from an I/O failure.
func (r *Reader) wrapFailure(src *Source, err error) error {
	if errors.Is(err, ErrMissingParameter) || errors.Is(err, ErrInvalidArgument) {
		return err
	}

	return fmt.Errorf("%w: %s: %v", ErrRead, src.Name(), err)
}
