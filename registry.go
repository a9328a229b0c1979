package rastercodec

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// Registry holds registered codecs and dispatches work to the first one
// whose guard accepts. Registration order is iteration order; there is
// no quality ranking between matching codecs. Safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	readers []*Reader
	writers []*Writer
	log     *slog.Logger
}

// NewRegistry returns an empty Registry using the default slog logger.
func NewRegistry() *Registry {
	return NewRegistryWithLogger(nil)
}

// NewRegistryWithLogger returns an empty Registry with an explicit
// logger. A nil logger falls back to slog.Default().
func NewRegistryWithLogger(log *slog.Logger) *Registry {
	if log == nil {
		log = slog.Default()
	}

	return &Registry{log: log}
}

// RegisterReader appends a read codec to the iteration order.
func (g *Registry) RegisterReader(codec ReadCodec) {
	g.mu.Lock()
	g.readers = append(g.readers, NewReaderWithLogger(codec, g.log))
	g.mu.Unlock()
}

// RegisterWriter appends a write codec to the iteration order.
func (g *Registry) RegisterWriter(codec WriteCodec) {
	g.mu.Lock()
	g.writers = append(g.writers, NewWriterWithLogger(codec, g.log))
	g.mu.Unlock()
}

// Readers returns the registered readers in iteration order.
func (g *Registry) Readers() []*Reader {
	g.mu.RLock()
	out := make([]*Reader, len(g.readers))
	copy(out, g.readers)
	g.mu.RUnlock()

	return out
}

// FindReader returns the first reader accepting src under suffix.
func (g *Registry) FindReader(src *Source, suffix string, params *Params) (*Reader, bool) {
	for _, r := range g.Readers() {
		if r.CanRead(src, suffix, params) {
			return r, true
		}
	}

	return nil, false
}

// Read decodes src with the first accepting codec.
func (g *Registry) Read(src *Source, suffix string, params *Params) ([]Raster, error) {
	r, ok := g.FindReader(src, suffix, params)
	if !ok {
		return nil, fmt.Errorf("%w: %s: suffix %q: no codec accepted", ErrUnsupportedFormat, src.Name(), NormalizeSuffix(suffix))
	}

	return r.Read(src, suffix, params)
}

// ReadMetadata populates params with the first accepting codec without
// decoding a raster.
func (g *Registry) ReadMetadata(src *Source, suffix string, params *Params) error {
	r, ok := g.FindReader(src, suffix, params)
	if !ok {
		return fmt.Errorf("%w: %s: suffix %q: no codec accepted", ErrUnsupportedFormat, src.Name(), NormalizeSuffix(suffix))
	}

	return r.ReadMetadata(src, params)
}

// Writers returns the registered writers in iteration order.
func (g *Registry) Writers() []*Writer {
	g.mu.RLock()
	out := make([]*Writer, len(g.writers))
	copy(out, g.writers)
	g.mu.RUnlock()

	return out
}

// FindWriter returns the first writer accepting the raster under suffix.
func (g *Registry) FindWriter(raster Raster, suffix string) (*Writer, bool) {
	for _, w := range g.Writers() {
		if w.CanWrite(raster, suffix) {
			return w, true
		}
	}

	return nil, false
}

// Write encodes raster with the first accepting codec.
func (g *Registry) Write(raster Raster, suffix string, dst io.Writer, params *Params) error {
	w, ok := g.FindWriter(raster, suffix)
	if !ok {
		return fmt.Errorf("%w: suffix %q: no codec accepted", ErrUnsupportedFormat, NormalizeSuffix(suffix))
	}

	return w.Write(raster, suffix, dst, params)
}
