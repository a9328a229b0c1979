package rastercodec

import (
	"sort"

	json "github.com/goccy/go-json"
)

// Well-known parameter bag keys.
const (
	// KeyWidth carries the raster width in pixels.
	KeyWidth = "WIDTH"
	// KeyHeight carries the raster height in pixels.
	KeyHeight = "HEIGHT"
	// KeyPixelFormat carries the decoded pixel format, e.g. PixelFormatImage.
	KeyPixelFormat = "PIXEL_FORMAT"
	// KeySector carries the geographic sector placing a raster; it is a
	// required input for decoding and is never produced by a codec.
	KeySector = "SECTOR"
)

// PixelFormatImage is the pixel-format value produced by image codecs.
const PixelFormatImage = "image"

// Params is the caller-owned key/value bag passed alongside a source or
// raster. Codecs mutate it in place as a side channel for derived facts.
// It is not internally synchronized; callers sharing one instance across
// goroutines must serialize access.
type Params struct {
	m map[string]any
}

// NewParams returns an empty bag.
func NewParams() *Params {
	return &Params{m: make(map[string]any)}
}

// Set stores val under key, overwriting any existing value. Use it for
// authoritative facts, e.g. the pixel format after a full decode.
func (p *Params) Set(key string, val any) {
	if p.m == nil {
		p.m = make(map[string]any)
	}
	p.m[key] = val
}

// SetIfAbsent stores val under key only when the caller has not already
// set it. It reports whether the value was stored. Use it for derived
// facts a probe supplies opportunistically.
func (p *Params) SetIfAbsent(key string, val any) bool {
	if p.Has(key) {
		return false
	}
	p.Set(key, val)

	return true
}

// Get returns the value stored under key and whether it was present.
func (p *Params) Get(key string) (any, bool) {
	if p == nil || p.m == nil {
		return nil, false
	}
	v, ok := p.m[key]

	return v, ok
}

// Value returns the value stored under key, or nil.
func (p *Params) Value(key string) any {
	v, _ := p.Get(key)
	return v
}

// Has reports whether key is present.
func (p *Params) Has(key string) bool {
	_, ok := p.Get(key)
	return ok
}

// Len returns the number of stored keys.
func (p *Params) Len() int {
	if p == nil {
		return 0
	}

	return len(p.m)
}

// Keys returns the stored keys in sorted order.
func (p *Params) Keys() []string {
	if p == nil {
		return nil
	}

	keys := make([]string, 0, len(p.m))
	for k := range p.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// Clone returns a shallow copy of the bag.
func (p *Params) Clone() *Params {
	out := NewParams()
	if p == nil {
		return out
	}
	for k, v := range p.m {
		out.m[k] = v
	}

	return out
}

// MarshalJSON encodes the bag as a JSON object.
func (p *Params) MarshalJSON() ([]byte, error) {
	if p == nil || p.m == nil {
		return []byte("{}"), nil
	}

	return json.Marshal(p.m)
}
