package rastercodec

import (
	"bytes"
	"testing"
)

func TestParamsSetAndSetIfAbsent(t *testing.T) {
	t.Parallel()

	p := NewParams()

	if !p.SetIfAbsent(KeyPixelFormat, PixelFormatImage) {
		t.Fatalf("SetIfAbsent on empty bag must store")
	}
	if p.SetIfAbsent(KeyPixelFormat, "elevation") {
		t.Fatalf("SetIfAbsent must not overwrite")
	}
	if got := p.Value(KeyPixelFormat); got != PixelFormatImage {
		t.Fatalf("Value(%s) = %v, want %q", KeyPixelFormat, got, PixelFormatImage)
	}

	p.Set(KeyPixelFormat, "elevation")
	if got := p.Value(KeyPixelFormat); got != "elevation" {
		t.Fatalf("Set must overwrite, got %v", got)
	}
}

func TestParamsKeysSortedAndClone(t *testing.T) {
	t.Parallel()

	p := NewParams()
	p.Set(KeyWidth, 64)
	p.Set(KeyHeight, 128)
	p.Set(KeySector, "sector")

	keys := p.Keys()
	if len(keys) != 3 || keys[0] != KeyHeight || keys[1] != KeySector || keys[2] != KeyWidth {
		t.Fatalf("unexpected key order: %v", keys)
	}

	c := p.Clone()
	c.Set(KeyWidth, 32)
	if p.Value(KeyWidth) != 64 {
		t.Fatalf("Clone must not alias the original bag")
	}
	if c.Len() != 3 || p.Len() != 3 {
		t.Fatalf("unexpected lengths: clone=%d orig=%d", c.Len(), p.Len())
	}
}

func TestParamsNilSafety(t *testing.T) {
	t.Parallel()

	var p *Params

	if p.Has(KeyWidth) {
		t.Fatalf("nil bag must not report keys")
	}
	if p.Len() != 0 {
		t.Fatalf("nil bag must be empty")
	}
	if v := p.Value(KeyWidth); v != nil {
		t.Fatalf("nil bag must return nil values, got %v", v)
	}
}

func TestParamsMarshalJSON(t *testing.T) {
	t.Parallel()

	p := NewParams()
	p.Set(KeyWidth, 64)

	out, err := p.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	if !bytes.Contains(out, []byte(`"WIDTH":64`)) {
		t.Fatalf("unexpected JSON: %s", out)
	}

	empty := NewParams()
	out, err = empty.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON empty: %v", err)
	}
	if string(out) != "{}" {
		t.Fatalf("empty bag JSON = %s, want {}", out)
	}
}
