package rastercodec

import (
	"bytes"
	"errors"
	"testing"
)

func TestRegistryFirstAcceptWins(t *testing.T) {
	t.Parallel()

	rejecting := &stubCodec{desc: NewDescriptor(nil, []string{"png"})}
	accepting := &stubCodec{
		desc:    NewDescriptor(nil, []string{"dds"}),
		probeOK: true,
		rasters: []Raster{NewImageRaster(testImage(1, 1), nil)},
	}

	reg := NewRegistryWithLogger(quietLogger())
	reg.RegisterReader(rejecting)
	reg.RegisterReader(accepting)

	r, ok := reg.FindReader(BytesSource([]byte{1}), "dds", nil)
	if !ok {
		t.Fatalf("expected a reader")
	}
	if r.Codec() != accepting {
		t.Fatalf("wrong codec selected")
	}
	if rejecting.probeCalls != 0 {
		t.Fatalf("suffix mismatch must skip the probe")
	}

	rasters, err := reg.Read(BytesSource([]byte{1}), "dds", NewParams())
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(rasters) != 1 {
		t.Fatalf("expected one raster, got %d", len(rasters))
	}
}

func TestRegistryNoAccept(t *testing.T) {
	t.Parallel()

	reg := NewRegistryWithLogger(quietLogger())
	reg.RegisterReader(&stubCodec{desc: NewDescriptor(nil, []string{"png"})})

	if _, err := reg.Read(BytesSource([]byte{1}), "dds", nil); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	if err := reg.ReadMetadata(BytesSource([]byte{1}), "dds", NewParams()); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestRegistryWriteDispatch(t *testing.T) {
	t.Parallel()

	codec := &stubWriteCodec{
		desc:      NewDescriptor(nil, []string{"dds"}),
		canEncode: true,
	}

	reg := NewRegistryWithLogger(quietLogger())
	reg.RegisterWriter(codec)

	raster := NewImageRaster(testImage(1, 1), nil)
	var buf bytes.Buffer

	if err := reg.Write(raster, "dds", &buf, nil); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := reg.Write(raster, "png", &buf, nil); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}
