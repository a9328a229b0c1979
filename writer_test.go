package rastercodec

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

type stubWriteCodec struct {
	desc      Descriptor
	canEncode bool
	encodeErr error
	encoded   int
}

func (s *stubWriteCodec) Descriptor() Descriptor { return s.desc }

func (s *stubWriteCodec) CanEncode(_ Raster) bool { return s.canEncode }

func (s *stubWriteCodec) Encode(_ Raster, dst io.Writer, _ *Params) error {
	if s.encodeErr != nil {
		return s.encodeErr
	}
	s.encoded++
	_, err := dst.Write([]byte("data"))

	return err
}

func TestWriterCanWrite(t *testing.T) {
	t.Parallel()

	codec := &stubWriteCodec{
		desc:      NewDescriptor(nil, []string{"dds"}),
		canEncode: true,
	}
	w := NewWriterWithLogger(codec, quietLogger())
	raster := NewImageRaster(testImage(1, 1), nil)

	if w.CanWrite(nil, "dds") {
		t.Fatalf("nil raster must be rejected")
	}
	if w.CanWrite(raster, "") {
		t.Fatalf("empty suffix must be rejected")
	}
	if w.CanWrite(raster, "png") {
		t.Fatalf("unmatched suffix must be rejected")
	}
	if !w.CanWrite(raster, ".DDS") {
		t.Fatalf("matched suffix must be accepted")
	}
}

func TestWriterWriteValidationAndDispatch(t *testing.T) {
	t.Parallel()

	codec := &stubWriteCodec{canEncode: true}
	w := NewWriterWithLogger(codec, quietLogger())
	raster := NewImageRaster(testImage(1, 1), nil)
	var buf bytes.Buffer

	if err := w.Write(nil, "dds", &buf, nil); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("nil raster: expected ErrInvalidArgument, got %v", err)
	}
	if err := w.Write(raster, "", &buf, nil); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("empty suffix: expected ErrInvalidArgument, got %v", err)
	}
	if err := w.Write(raster, "dds", nil, nil); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("nil destination: expected ErrInvalidArgument, got %v", err)
	}

	if err := w.Write(raster, "dds", &buf, nil); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if codec.encoded != 1 || buf.Len() == 0 {
		t.Fatalf("encode did not run")
	}
}

func TestWriterWriteUnsupported(t *testing.T) {
	t.Parallel()

	codec := &stubWriteCodec{canEncode: false}
	w := NewWriterWithLogger(codec, quietLogger())
	raster := NewImageRaster(testImage(1, 1), nil)

	err := w.Write(raster, "dds", &bytes.Buffer{}, nil)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestWriterWriteWrapsEncodeFailure(t *testing.T) {
	t.Parallel()

	codec := &stubWriteCodec{canEncode: true, encodeErr: errors.New("disk full")}
	w := NewWriterWithLogger(codec, quietLogger())
	raster := NewImageRaster(testImage(1, 1), nil)

	err := w.Write(raster, "dds", &bytes.Buffer{}, nil)
	if !errors.Is(err, ErrWrite) {
		t.Fatalf("expected ErrWrite, got %v", err)
	}
}
