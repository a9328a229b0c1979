package dds

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

func TestDeflateInflateRoundTrip(t *testing.T) {
	t.Parallel()

	data := make([]byte, 128*1024)
	for i := range data {
		data[i] = byte((i*31 + 7) & 0xff)
	}

	magic, body, err := deflateBlock(data)
	if err != nil {
		t.Fatalf("deflateBlock: %v", err)
	}
	if magic != blockMagicLZ4 {
		t.Fatalf("periodic data must compress, got %q", magic)
	}
	if len(body) >= len(data) {
		t.Fatalf("compressed body not smaller: %d >= %d", len(body), len(data))
	}
	if got := int(binary.LittleEndian.Uint32(body[:4])); got != len(data) {
		t.Fatalf("declared size %d, want %d", got, len(data))
	}

	out, err := inflateChunkStream(body[4:], len(data))
	if err != nil {
		t.Fatalf("inflateChunkStream: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatalf("round-trip mismatch")
	}
}

func TestDeflateBlockCopyFallbacks(t *testing.T) {
	t.Parallel()

	t.Run("tiny-payload", func(t *testing.T) {
		t.Parallel()

		data := make([]byte, 512)
		magic, body, err := deflateBlock(data)
		if err != nil {
			t.Fatalf("deflateBlock: %v", err)
		}
		if magic != blockMagicCopy || !bytes.Equal(body, data) {
			t.Fatalf("tiny payloads must be stored verbatim")
		}
	})

	t.Run("incompressible", func(t *testing.T) {
		t.Parallel()

		// LCG noise defeats match-based compression
		data := make([]byte, 8*1024)
		state := uint32(0x12345678)
		for i := range data {
			state = state*1664525 + 1013904223
			data[i] = byte(state >> 24)
		}

		magic, body, err := deflateBlock(data)
		if err != nil {
			t.Fatalf("deflateBlock: %v", err)
		}
		if magic != blockMagicCopy || !bytes.Equal(body, data) {
			t.Fatalf("incompressible payloads must fall back to COPY")
		}
	})
}

func TestInflateChunkStreamErrors(t *testing.T) {
	t.Parallel()

	t.Run("bad-target", func(t *testing.T) {
		t.Parallel()

		if _, err := inflateChunkStream(nil, 0); !errors.Is(err, ErrInflateSize) {
			t.Fatalf("expected ErrInflateSize, got %v", err)
		}
	})

	t.Run("truncated-frame", func(t *testing.T) {
		t.Parallel()

		if _, err := inflateChunkStream([]byte{1, 0}, 16); !errors.Is(err, ErrChunkTruncated) {
			t.Fatalf("expected ErrChunkTruncated, got %v", err)
		}
	})

	t.Run("unknown-flags", func(t *testing.T) {
		t.Parallel()

		frame := []byte{1, 0, 0, 0x40, 0xaa}
		if _, err := inflateChunkStream(frame, 16); !errors.Is(err, ErrChunkFlags) {
			t.Fatalf("expected ErrChunkFlags, got %v", err)
		}
	})

	t.Run("chunk-larger-than-stream", func(t *testing.T) {
		t.Parallel()

		frame := []byte{0xff, 0x00, 0x00, 0x80, 0xaa}
		if _, err := inflateChunkStream(frame, 16); !errors.Is(err, ErrChunkSize) {
			t.Fatalf("expected ErrChunkSize, got %v", err)
		}
	})
}

func TestReadBlockTableErrors(t *testing.T) {
	t.Parallel()

	t.Run("unknown-magic", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		buf.WriteString("ABCD")
		_ = binary.Write(&buf, binary.LittleEndian, int32(8))

		if _, err := readBlockTable(&buf, 1); !errors.Is(err, ErrUnknownBlockMagic) {
			t.Fatalf("expected ErrUnknownBlockMagic, got %v", err)
		}
	})

	t.Run("negative-size", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		buf.WriteString(blockMagicCopy)
		_ = binary.Write(&buf, binary.LittleEndian, int32(-1))

		if _, err := readBlockTable(&buf, 1); !errors.Is(err, ErrInvalidBlockSize) {
			t.Fatalf("expected ErrInvalidBlockSize, got %v", err)
		}
	})

	t.Run("truncated-table", func(t *testing.T) {
		t.Parallel()

		if _, err := readBlockTable(bytes.NewReader([]byte("CO")), 1); !errors.Is(err, ErrBlockTableRead) {
			t.Fatalf("expected ErrBlockTableRead, got %v", err)
		}
	})
}

func TestReadBlockCopySizeMismatch(t *testing.T) {
	t.Parallel()

	body := make([]byte, 8)
	entry := blockEntry{magic: blockMagicCopy, size: 8}

	if _, err := readBlock(bytes.NewReader(body), entry, 16); !errors.Is(err, ErrPayloadSize) {
		t.Fatalf("expected ErrPayloadSize, got %v", err)
	}
}
