package dds

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/pierrec/lz4/v4"
)

// EDDS block magics.
const (
	blockMagicCopy = "COPY"
	blockMagicLZ4  = "LZ4 "
)

// chunkSize is the Enfusion chunk size for LZ4 streams; the inflate
// dictionary window has the same length.
const chunkSize = 64 * 1024

// maxChunkBytes bounds a single compressed chunk; its size is stored in
// three bytes of the chunk framing.
const maxChunkBytes = 0x7FFFFF

// blockEntry is one row of the EDDS block table. The table lists mips
// smallest to largest; size covers the full block body, including the
// uncompressed-size prefix of LZ4 blocks.
type blockEntry struct {
	magic string
	size  int32
}

// readBlockTable parses count table rows from r.
func readBlockTable(r io.Reader, count uint32) ([]blockEntry, error) {
	table := make([]blockEntry, 0, count)
	for i := uint32(0); i < count; i++ {
		var raw [4]byte
		if _, err := io.ReadFull(r, raw[:]); err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", ErrBlockTableRead, i, err)
		}

		magic := string(raw[:])
		if magic != blockMagicCopy && magic != blockMagicLZ4 {
			return nil, fmt.Errorf("%w: entry %d: %q", ErrUnknownBlockMagic, i, magic)
		}

		var size int32
		if err := binary.Read(r, binary.LittleEndian, &size); err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", ErrBlockTableRead, i, err)
		}
		if size < 0 {
			return nil, fmt.Errorf("%w: entry %d: %d", ErrInvalidBlockSize, i, size)
		}

		table = append(table, blockEntry{magic: magic, size: size})
	}

	return table, nil
}

// readBlock reads one block body from r and inflates it to exactly
// expected bytes.
func readBlock(r io.Reader, entry blockEntry, expected int) ([]byte, error) {
	body := make([]byte, entry.size)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrBlockRead, entry.magic, err)
	}

	switch entry.magic {
	case blockMagicCopy:
		if len(body) != expected {
			return nil, fmt.Errorf("%w: expected %d, got %d", ErrPayloadSize, expected, len(body))
		}
		return body, nil

	case blockMagicLZ4:
		if len(body) < 4 {
			return nil, fmt.Errorf("%w: %d bytes", ErrInvalidBlockSize, len(body))
		}
		target := int(binary.LittleEndian.Uint32(body[:4]))
		if target != expected {
			return nil, fmt.Errorf("%w: declared %d, expected %d", ErrPayloadSize, target, expected)
		}
		return inflateChunkStream(body[4:], target)

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBlockMagic, entry.magic)
	}
}

// inflateChunkStream decodes an Enfusion LZ4 chunk stream into exactly
// targetSize bytes. Each chunk is framed by a three-byte compressed size
// and a flag byte whose high bit marks the final chunk; chunks decode
// against the preceding 64KB of output as dictionary.
func inflateChunkStream(data []byte, targetSize int) ([]byte, error) {
	if targetSize <= 0 {
		return nil, fmt.Errorf("%w: target %d", ErrInflateSize, targetSize)
	}

	out := make([]byte, targetSize)
	pos := 0
	r := bytes.NewReader(data)

	for {
		var frame [4]byte
		if _, err := io.ReadFull(r, frame[:]); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrChunkTruncated, err)
		}

		size := int(frame[0]) | int(frame[1])<<8 | int(frame[2])<<16
		flags := frame[3]
		if flags&^0x80 != 0 {
			return nil, fmt.Errorf("%w: 0x%02x", ErrChunkFlags, flags)
		}
		if size <= 0 || size > r.Len() {
			return nil, fmt.Errorf("%w: %d (remaining %d)", ErrChunkSize, size, r.Len())
		}

		compressed := make([]byte, size)
		if _, err := io.ReadFull(r, compressed); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrChunkTruncated, err)
		}

		if pos >= targetSize {
			return nil, ErrInflateOverrun
		}
		want := targetSize - pos
		if want > chunkSize {
			want = chunkSize
		}

		dictStart := pos - chunkSize
		if dictStart < 0 {
			dictStart = 0
		}

		n, err := lz4.UncompressBlockWithDict(compressed, out[pos:pos+want], out[dictStart:pos])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLZ4Inflate, err)
		}
		pos += n

		if flags&0x80 != 0 {
			break
		}
	}

	if pos != targetSize {
		return nil, fmt.Errorf("%w: expected %d, got %d", ErrInflateSize, targetSize, pos)
	}
	if r.Len() != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrTrailingData, r.Len())
	}

	return out, nil
}

// deflateBlock compresses one mip payload into an EDDS block body.
// Payloads that are tiny or do not compress well fall back to a COPY
// block holding the data verbatim. The returned body excludes the block
// table row.
func deflateBlock(data []byte) (magic string, body []byte, err error) {
	if len(data) > maxChunkBytes*0xff {
		return "", nil, fmt.Errorf("%w: %d bytes", ErrBlockTooLarge, len(data))
	}
	if len(data) < 1024 {
		return blockMagicCopy, data, nil
	}

	var stream bytes.Buffer
	buf := make([]byte, lz4.CompressBlockBound(chunkSize))

	for off := 0; off < len(data); off += chunkSize {
		end := off + chunkSize
		if end > len(data) {
			end = len(data)
		}
		chunk := data[off:end]
		last := end == len(data)

		n, err := lz4.CompressBlockHC(chunk, buf, 0, nil, nil)
		if err != nil {
			return "", nil, fmt.Errorf("%w: %v", ErrLZ4Deflate, err)
		}
		if n == 0 || float64(n) > float64(len(chunk))*0.85 {
			// incompressible chunk, store the whole payload verbatim
			return blockMagicCopy, data, nil
		}
		if n > maxChunkBytes {
			return "", nil, fmt.Errorf("%w: chunk %d bytes", ErrBlockTooLarge, n)
		}

		stream.WriteByte(byte(n))
		stream.WriteByte(byte(n >> 8))
		stream.WriteByte(byte(n >> 16))
		if last {
			stream.WriteByte(0x80)
		} else {
			stream.WriteByte(0x00)
		}
		stream.Write(buf[:n])
	}

	if float64(4+stream.Len()) > float64(len(data))*0.85 {
		return blockMagicCopy, data, nil
	}

	body = make([]byte, 4+stream.Len())
	binary.LittleEndian.PutUint32(body[:4], uint32(len(data)))
	copy(body[4:], stream.Bytes())

	return blockMagicLZ4, body, nil
}
