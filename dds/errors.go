package dds

import "errors"

var (
	// ErrHeaderRead indicates the DDS header could not be read.
	ErrHeaderRead = errors.New("reading DDS header failed")
	// ErrBadMagic indicates the source does not start with the DDS magic.
	ErrBadMagic = errors.New("bad DDS magic")
	// ErrBadHeaderSize indicates the declared header size is not 124.
	ErrBadHeaderSize = errors.New("bad DDS header size")
	// ErrBadPixelFormatSize indicates the declared pixel format size is not 32.
	ErrBadPixelFormatSize = errors.New("bad DDS pixel format size")
	// ErrDX10Read indicates the DX10 extension header could not be read.
	ErrDX10Read = errors.New("reading DX10 header failed")
	// ErrHeaderWrite indicates the DDS header could not be written.
	ErrHeaderWrite = errors.New("writing DDS header failed")
	// ErrUnknownFormat indicates an unsupported DDS pixel format.
	ErrUnknownFormat = errors.New("unknown DDS pixel format")
	// ErrPayloadRead indicates the texture payload could not be read.
	ErrPayloadRead = errors.New("reading texture payload failed")
	// ErrPayloadSize indicates the texture payload size does not match the header.
	ErrPayloadSize = errors.New("texture payload size mismatch")
	// ErrDecodeImage indicates block decompression of the payload failed.
	ErrDecodeImage = errors.New("decode texture failed")
	// ErrEncodeImage indicates block compression of the raster failed.
	ErrEncodeImage = errors.New("encode texture failed")
	// ErrUnsupportedRaster indicates the raster type cannot be encoded.
	ErrUnsupportedRaster = errors.New("unsupported raster type")

	// ErrBlockTableRead indicates the EDDS block table could not be read.
	ErrBlockTableRead = errors.New("reading block table failed")
	// ErrUnknownBlockMagic indicates an unknown EDDS block magic.
	ErrUnknownBlockMagic = errors.New("unknown block magic")
	// ErrInvalidBlockSize indicates a negative or truncated block size.
	ErrInvalidBlockSize = errors.New("invalid block size")
	// ErrBlockRead indicates an EDDS block body could not be read.
	ErrBlockRead = errors.New("reading block body failed")
	// ErrBlockTooLarge indicates a payload exceeds the container limits.
	ErrBlockTooLarge = errors.New("block too large")
	// ErrChunkTruncated indicates the LZ4 chunk stream ended early.
	ErrChunkTruncated = errors.New("LZ4 chunk stream truncated")
	// ErrChunkFlags indicates unknown LZ4 chunk flags.
	ErrChunkFlags = errors.New("unknown LZ4 chunk flags")
	// ErrChunkSize indicates an invalid LZ4 chunk size.
	ErrChunkSize = errors.New("invalid LZ4 chunk size")
	// ErrInflateOverrun indicates inflated data overruns the target buffer.
	ErrInflateOverrun = errors.New("inflated data overruns target")
	// ErrInflateSize indicates the inflated size does not match the target.
	ErrInflateSize = errors.New("inflated size mismatch")
	// ErrTrailingData indicates leftover bytes after the chunk stream.
	ErrTrailingData = errors.New("trailing data after chunk stream")
	// ErrLZ4Inflate indicates LZ4 decompression failed.
	ErrLZ4Inflate = errors.New("LZ4 inflate failed")
	// ErrLZ4Deflate indicates LZ4 compression failed.
	ErrLZ4Deflate = errors.New("LZ4 deflate failed")
)
