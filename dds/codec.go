package dds

import (
	"fmt"
	"io"

	"github.com/woozymasta/bcn"

	"github.com/geowerk/rastercodec"
)

// Options configures a Codec. The zero value decodes with bcn defaults
// and encodes DXT1 plain DDS with a full mip chain.
type Options struct {
	// Decode is passed to the BCn decoder (e.g. Workers).
	Decode *bcn.DecodeOptions
	// Encode is passed to the BCn encoder (e.g. QualityLevel, Workers).
	Encode *bcn.EncodeOptions
	// Format selects the texture format for encoding. FormatUnknown
	// selects DXT1.
	Format bcn.Format
	// MipMaps limits the encoded mip levels; 0 keeps the full chain.
	MipMaps int
	// Compress encodes the EDDS container layout with LZ4 chunk-stream
	// blocks instead of a plain DDS payload.
	Compress bool
}

// Codec is the DDS format codec. It implements both
// rastercodec.ReadCodec and rastercodec.WriteCodec and is stateless
// aside from its options, so one instance is safely shared across
// concurrent callers.
type Codec struct {
	desc rastercodec.Descriptor
	opts Options
}

// New returns a Codec with default options.
func New() *Codec {
	return NewWithOptions(nil)
}

// NewWithOptions returns a Codec with the given options. Nil opts means
// defaults.
func NewWithOptions(opts *Options) *Codec {
	c := &Codec{
		desc: rastercodec.NewDescriptor(
			[]string{"image/dds", "image/x-dds"},
			[]string{"dds", "edds"},
		),
	}
	if opts != nil {
		c.opts = *opts
	}

	return c
}

// Descriptor returns the codec's format descriptor.
func (c *Codec) Descriptor() rastercodec.Descriptor {
	return c.desc
}

// Probe parses the header and accepts the source when parsing succeeds
// with positive dimensions. On acceptance it derives the pixel format
// into the bag unless the caller already set one; on rejection it
// mutates nothing.
func (c *Codec) Probe(src *rastercodec.Source, params *rastercodec.Params) (bool, error) {
	r, closeFn, err := src.Open()
	if err != nil {
		return false, err
	}
	defer func() { _ = closeFn() }()

	hdr, err := ReadHeader(r)
	if err != nil {
		return false, err
	}
	if hdr.Width == 0 || hdr.Height == 0 {
		return false, nil
	}

	if params != nil {
		params.SetIfAbsent(rastercodec.KeyPixelFormat, rastercodec.PixelFormatImage)
	}

	return true, nil
}

// Decode fully decodes the largest texture level of src into one
// raster. The parameter bag must carry the geographic sector key;
// decoding without spatial placement is a caller contract violation.
// A decoder that yields no image produces an empty result, not an
// error.
func (c *Codec) Decode(src *rastercodec.Source, params *rastercodec.Params) ([]rastercodec.Raster, error) {
	if params == nil || !params.Has(rastercodec.KeySector) {
		return nil, fmt.Errorf("%w: %s", rastercodec.ErrMissingParameter, rastercodec.KeySector)
	}

	r, closeFn, err := src.Open()
	if err != nil {
		return nil, err
	}
	defer func() { _ = closeFn() }()

	hdr, ext, err := readHeaders(r)
	if err != nil {
		return nil, err
	}

	format, name := detectFormat(hdr, ext)
	expected := payloadLength(format, int(hdr.Width), int(hdr.Height))
	if expected <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, name)
	}

	payload, err := readPayload(r, hdr, expected)
	if err != nil {
		return nil, err
	}

	img, err := bcn.DecodeImageWithOptions(payload, int(hdr.Width), int(hdr.Height), format, c.opts.Decode)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecodeImage, name, err)
	}
	if img == nil {
		return nil, nil
	}

	rp := rastercodec.NewParams()
	rp.Set(rastercodec.KeyWidth, int(hdr.Width))
	rp.Set(rastercodec.KeyHeight, int(hdr.Height))
	if sector, ok := params.Get(rastercodec.KeySector); ok {
		rp.Set(rastercodec.KeySector, sector)
	}

	raster := rastercodec.NewImageRaster(img, rp)
	// authoritative after a full decode, unlike the probe-time derivation
	raster.Params().Set(rastercodec.KeyPixelFormat, rastercodec.PixelFormatImage)

	return []rastercodec.Raster{raster}, nil
}

// DecodeMetadata parses the header only and populates width, height and
// pixel format into the bag. No raster is constructed.
func (c *Codec) DecodeMetadata(src *rastercodec.Source, params *rastercodec.Params) error {
	if params == nil {
		return fmt.Errorf("%w: params is nil", rastercodec.ErrInvalidArgument)
	}

	r, closeFn, err := src.Open()
	if err != nil {
		return err
	}
	defer func() { _ = closeFn() }()

	hdr, _, err := readHeaders(r)
	if err != nil {
		return err
	}

	params.Set(rastercodec.KeyWidth, int(hdr.Width))
	params.Set(rastercodec.KeyHeight, int(hdr.Height))
	params.Set(rastercodec.KeyPixelFormat, rastercodec.PixelFormatImage)

	return nil
}

// readPayload reads the largest texture level, handling both the plain
// DDS layout (level 0 leads the body) and the EDDS container (block
// table ordered smallest to largest, largest last).
func readPayload(r io.Reader, hdr *Header, expected int) ([]byte, error) {
	mips := uint32(1)
	if (hdr.Caps&CapsMipMap) != 0 && hdr.MipMapCount > 0 {
		mips = hdr.MipMapCount
	}

	if hdr.Reserved1[1] == enfusionMarker {
		table, err := readBlockTable(r, mips)
		if err != nil {
			return nil, err
		}
		for i, entry := range table {
			if uint32(i) == mips-1 {
				return readBlock(r, entry, expected)
			}
			if _, err := io.CopyN(io.Discard, r, int64(entry.size)); err != nil {
				return nil, fmt.Errorf("%w: skip mip %d: %v", ErrBlockRead, i, err)
			}
		}
		return nil, fmt.Errorf("%w: empty block table", ErrBlockTableRead)
	}

	payload := make([]byte, expected)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPayloadRead, err)
	}

	return payload, nil
}

// CanEncode accepts image-backed rasters.
func (c *Codec) CanEncode(raster rastercodec.Raster) bool {
	_, ok := raster.(*rastercodec.ImageRaster)
	return ok
}

// Encode compresses the raster into the configured texture format and
// writes a plain DDS stream, or the EDDS container when Compress is
// set. Mip levels beyond Options.MipMaps are dropped.
func (c *Codec) Encode(raster rastercodec.Raster, dst io.Writer, _ *rastercodec.Params) error {
	ir, ok := raster.(*rastercodec.ImageRaster)
	if !ok {
		return fmt.Errorf("%w: %T", ErrUnsupportedRaster, raster)
	}

	format := c.opts.Format
	if format == bcn.FormatUnknown {
		format = bcn.FormatDXT1
	}

	img := ir.Image()
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	mips := bcn.GenerateMipmaps(img, false)
	if c.opts.MipMaps > 0 && len(mips) > c.opts.MipMaps {
		mips = mips[:c.opts.MipMaps]
	}

	payloads := make([][]byte, len(mips))
	for i, mip := range mips {
		data, _, _, err := bcn.EncodeImageWithOptions(mip, format, c.opts.Encode)
		if err != nil {
			return fmt.Errorf("%w: mip %d: %v", ErrEncodeImage, i, err)
		}
		expected := payloadLength(format, mipDimension(width, i), mipDimension(height, i))
		if len(data) != expected {
			return fmt.Errorf("%w: mip %d: expected %d, got %d", ErrPayloadSize, i, expected, len(data))
		}
		payloads[i] = data
	}

	hdr, err := buildHeader(uint32(width), uint32(height), uint32(len(payloads)), format)
	if err != nil {
		return err
	}

	if c.opts.Compress {
		return writeBlocks(dst, hdr, payloads)
	}

	if err := WriteHeader(dst, hdr); err != nil {
		return err
	}
	for i, payload := range payloads {
		if _, err := dst.Write(payload); err != nil {
			return fmt.Errorf("%w: mip %d: %v", ErrEncodeImage, i, err)
		}
	}

	return nil
}

// writeBlocks writes the EDDS container: marked header, block table
// smallest to largest, then block bodies in the same order.
func writeBlocks(dst io.Writer, hdr *Header, payloads [][]byte) error {
	hdr.Reserved1[1] = enfusionMarker
	if err := WriteHeader(dst, hdr); err != nil {
		return err
	}

	magics := make([]string, len(payloads))
	bodies := make([][]byte, len(payloads))
	for i, payload := range payloads {
		magic, body, err := deflateBlock(payload)
		if err != nil {
			return fmt.Errorf("mip %d: %w", i, err)
		}
		magics[i] = magic
		bodies[i] = body
	}

	for i := len(bodies) - 1; i >= 0; i-- {
		if _, err := dst.Write([]byte(magics[i])); err != nil {
			return fmt.Errorf("%w: table mip %d: %v", ErrEncodeImage, i, err)
		}
		if err := writeInt32(dst, len(bodies[i])); err != nil {
			return fmt.Errorf("%w: table mip %d: %v", ErrEncodeImage, i, err)
		}
	}
	for i := len(bodies) - 1; i >= 0; i-- {
		if _, err := dst.Write(bodies[i]); err != nil {
			return fmt.Errorf("%w: body mip %d: %v", ErrEncodeImage, i, err)
		}
	}

	return nil
}

func writeInt32(w io.Writer, n int) error {
	if n < 0 || n > maxChunkBytes*0xff {
		return fmt.Errorf("%w: %d", ErrBlockTooLarge, n)
	}
	var raw [4]byte
	raw[0] = byte(n)
	raw[1] = byte(n >> 8)
	raw[2] = byte(n >> 16)
	raw[3] = byte(n >> 24)
	_, err := w.Write(raw[:])

	return err
}
