package dds

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Magic is the four-byte signature leading every DDS stream ("DDS ").
const Magic uint32 = 0x20534444

const (
	// HeaderSize is the byte length of the fixed DDS header, excluding
	// the magic. The header's own Size field must declare this value.
	HeaderSize = 124
	// PixelFormatSize is the byte length of the embedded pixel format
	// structure, declared by its own Size field.
	PixelFormatSize = 32
)

// Header flags.
const (
	FlagCaps        = 0x1
	FlagHeight      = 0x2
	FlagWidth       = 0x4
	FlagPitch       = 0x8
	FlagPixelFormat = 0x1000
	FlagMipMapCount = 0x20000
	FlagLinearSize  = 0x80000
	FlagDepth       = 0x800000
)

// Pixel format flags.
const (
	PFAlphaPixels = 0x1
	PFAlpha       = 0x2
	PFFourCC      = 0x4
	PFRGB         = 0x40
	PFYUV         = 0x200
	PFLuminance   = 0x20000
)

// Caps flags.
const (
	CapsComplex = 0x8
	CapsMipMap  = 0x400000
	CapsTexture = 0x1000
)

// PixelFormat is the 32-byte pixel format structure embedded in the
// header at offset 72.
type PixelFormat struct {
	Size        uint32
	Flags       uint32
	FourCC      uint32
	RGBBitCount uint32
	RBitMask    uint32
	GBitMask    uint32
	BBitMask    uint32
	ABitMask    uint32
}

// Header is the fixed 124-byte DDS header. Field order matches the wire
// layout exactly: little-endian, height before width.
type Header struct {
	Size              uint32
	Flags             uint32
	Height            uint32
	Width             uint32
	PitchOrLinearSize uint32
	Depth             uint32
	MipMapCount       uint32
	Reserved1         [11]uint32
	PixelFormat       PixelFormat
	Caps              uint32
	Caps2             uint32
	Caps3             uint32
	Caps4             uint32
	Reserved2         uint32
}

// HeaderDX10 is the 20-byte extension following the header when the
// pixel format FourCC is "DX10".
type HeaderDX10 struct {
	DXGIFormat        uint32
	ResourceDimension uint32
	MiscFlag          uint32
	ArraySize         uint32
	MiscFlags2        uint32
}

// ReadHeader parses the magic and fixed header from r, validating the
// signature and the declared size fields. The header is parsed fresh on
// every call and never trusted partially: any validation failure rejects
// it outright. Positive dimensions are not required here; callers treat
// a zero width or height as "not a DDS file" rather than a parse error.
func ReadHeader(r io.Reader) (*Header, error) {
	var magic uint32
	if err := binary.Read(r, binary.LittleEndian, &magic); err != nil {
		return nil, fmt.Errorf("%w: magic: %v", ErrHeaderRead, err)
	}
	if magic != Magic {
		return nil, fmt.Errorf("%w: 0x%08x", ErrBadMagic, magic)
	}

	hdr := new(Header)
	if err := binary.Read(r, binary.LittleEndian, hdr); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHeaderRead, err)
	}

	if hdr.Size != HeaderSize {
		return nil, fmt.Errorf("%w: %d", ErrBadHeaderSize, hdr.Size)
	}
	if hdr.PixelFormat.Size != PixelFormatSize {
		return nil, fmt.Errorf("%w: %d", ErrBadPixelFormatSize, hdr.PixelFormat.Size)
	}

	return hdr, nil
}

// ReadHeaderDX10 parses the DX10 extension from r when hdr declares it.
// It returns nil without error for headers that carry no extension.
func ReadHeaderDX10(r io.Reader, hdr *Header) (*HeaderDX10, error) {
	if (hdr.PixelFormat.Flags&PFFourCC) == 0 || hdr.PixelFormat.FourCC != fourCC('D', 'X', '1', '0') {
		return nil, nil
	}

	ext := new(HeaderDX10)
	if err := binary.Read(r, binary.LittleEndian, ext); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDX10Read, err)
	}

	return ext, nil
}

// WriteHeader writes the magic and fixed header to w.
func WriteHeader(w io.Writer, hdr *Header) error {
	if err := binary.Write(w, binary.LittleEndian, Magic); err != nil {
		return fmt.Errorf("%w: magic: %v", ErrHeaderWrite, err)
	}
	if err := binary.Write(w, binary.LittleEndian, hdr); err != nil {
		return fmt.Errorf("%w: %v", ErrHeaderWrite, err)
	}

	return nil
}

// readHeaders parses the fixed header and, when present, the DX10
// extension, leaving r positioned at the start of the texture data.
func readHeaders(r io.Reader) (*Header, *HeaderDX10, error) {
	hdr, err := ReadHeader(r)
	if err != nil {
		return nil, nil, err
	}

	ext, err := ReadHeaderDX10(r, hdr)
	if err != nil {
		return nil, nil, err
	}

	return hdr, ext, nil
}
