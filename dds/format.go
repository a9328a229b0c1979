package dds

import (
	"fmt"

	"github.com/woozymasta/bcn"
)

// enfusionMarker in Reserved1[1] ("ENF1") flags the EDDS container
// layout: a block table and per-mip block bodies instead of a raw
// texture payload.
const enfusionMarker uint32 = 0x31464e45

func fourCC(a, b, c, d byte) uint32 {
	return uint32(a) | uint32(b)<<8 | uint32(c)<<16 | uint32(d)<<24
}

func fourCCString(v uint32) string {
	return string([]byte{
		byte(v & 0xff),
		byte((v >> 8) & 0xff),
		byte((v >> 16) & 0xff),
		byte((v >> 24) & 0xff),
	})
}

// detectFormat maps the parsed header (and optional DX10 extension) to a
// BCn decoder format, plus a human-readable name for diagnostics.
func detectFormat(hdr *Header, ext *HeaderDX10) (bcn.Format, string) {
	if ext != nil {
		return dxgiFormat(ext.DXGIFormat), fmt.Sprintf("DXGI %d", ext.DXGIFormat)
	}

	pf := hdr.PixelFormat
	if (pf.Flags & PFFourCC) != 0 {
		name := fourCCString(pf.FourCC)
		switch name {
		case "DXT1":
			return bcn.FormatDXT1, name
		case "DXT2", "DXT3":
			return bcn.FormatDXT3, name
		case "DXT4", "DXT5":
			return bcn.FormatDXT5, name
		case "ATI1", "BC4U", "BC4S":
			return bcn.FormatBC4, name
		case "ATI2", "BC5U", "BC5S":
			return bcn.FormatBC5, name
		default:
			return bcn.FormatUnknown, name
		}
	}

	if (pf.Flags&PFRGB) != 0 && (pf.Flags&PFAlphaPixels) != 0 && pf.RGBBitCount == 32 {
		if pf.RBitMask == 0x000000ff && pf.GBitMask == 0x0000ff00 &&
			pf.BBitMask == 0x00ff0000 && pf.ABitMask == 0xff000000 {
			return bcn.FormatRGBA8, "RGBA8"
		}
		if pf.RBitMask == 0x00ff0000 && pf.GBitMask == 0x0000ff00 &&
			pf.BBitMask == 0x000000ff && pf.ABitMask == 0xff000000 {
			return bcn.FormatBGRA8, "BGRA8"
		}
	}

	if (pf.Flags&PFLuminance) != 0 && pf.RGBBitCount == 8 {
		return bcn.FormatRGBA8, "LUMINANCE8"
	}

	return bcn.FormatUnknown, "UNKNOWN"
}

func dxgiFormat(v uint32) bcn.Format {
	switch v {
	case 71:
		return bcn.FormatDXT1
	case 74:
		return bcn.FormatDXT3
	case 77:
		return bcn.FormatDXT5
	case 80:
		return bcn.FormatBC4
	case 83:
		return bcn.FormatBC5
	case 87:
		return bcn.FormatBGRA8
	case 28:
		return bcn.FormatRGBA8
	default:
		return bcn.FormatUnknown
	}
}

// payloadLength returns the byte length of one texture level in the
// given format, or -1 for unknown formats.
func payloadLength(format bcn.Format, width, height int) int {
	blocksW := (width + 3) / 4
	blocksH := (height + 3) / 4

	switch format {
	case bcn.FormatDXT1, bcn.FormatBC4:
		return blocksW * blocksH * 8
	case bcn.FormatDXT3, bcn.FormatDXT5, bcn.FormatBC5:
		return blocksW * blocksH * 16
	case bcn.FormatRGBA8, bcn.FormatBGRA8:
		return width * height * 4
	default:
		return -1
	}
}

// mipDimension returns the dimension of a mip level, never below 1.
func mipDimension(base, level int) int {
	d := base >> level
	if d < 1 {
		return 1
	}

	return d
}

// buildHeader constructs a header for the encode path.
func buildHeader(width, height, mipMapCount uint32, format bcn.Format) (*Header, error) {
	flags := uint32(FlagCaps | FlagHeight | FlagWidth | FlagPixelFormat)
	caps := uint32(CapsTexture)
	if mipMapCount > 1 {
		flags |= FlagMipMapCount
		caps |= CapsComplex | CapsMipMap
	}

	hdr := &Header{
		Size:        HeaderSize,
		Flags:       flags,
		Height:      height,
		Width:       width,
		Depth:       1,
		MipMapCount: mipMapCount,
		Caps:        caps,
	}
	hdr.PixelFormat.Size = PixelFormatSize

	switch format {
	case bcn.FormatDXT1:
		setFourCCFormat(hdr, 'D', 'X', 'T', '1')
	case bcn.FormatDXT3:
		setFourCCFormat(hdr, 'D', 'X', 'T', '3')
	case bcn.FormatDXT5:
		setFourCCFormat(hdr, 'D', 'X', 'T', '5')
	case bcn.FormatBC4:
		setFourCCFormat(hdr, 'A', 'T', 'I', '1')
	case bcn.FormatBC5:
		setFourCCFormat(hdr, 'A', 'T', 'I', '2')
	case bcn.FormatRGBA8:
		setMaskFormat(hdr, 0x000000ff, 0x0000ff00, 0x00ff0000)
	case bcn.FormatBGRA8:
		setMaskFormat(hdr, 0x00ff0000, 0x0000ff00, 0x000000ff)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}

	return hdr, nil
}

func setFourCCFormat(hdr *Header, a, b, c, d byte) {
	hdr.Flags |= FlagLinearSize
	hdr.PixelFormat.Flags = PFFourCC
	hdr.PixelFormat.FourCC = fourCC(a, b, c, d)
}

func setMaskFormat(hdr *Header, r, g, b uint32) {
	hdr.Flags |= FlagPitch
	hdr.PixelFormat.Flags = PFRGB | PFAlphaPixels
	hdr.PixelFormat.RGBBitCount = 32
	hdr.PixelFormat.RBitMask = r
	hdr.PixelFormat.GBitMask = g
	hdr.PixelFormat.BBitMask = b
	hdr.PixelFormat.ABitMask = 0xff000000
	hdr.PitchOrLinearSize = hdr.Width * 4
}
