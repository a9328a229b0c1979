package rastercodec

import "strings"

// Descriptor is the immutable pair of MIME types and file suffixes a
// codec is willing to be matched against. Both sets are normalized to
// lower case at construction; suffixes additionally lose any leading
// period. Empty sets mean "match anything" and defer to content probing.
type Descriptor struct {
	mimeTypes []string
	suffixes  []string
}

// NewDescriptor builds a Descriptor from the given MIME types and
// suffixes, normalizing both.
func NewDescriptor(mimeTypes, suffixes []string) Descriptor {
	d := Descriptor{
		mimeTypes: make([]string, 0, len(mimeTypes)),
		suffixes:  make([]string, 0, len(suffixes)),
	}
	for _, m := range mimeTypes {
		d.mimeTypes = append(d.mimeTypes, strings.ToLower(strings.TrimSpace(m)))
	}
	for _, s := range suffixes {
		d.suffixes = append(d.suffixes, NormalizeSuffix(s))
	}

	return d
}

// MIMETypes returns a copy of the normalized MIME type set.
func (d Descriptor) MIMETypes() []string {
	out := make([]string, len(d.mimeTypes))
	copy(out, d.mimeTypes)
	return out
}

// Suffixes returns a copy of the normalized suffix set.
func (d Descriptor) Suffixes() []string {
	out := make([]string, len(d.suffixes))
	copy(out, d.suffixes)
	return out
}

// MatchesSuffix reports whether the declared suffix matches this
// descriptor's suffix set.
func (d Descriptor) MatchesSuffix(suffix string) bool {
	return MatchesSuffix(suffix, d.suffixes)
}

// MatchesMIME reports whether the declared MIME type matches this
// descriptor's MIME type set.
func (d Descriptor) MatchesMIME(mimeType string) bool {
	return MatchesMIME(mimeType, d.mimeTypes)
}
