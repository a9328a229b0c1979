package rastercodec

import "errors"

var (
	// ErrInvalidArgument indicates a required input is absent or unusable.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnsupportedFormat indicates no codec accepts the source or raster.
	ErrUnsupportedFormat = errors.New("unsupported format")
	// ErrMissingParameter indicates a required parameter bag key is absent.
	ErrMissingParameter = errors.New("missing required parameter")
	// ErrOpenSource indicates a byte source could not be opened.
	ErrOpenSource = errors.New("open source failed")
	// ErrRead indicates a decode or metadata read failed.
	ErrRead = errors.New("read failed")
	// ErrWrite indicates an encode failed.
	ErrWrite = errors.New("write failed")
)
