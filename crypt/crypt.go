package crypt

import (
	"io"
)

// Crypt wrap reader and writer
type Crypt interface {
	NewEncoder(w io.Writer, opts ...EncoderOption) io.Writer
	NewDecoder(r io.Reader, opts ...DecoderOption) io.Reader
}

// EncoderOptions is implemented by each Crypt's encoder options
type EncoderOptions interface{}

// EncoderOption configures an encoder
type EncoderOption func(opts EncoderOptions)

// DecoderOptions is implemented by each Crypt's decoder options
type DecoderOptions interface{}

// DecoderOption configures a decoder
type DecoderOption func(opts DecoderOptions)
