package xor

import (
	"io"

	"github.com/tutils/mtrand/crypt"
)

var _ crypt.Crypt = &xorCrypt{}

type xorCrypt struct {
	key int64
}

func (c *xorCrypt) NewEncoder(w io.Writer, opts ...crypt.EncoderOption) io.Writer {
	opt := newXorEncoderOptions(opts...)
	return &xorEncoder{
		w:   w,
		src: opt.sourceNewer(c.key),
	}
}

func (c *xorCrypt) NewDecoder(r io.Reader, opts ...crypt.DecoderOption) io.Reader {
	opt := newXorDecoderOptions(opts...)
	return &xorDecoder{
		r:   r,
		src: opt.sourceNewer(c.key),
	}
}

// NewCrypt create a new Crypt masking data with a keystream seeded by key
func NewCrypt(key int64) crypt.Crypt {
	return &xorCrypt{
		key: key,
	}
}

// mask XORs p with the next len(p) keystream bytes, reusing buf
func mask(src io.Reader, buf *[]byte, p []byte) error {
	n := len(p)
	if cap(*buf) < n {
		*buf = make([]byte, n)
	} else {
		*buf = (*buf)[:n]
	}
	if _, err := io.ReadFull(src, *buf); err != nil {
		return err
	}
	for i, b := range *buf {
		p[i] ^= b
	}
	return nil
}

type xorEncoder struct {
	w   io.Writer
	src io.Reader
	buf []byte
	out []byte
}

func (e *xorEncoder) Write(p []byte) (n int, err error) {
	e.out = append(e.out[:0], p...)
	if err := mask(e.src, &e.buf, e.out); err != nil {
		return 0, err
	}
	return e.w.Write(e.out)
}

type xorDecoder struct {
	r   io.Reader
	src io.Reader
	buf []byte
}

func (d *xorDecoder) Read(p []byte) (n int, err error) {
	n, err = d.r.Read(p)
	if n > 0 {
		if merr := mask(d.src, &d.buf, p[:n]); merr != nil {
			return n, merr
		}
	}
	return n, err
}
