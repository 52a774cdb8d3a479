package crypt

import (
	"encoding/binary"
	"io"

	"github.com/tutils/mtrand/mt"
)

// 验证接口实现
var _ io.Reader = (*Keystream)(nil)

// Word is a source of 32-bit draws, such as *mt.Generator
type Word interface {
	Uint32() uint32
}

// Keystream turns 32-bit draws into a continuous byte stream. Unlike
// mt.Generator.Read, bytes of a draw are never skipped, so the stream does
// not depend on how reads are chunked.
type Keystream struct {
	src Word
	buf [4]byte
	pos int
}

// NewKeystream create a new Keystream over src
func NewKeystream(src Word) *Keystream {
	return &Keystream{src: src, pos: 4}
}

// Read implements io.Reader, it never fails
func (k *Keystream) Read(p []byte) (n int, err error) {
	for i := range p {
		if k.pos == len(k.buf) {
			binary.LittleEndian.PutUint32(k.buf[:], k.src.Uint32())
			k.pos = 0
		}
		p[i] = k.buf[k.pos]
		k.pos++
	}
	return len(p), nil
}

// SourceNewer builds a keystream from a key
type SourceNewer func(key int64) io.Reader

// NewTwisterSource returns a MT19937 keystream seeded with key
func NewTwisterSource(key int64) io.Reader {
	g := &mt.Generator{}
	g.Seed(key)
	return NewKeystream(g)
}

// NewChainedSource returns a keystream chained from a generator seeded with
// key, so it never overlaps the key's own stream
func NewChainedSource(key int64) io.Reader {
	g := &mt.Generator{}
	g.Seed(key)
	return NewKeystream(mt.NewFrom(g))
}
