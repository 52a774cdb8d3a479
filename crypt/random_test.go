package crypt

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"

	"github.com/tutils/mtrand/mt"
)

func TestKeystreamChunking(t *testing.T) {
	whole := make([]byte, 37)
	io.ReadFull(NewTwisterSource(7), whole)

	ks := NewTwisterSource(7)
	var parts []byte
	for _, n := range []int{1, 5, 3, 11, 17} {
		p := make([]byte, n)
		ks.Read(p)
		parts = append(parts, p...)
	}
	if !bytes.Equal(whole, parts) {
		t.Fatalf("%x != %x", parts, whole)
	}
}

func TestKeystreamLittleEndian(t *testing.T) {
	g := mt.New(mt.WithSeed(5489))
	p := make([]byte, 8)
	NewKeystream(g.Clone()).Read(p)
	if v := binary.LittleEndian.Uint32(p); v != g.Uint32() {
		t.Fatalf("first word = %d", v)
	}
	if v := binary.LittleEndian.Uint32(p[4:]); v != g.Uint32() {
		t.Fatalf("second word = %d", v)
	}
}
