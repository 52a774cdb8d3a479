package cmd

import (
	"encoding/base64"
	"encoding/gob"
	"fmt"
	"strings"

	"github.com/tutils/mtrand/crypt/xor"
)

var (
	xorCrypt = xor.NewCrypt(33280939)
)

func encodeCmdline(args []string) (string, error) {
	w1 := &strings.Builder{}
	w2 := base64.NewEncoder(base64.RawStdEncoding, w1)
	w3 := xorCrypt.NewEncoder(w2)
	if err := gob.NewEncoder(w3).Encode(args); err != nil {
		w2.Close()
		return "", fmt.Errorf("encode cmdline: %w", err)
	}
	if err := w2.Close(); err != nil {
		return "", fmt.Errorf("encode cmdline: %w", err)
	}
	return w1.String(), nil
}

func decodeCmdline(s string) ([]string, error) {
	r1 := strings.NewReader(s)
	r2 := base64.NewDecoder(base64.RawStdEncoding, r1)
	r3 := xorCrypt.NewDecoder(r2)
	var args []string
	if err := gob.NewDecoder(r3).Decode(&args); err != nil {
		return nil, fmt.Errorf("decode cmdline: %w", err)
	}
	return args, nil
}
