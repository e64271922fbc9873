package payload

import (
	"encoding/binary"
	"io"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
/* This file holds the compiled-in reveal table and its decoder. Words pack four characters each in
little-endian byte order. Tables carry an explicit length: a zero word is data like any other, not
a terminator, so a malformed table cannot send the decoder scanning past the end. */

// Table is an explicit-length sequence of packed words.
type Table []uint32

// Secret is the reveal table printed on a collision. It ships empty.
var Secret = Table{}

// Decode unpacks every word into its four characters, low byte first.
func (t Table) Decode() []byte {
	msg := make([]byte, len(t)*4)
	for i, word := range t {
		binary.LittleEndian.PutUint32(msg[i*4:], word)
	}
	return msg
}

// WriteTo streams the decoded characters to w.
func (t Table) WriteTo(w io.Writer) (int64, error) {
	written, err := w.Write(t.Decode())
	return int64(written), err
}
