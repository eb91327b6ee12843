// SPDX-License-Identifier: MIT

package lusbir

import (
	"encoding/binary"

	"github.com/zeebo/blake3"
)

// Digest returns a BLAKE3 digest of the represented sequence. The encoding
// covers the length, the first element only when non-empty and the step only
// when longer than one, so Equal lusbirs always share a digest.
func (l Lusbir) Digest() [32]byte {
	f := l.form

	var buf [24]byte
	n := 8
	binary.BigEndian.PutUint64(buf[0:8], uint64(f.count))
	if f.count > 0 {
		binary.BigEndian.PutUint64(buf[8:16], uint64(f.first))
		n = 16
	}
	if f.count > 1 {
		binary.BigEndian.PutUint64(buf[16:24], uint64(f.step))
		n = 24
	}

	return blake3.Sum256(buf[:n])
}

// Hash returns a 64-bit hash consistent with Equal: the leading eight bytes
// of Digest.
func (l Lusbir) Hash() uint64 {
	d := l.Digest()

	return binary.BigEndian.Uint64(d[:8])
}
