package keccak

import (
	"golang.org/x/crypto/sha3"
)

// Keccak256 hashes src with the legacy (pre-NIST) keccak-256 and appends
// the digest to dst
func Keccak256(dst, src []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(src)

	return h.Sum(dst)
}
