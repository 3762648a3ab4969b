package project

import (
	"crypto/sha256"
	"encoding/hex"
)

// Digest is a SHA-256 content hash.
type Digest [sha256.Size]byte

func HashBytes(data []byte) Digest {
	return sha256.Sum256(data)
}

func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// IsZero reports whether the digest was never computed.
func (d Digest) IsZero() bool {
	var z Digest
	return d == z
}
