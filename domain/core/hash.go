package core

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Hash represents a cryptographic hash
type Hash string

// NewHash creates a new hash from data
func NewHash(data []byte) Hash {
	sum := sha256.Sum256(data)
	return Hash(hex.EncodeToString(sum[:]))
}

// String returns the string representation
func (h Hash) String() string {
	return string(h)
}

// IsEmpty checks if the hash is empty
func (h Hash) IsEmpty() bool {
	return h == ""
}

// Equals checks if two hashes are equal
func (h Hash) Equals(other Hash) bool {
	return h == other
}

// Fingerprint identifies a concrete on-disk dataset revision. Two reads of a
// file with the same path, size and modification time share a fingerprint,
// so cached derivations stay valid until the file itself changes.
type Fingerprint Hash

// NewFingerprint computes a fingerprint from a file's identity attributes.
func NewFingerprint(path string, size int64, modTimeUnixNano int64) Fingerprint {
	return Fingerprint(NewHash([]byte(fmt.Sprintf("%s|%d|%d", path, size, modTimeUnixNano))))
}

// String returns the string representation
func (f Fingerprint) String() string { return Hash(f).String() }

// IsEmpty checks if the fingerprint is empty
func (f Fingerprint) IsEmpty() bool { return Hash(f).IsEmpty() }

// Short returns the first 12 hex characters for log and display use.
func (f Fingerprint) Short() string {
	s := string(f)
	if len(s) > 12 {
		return s[:12]
	}
	return s
}
