package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"
)

const (
	HashSize = sha256.Size
)

/*
	Hash is a function that takes an input message and returns a fixed-size string of
	bytes unique to the input; the simulator uses it to derive deterministic signature
	tokens and short identifiers
*/

// Hasher() returns the global hashing algorithm used
func Hasher() hash.Hash { return sha256.New() }

// Hash() executes the global hashing algorithm on input bytes
func Hash(msg []byte) []byte {
	h := sha256.Sum256(msg)
	return h[:]
}

// HashString() returns the hex version of a hash
func HashString(msg []byte) string { return hex.EncodeToString(Hash(msg)) }

// ShortHashString() returns the first 'n' hex characters of a hash
func ShortHashString(msg []byte, n int) string {
	s := HashString(msg)
	if n > len(s) {
		n = len(s)
	}
	return s[:n]
}
