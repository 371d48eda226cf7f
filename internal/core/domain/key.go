package domain

import (
	"crypto/sha256"
	"encoding/hex"
)

// Key identifies a cache entry. It is an opaque string of the form
// namespace|fingerprint|contenthash, where contenthash is the hex SHA-256
// over the tracked file contents in sequence order.
type Key string

// NewKey assembles a cache key from its three segments.
func NewKey(namespace, fingerprint, contentHash string) Key {
	return Key(namespace + "|" + fingerprint + "|" + contentHash)
}

// String returns the key as a plain string.
func (k Key) String() string {
	return string(k)
}

// EntryID returns the filesystem-safe identifier for this key: the hex
// SHA-256 of the full key string. Keys may contain path separators and
// other characters that cannot appear in directory names.
func (k Key) EntryID() string {
	sum := sha256.Sum256([]byte(k))
	return hex.EncodeToString(sum[:])
}
