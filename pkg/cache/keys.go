package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// RenderKeyOpts captures the rendering options that affect cached output.
// Two renders of the same document with different options must not share a
// cache entry.
type RenderKeyOpts struct {
	Format string `json:"format"`
	Framed bool   `json:"framed"`
}

// RenderKey generates the cache key for a rendered document. docHash is the
// content hash of the document; the options are folded into the key so every
// (document, options) pair gets its own entry.
func RenderKey(docHash string, opts RenderKeyOpts) string {
	return hashKey("render", docHash, opts)
}

// FigureKey generates the cache key for a built-in figure at a given depth,
// under the same rendering options as documents.
func FigureKey(name string, depth int, opts RenderKeyOpts) string {
	return hashKey("figure", name, depth, opts)
}

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
