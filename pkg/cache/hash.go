package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// ArtifactKeyOpts holds the options that change rendered output.
type ArtifactKeyOpts struct {
	Format  string            `json:"format"`
	Style   string            `json:"style"`
	Padding float64           `json:"padding"`
	Scale   float64           `json:"scale,omitempty"`
	Theme   map[string]string `json:"theme,omitempty"`
}

// ArtifactKey returns the cache key for one rendered output of a document.
func ArtifactKey(docHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", docHash, opts)
}

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...interface{}) string {
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
