package utils

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// CacheFileName maps an arbitrary cache key to a file-system safe name:
// the hex-encoded BLAKE2b-256 digest of the key followed by ".json".
//
// Example usage:
//
//	name := utils.CacheFileName("verify:tok-1:0xabc")
func CacheFileName(key string) string {
	sum := blake2b.Sum256([]byte(key))
	return hex.EncodeToString(sum[:]) + ".json"
}
