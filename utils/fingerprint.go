package utils

import (
	"crypto/md5"
	"encoding/hex"
)

// Fingerprint returns a stable hex digest of the extracted text, used
// for duplicate detection. Identical text always yields an identical
// digest; collision resistance of MD5 is more than enough here since
// nothing cryptographic depends on it.
func Fingerprint(text string) string {
	sum := md5.Sum([]byte(text))
	return hex.EncodeToString(sum[:])
}
