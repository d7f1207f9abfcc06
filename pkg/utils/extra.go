package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateRandomToken returns a random hex string of exactly length characters.
func GenerateRandomToken(length int) string {
	bytes := make([]byte, (length+1)/2)
	if _, err := rand.Read(bytes); err != nil {
		return ""
	}
	return hex.EncodeToString(bytes)[:length]
}
