package utils

import (
	"crypto/sha256"
	"encoding/base64"

	"golang.org/x/crypto/bcrypt"
)

// prehash keeps the bcrypt input at 44 bytes, below bcrypt's 72 byte limit, for passwords of any length.
func prehash(p string) []byte {
	sum := sha256.Sum256([]byte(p))
	return []byte(base64.StdEncoding.EncodeToString(sum[:]))
}

// HashPassword returns a salted bcrypt hash of p. A cost outside bcrypt's range falls back to the default.
func HashPassword(p string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	bytes, err := bcrypt.GenerateFromPassword(prehash(p), cost)
	return string(bytes), err
}

func CheckPassword(hash, pass string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), prehash(pass))
	return err == nil
}
