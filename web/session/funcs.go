package session

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateWebSessionID - 128-bit random session ID as 32 hex chars.
func GenerateWebSessionID() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
