package backend

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// GenerateRNDCSecret returns a fresh base64-encoded 256-bit secret
// suitable for an hmac-sha256 rndc key.
func GenerateRNDCSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generating rndc secret: %w", err)
	}
	return base64.StdEncoding.EncodeToString(b), nil
}
