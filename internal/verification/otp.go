package verification

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// GenerateOTP returns a 6-digit code from crypto/rand.
func GenerateOTP() (string, error) {
	b := make([]byte, 3)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	num := ((int(b[0]) << 16) | (int(b[1]) << 8) | int(b[2])) % 1000000
	return fmt.Sprintf("%06d", num), nil
}

// hashCode: only the sha256 of a code is ever stored.
func hashCode(code string) string {
	sum := sha256.Sum256([]byte(code))
	return hex.EncodeToString(sum[:])
}
