package user

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// apiTokenBytes gives a 40-character hex token, unguessable over any
// realistic account population.
const apiTokenBytes = 20

// NewAPIToken draws a bearer token from the OS random source. It is called
// exactly once per user, at registration, before the first insert.
func NewAPIToken() (string, error) {
	buf := make([]byte, apiTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate api token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
