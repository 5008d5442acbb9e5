package user

import (
	"encoding/hex"
	"testing"
)

func TestNewAPIToken(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		token, err := NewAPIToken()
		if err != nil {
			t.Fatalf("token generation failed: %v", err)
		}
		if len(token) != apiTokenBytes*2 {
			t.Fatalf("expected %d hex chars, got %d", apiTokenBytes*2, len(token))
		}
		if _, err := hex.DecodeString(token); err != nil {
			t.Fatalf("token is not hex: %q", token)
		}
		if seen[token] {
			t.Fatalf("duplicate token generated: %q", token)
		}
		seen[token] = true
	}
}
