package user

import "golang.org/x/crypto/bcrypt"

// HashPassword produces a salted one-way hash of the plaintext. Callers are
// expected to reject empty passwords before hashing.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword reports whether the plaintext matches the stored hash.
// A mismatch is a normal outcome, not an error.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
