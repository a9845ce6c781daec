package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/petrusjohannesmaas/zaimu/internal/core"
)

// HashPassword hashes a plaintext password with the given bcrypt cost.
// The plaintext does not leave this function in any other form.
func HashPassword(plain string, cost int) (core.PasswordHash, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return core.PasswordHash(hashed), nil
}

// VerifyPassword reports whether plain matches the stored hash.
func VerifyPassword(hash core.PasswordHash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
