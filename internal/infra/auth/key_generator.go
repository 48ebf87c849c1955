package auth

import (
	"crypto/rand"
	"encoding/base64"

	"testament/internal/domain/service"

	"github.com/pkg/errors"
)

// registrationKeyBytes is the entropy of a generated key before encoding.
// 32 bytes gives 256 bits, which makes guessing a live key infeasible.
const registrationKeyBytes = 32

// randomKeyGenerator mints registration keys from the OS entropy source.
type randomKeyGenerator struct{}

// NewRandomKeyGenerator is the constructor for randomKeyGenerator.
func NewRandomKeyGenerator() service.KeyGenerator {
	return &randomKeyGenerator{}
}

// Generate returns a URL-safe, unpadded token.
func (g *randomKeyGenerator) Generate() (string, error) {
	buf := make([]byte, registrationKeyBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to read random bytes")
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}
