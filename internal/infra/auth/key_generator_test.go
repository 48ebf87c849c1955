package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomKeyGenerator_Generate(t *testing.T) {
	generator := NewRandomKeyGenerator()

	key, err := generator.Generate()

	require.NoError(t, err)
	// 32 bytes of entropy encode to 43 unpadded base64url characters.
	assert.Len(t, key, 43)
	assert.False(t, strings.ContainsAny(key, "+/="), "key must be URL-safe without padding")
}

func TestRandomKeyGenerator_Generate_Unique(t *testing.T) {
	generator := NewRandomKeyGenerator()

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		key, err := generator.Generate()
		require.NoError(t, err)

		_, duplicate := seen[key]
		require.False(t, duplicate, "generated a duplicate key")
		seen[key] = struct{}{}
	}
}
