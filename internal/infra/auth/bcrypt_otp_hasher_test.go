package auth

import (
	"testing"

	"testament/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestOTPHasher() *bcryptOTPHasher {
	cfg := &config.Config{
		OTP: &config.OTPConfig{BcryptCost: bcrypt.MinCost},
	}

	return NewBcryptOTPHasher(cfg).(*bcryptOTPHasher)
}

func TestBcryptOTPHasher_HashAndCheck(t *testing.T) {
	hasher := newTestOTPHasher()

	hash, err := hasher.Hash("123456")

	require.NoError(t, err)
	assert.NotEqual(t, "123456", hash)
	assert.True(t, hasher.Check("123456", hash))
	assert.False(t, hasher.Check("654321", hash))
}

func TestBcryptOTPHasher_Check_MalformedHash(t *testing.T) {
	hasher := newTestOTPHasher()

	assert.False(t, hasher.Check("123456", "not-a-bcrypt-hash"))
}

func TestNewBcryptOTPHasher_CostOutOfRangeFallsBack(t *testing.T) {
	cfg := &config.Config{
		OTP: &config.OTPConfig{BcryptCost: 99},
	}

	hasher := NewBcryptOTPHasher(cfg).(*bcryptOTPHasher)

	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
}
