package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestApplicant_AdvanceStep_Monotonic(t *testing.T) {
	applicant := &Applicant{CurrentStep: StepAssets}

	applicant.AdvanceStep(StepPersonalDetails)
	assert.Equal(t, StepAssets, applicant.CurrentStep, "re-submitting an earlier step must not rewind progress")

	applicant.AdvanceStep(StepPayment)
	assert.Equal(t, StepPayment, applicant.CurrentStep)
}

func TestRegistrationKey_ExpiresAfter(t *testing.T) {
	now := time.Now()
	key := &RegistrationKey{CreatedAt: now.Add(-2 * time.Hour)}

	assert.False(t, key.ExpiresAfter(0, now), "zero TTL disables expiration")
	assert.False(t, key.ExpiresAfter(3*time.Hour, now))
	assert.True(t, key.ExpiresAfter(time.Hour, now))
}

func TestOTPChallenge_Usable(t *testing.T) {
	now := time.Now()
	consumed := now.Add(-time.Minute)

	fresh := &OTPChallenge{ExpiresAt: now.Add(5 * time.Minute)}
	expired := &OTPChallenge{ExpiresAt: now.Add(-time.Minute)}
	redeemed := &OTPChallenge{ExpiresAt: now.Add(5 * time.Minute), ConsumedAt: &consumed}

	assert.True(t, fresh.Usable(now))
	assert.False(t, expired.Usable(now))
	assert.False(t, redeemed.Usable(now))
}

func TestRoles_Contains(t *testing.T) {
	roles := Roles{RoleApplicant}

	assert.True(t, roles.Contains(RoleApplicant))
	assert.False(t, roles.Contains(RoleAdmin))
	assert.Equal(t, []string{"applicant"}, roles.ToStrings())
}
