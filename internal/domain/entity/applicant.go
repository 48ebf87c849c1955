// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Registration step markers. CurrentStep only moves forward; re-submitting an
// earlier step never rewinds progress.
const (
	StepStarted         = 1
	StepPersonalDetails = 2
	StepIdentification  = 3
	StepBeneficiaries   = 4
	StepAssets          = 5
	StepAllocations     = 6
	StepExecutors       = 7
	StepGuardians       = 8
	StepPayment         = 9
)

// Applicant is the identity root of a will registration. Every other record in
// the system carries a foreign key back to exactly one applicant.
type Applicant struct {
	ID             uuid.UUID // The unique identifier for the applicant.
	FullName       string    // The applicant's legal name as captured at registration start.
	Email          string    // The applicant's contact email; unique across applicants.
	Phone          string    // Optional contact phone number.
	CurrentStep    int       // Progress marker through the multi-step registration flow.
	IsComplete     bool      // Set once the final payment step succeeds.
	CreatedAt      time.Time // Timestamp of when the registration was started.
	LastModifiedAt time.Time // Touched whenever any owned record is written.
}

// AdvanceStep moves the progress marker forward. Steps are monotonic: writing
// an earlier step again leaves CurrentStep untouched.
func (a *Applicant) AdvanceStep(step int) {
	if step > a.CurrentStep {
		a.CurrentStep = step
	}
}
