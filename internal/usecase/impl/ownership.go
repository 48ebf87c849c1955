package impl

import (
	"context"

	domainerrors "testament/internal/domain/errors"
	"testament/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// requireApplicant confirms the parent applicant exists before any dependent
// write. A missing parent surfaces as the same opaque NotFound as a missing
// child record.
func requireApplicant(ctx context.Context, repoFactory repository.RepositoryFactory, applicantID uuid.UUID) error {
	if _, err := repoFactory.NewApplicantRepository().FindByID(ctx, applicantID); err != nil {
		if errors.Is(err, repository.ErrApplicantNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("applicant not found")
		}

		return errors.Wrap(err, "failed to find applicant")
	}

	return nil
}

// existsFn is the per-entity ownership predicate, scoped by (id, applicantID).
type existsFn func(ctx context.Context) (bool, error)

// resolveWriteConflict disambiguates a failed write. When the row no longer
// exists under the caller's applicant scope the write raced a delete and the
// result is NotFound; otherwise the original error is a real conflict and is
// rethrown as fatal.
func resolveWriteConflict(ctx context.Context, writeErr error, exists existsFn) error {
	stillThere, checkErr := exists(ctx)
	if checkErr != nil {
		return errors.Wrap(writeErr, "failed to re-check existence after write conflict")
	}
	if !stillThere {
		return domainerrors.ErrNotFound.WrapMessage("record deleted concurrently")
	}

	return errors.WithStack(writeErr)
}

// matchRouteApplicant rejects payloads whose embedded ApplicantID disagrees
// with the route- or session-resolved one. The mismatch is reported as the
// usual opaque NotFound.
func matchRouteApplicant(routeID uuid.UUID, embedded *uuid.UUID) error {
	if embedded != nil && *embedded != routeID {
		return domainerrors.ErrNotFound.WrapMessage("applicant id mismatch")
	}

	return nil
}
