package services

import (
	"workhubb_backend/internal/apperrors"
	"workhubb_backend/internal/database"
)

// storageErr classifies a repository failure that is not a domain
// outcome: backend unreachable/misconfigured becomes 503, anything
// else 500. Absence never goes through here — repositories signal it
// with their own sentinels.
func storageErr(err error) *apperrors.AppError {
	if database.IsUnavailable(err) {
		return apperrors.ErrStorageUnavailable.WithError(err)
	}
	return apperrors.InternalError(err)
}
