package dto

import "workhubb_backend/internal/models"

type CreateApplicationRequest struct {
	UserID  string `json:"userId" validate:"required"`
	JobID   string `json:"jobId" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// CheckApplicationQuery backs GET /applications/check. Both params are
// mandatory; a missing one is a 400, not an implicit "not applied".
type CheckApplicationQuery struct {
	UserID string `form:"userId" validate:"required"`
	JobID  string `form:"jobId" validate:"required"`
}

type CheckApplicationResponse struct {
	Applied bool `json:"applied"`
}

// JobApplicant pairs an application with its applicant. User is nil
// when the account no longer resolves; the row is still returned
// (left-join semantics).
type JobApplicant struct {
	Application models.Application `json:"application"`
	User        *models.User       `json:"user"`
}

// ApplicationDetails adds the job side for the admin/overview listing.
type ApplicationDetails struct {
	Application models.Application `json:"application"`
	User        *models.User       `json:"user"`
	Job         *JobResponse       `json:"job"`
}
