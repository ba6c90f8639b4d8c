package dto

import "time"

type CreateJobRequest struct {
	ID           string   `json:"id"` // optional; assigned server-side when empty
	Title        string   `json:"title" validate:"required"`
	Company      string   `json:"company" validate:"required"`
	Location     string   `json:"location" validate:"required"`
	Remote       *bool    `json:"remote" validate:"required"`
	Salary       *string  `json:"salary"`
	Description  string   `json:"description" validate:"required"`
	Requirements []string `json:"requirements" validate:"required"`
	AuthorID     string   `json:"authorId" validate:"required"`
}

type UpdateJobRequest struct {
	Title        *string  `json:"title"`
	Company      *string  `json:"company"`
	Location     *string  `json:"location"`
	Remote       *bool    `json:"remote"`
	Salary       *string  `json:"salary"`
	Description  *string  `json:"description"`
	Requirements []string `json:"requirements"`
}

// JobResponse is a Job with requirements decoded back into the
// ordered string list the column serializes.
type JobResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Company      string    `json:"company"`
	Location     string    `json:"location"`
	Remote       bool      `json:"remote"`
	Salary       *string   `json:"salary"`
	Description  string    `json:"description"`
	Requirements []string  `json:"requirements"`
	AuthorID     string    `json:"authorId"`
	CreatedAt    time.Time `json:"createdAt"`
}
