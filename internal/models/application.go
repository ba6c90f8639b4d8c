package models

import "time"

// Application is a professional's expression of interest in a Job.
// The composite unique index makes "apply twice" a storage-level
// conflict instead of a check-then-insert race.
type Application struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"column:user_id;not null;uniqueIndex:idx_applications_user_job" json:"userId"`
	JobID     string    `gorm:"column:job_id;not null;uniqueIndex:idx_applications_user_job" json:"jobId"`
	Message   string    `gorm:"not null" json:"message"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
