package models

import (
	"time"

	"gorm.io/datatypes"
)

// Job is a listing posted by a company account. Requirements is an
// ordered list of strings persisted as a JSON column; the job service
// encodes and decodes it at the boundary, so the raw column never
// leaves this package in API responses.
type Job struct {
	ID           string         `gorm:"primaryKey" json:"id"`
	Title        string         `gorm:"not null" json:"title"`
	Company      string         `gorm:"not null" json:"company"` // display name, may differ from the author's name
	Location     string         `gorm:"not null" json:"location"`
	Remote       bool           `gorm:"not null" json:"remote"`
	Salary       *string        `json:"salary"`
	Description  string         `gorm:"not null" json:"description"`
	Requirements datatypes.JSON `gorm:"not null" json:"-"`
	AuthorID     string         `gorm:"column:author_id;not null;index" json:"authorId"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"createdAt"`
}
