package models

import "time"

// Experience is one work-history entry owned by a user. Dates are
// display strings (e.g. "2023-01"), not timestamps. An ongoing
// position has current=true and no end date.
type Experience struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	UserID      string    `gorm:"column:user_id;not null;index" json:"userId"`
	Title       string    `gorm:"not null" json:"title"`
	Company     string    `gorm:"not null" json:"company"`
	Location    *string   `json:"location"`
	StartDate   string    `gorm:"column:start_date;not null" json:"startDate"`
	EndDate     *string   `gorm:"column:end_date" json:"endDate"`
	Current     bool      `gorm:"not null;default:false" json:"current"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
