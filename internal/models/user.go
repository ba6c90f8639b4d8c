package models

import "time"

type UserType string

const (
	UserTypeProfessional UserType = "professional"
	UserTypeCompany      UserType = "company"
)

// Valid reports whether t is one of the two account types.
func (t UserType) Valid() bool {
	return t == UserTypeProfessional || t == UserTypeCompany
}

// User is a professional or company account. The id comes from the
// client at registration; there is no delete path. Optional fields are
// pointers so they serialize as explicit null, never as absent keys.
type User struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	Type         UserType  `gorm:"type:varchar(20);not null" json:"type"`
	Bio          *string   `json:"bio"`
	Stack        *string   `json:"stack"` // comma-delimited skill list
	Github       *string   `json:"github"`
	Linkedin     *string   `json:"linkedin"`
	Company      *string   `json:"company"`
	ProfilePhoto *string   `gorm:"column:profile_photo" json:"profilePhoto"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
