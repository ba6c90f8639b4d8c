package dto

// CreateUserRequest is the registration payload. The id is generated
// client-side so the client can navigate before the response lands.
type CreateUserRequest struct {
	ID           string  `json:"id" validate:"required"`
	Name         string  `json:"name" validate:"required"`
	Email        string  `json:"email" validate:"required,email"`
	Type         string  `json:"type" validate:"required,oneof=professional company"`
	Bio          *string `json:"bio"`
	Stack        *string `json:"stack"`
	Github       *string `json:"github"`
	Linkedin     *string `json:"linkedin"`
	Company      *string `json:"company"`
	ProfilePhoto *string `json:"profilePhoto"`
}

// UpdateUserRequest is a partial profile edit; only non-nil fields
// change. Type and email are deliberately absent: neither has an
// update path.
type UpdateUserRequest struct {
	Name         *string `json:"name"`
	Bio          *string `json:"bio"`
	Stack        *string `json:"stack"`
	Github       *string `json:"github"`
	Linkedin     *string `json:"linkedin"`
	Company      *string `json:"company"`
	ProfilePhoto *string `json:"profilePhoto"`
}
