package apperrors

// Error codes grouped by domain.
const (
	// Validation
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeInvalidUserType  ErrorCode = "INVALID_USER_TYPE"

	// Resources
	CodeUserNotFound        ErrorCode = "USER_NOT_FOUND"
	CodeJobNotFound         ErrorCode = "JOB_NOT_FOUND"
	CodeApplicationNotFound ErrorCode = "APPLICATION_NOT_FOUND"
	CodeExperienceNotFound  ErrorCode = "EXPERIENCE_NOT_FOUND"

	// Business rules
	CodeEmailAlreadyExists ErrorCode = "EMAIL_ALREADY_EXISTS"
	CodeUserAlreadyExists  ErrorCode = "USER_ALREADY_EXISTS"
	CodeAlreadyApplied     ErrorCode = "ALREADY_APPLIED"
	CodeAuthorNotFound     ErrorCode = "AUTHOR_NOT_FOUND"

	// Uploads
	CodeFileTooLarge    ErrorCode = "FILE_TOO_LARGE"
	CodeInvalidFileType ErrorCode = "INVALID_FILE_TYPE"
	CodeNoFileProvided  ErrorCode = "NO_FILE_PROVIDED"

	// System
	CodeStorageUnavailable ErrorCode = "STORAGE_UNAVAILABLE"
	CodeInternalError      ErrorCode = "INTERNAL_ERROR"
)
