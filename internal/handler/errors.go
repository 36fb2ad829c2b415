package handler

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
	ErrMsgInvalidRequest     = "Invalid request. Please check your inputs."
	ErrMsgInvalidRequestBody = "Invalid request body"
	ErrMsgValidationSummary  = "Validation failed"
	ErrMsgNotFound           = "Resource not found"
	ErrMsgSlugTaken          = "A record with that slug already exists"
	ErrMsgUnavailable        = "Server is temporarily unavailable. Please try again later."
)
