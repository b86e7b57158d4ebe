package dto

// ErrorBody collects every field the backend uses to explain a failure.
// Different endpoints fill different fields.
type ErrorBody struct {
	Error       string `json:"error,omitempty"`
	Message     string `json:"message,omitempty"`
	Description string `json:"description,omitempty"`
}

// Text returns the first non-empty explanation
func (b ErrorBody) Text() string {
	switch {
	case b.Error != "":
		return b.Error
	case b.Message != "":
		return b.Message
	default:
		return b.Description
	}
}

// NewErrorBody creates the body the backend sends on failure
func NewErrorBody(message string) ErrorBody {
	return ErrorBody{Error: message}
}
