package client

import (
	"errors"

	"github.com/urbanhive/urbanhive-client/internal/pkg/apperrors"
)

// Outcome is a flat success/failure value for callers that render a result
// rather than branch on an error.
type Outcome struct {
	Success bool
	Kind    apperrors.Kind
	Status  int
	Message string
}

// OutcomeOf converts the error of any operation into an Outcome. A nil error
// yields a success carrying successMessage.
func OutcomeOf(err error, successMessage string) Outcome {
	if err == nil {
		return Outcome{Success: true, Message: successMessage}
	}

	var apiErr *apperrors.APIError
	if errors.As(err, &apiErr) {
		return Outcome{
			Kind:    apiErr.Kind,
			Status:  apiErr.Status,
			Message: apiErr.Message,
		}
	}
	return Outcome{Kind: apperrors.KindTransport, Message: apperrors.MsgUnexpected}
}
