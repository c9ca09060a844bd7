package relay

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Values used for the status and name fields of synthesized server errors,
// when the API responds with an error status but no usable error body.
const (
	ErrorStatusServer        = "ServerError"
	ErrorNameServerException = "ServerException"
)

// Well-known error names returned by the API.
const (
	ErrorNameInvalidKey        = "Invalid_Key"
	ErrorNameValidationError   = "ValidationError"
	ErrorNameGeneralError      = "GeneralError"
	ErrorNamePaymentRequired   = "PaymentRequired"
	ErrorNameUnknownMessage    = "Unknown_Message"
	ErrorNameUnknownTemplate   = "Unknown_Template"
	ErrorNameUnknownSender     = "Unknown_Sender"
	ErrorNameUnknownSubaccount = "Unknown_Subaccount"
	ErrorNameUnknownExport     = "Unknown_Export"
	ErrorNameInvalidReject     = "Invalid_Reject"
)

// Static errors that can be wrapped with context.
var (
	ErrConfigRequired     = errors.New("config is required")
	ErrAPIKeyRequired     = errors.New("API key is required")
	ErrUnstructuredError  = errors.New("error body is not a structured API error")
	ErrTemplateNameNeeded = errors.New("template name is required")
	ErrEmailRequired      = errors.New("email address is required")
)

// APIError is the normalized error shape for API-level failures. Both
// structured failures (the API returned a full JSON error body) and
// unstructured ones (the body was missing or malformed) surface as APIError;
// the latter carry Status "ServerError" and Name "ServerException". The
// underlying transport error is available through errors.Unwrap.
type APIError struct {
	Message string `json:"message" yaml:"message"`
	Code    int    `json:"code"    yaml:"code"`
	Status  string `json:"status"  yaml:"status"`
	Name    string `json:"name"    yaml:"name"`

	cause error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s (code: %d)", e.Name, e.Message, e.Code)
}

// Unwrap returns the underlying transport error, if any.
func (e *APIError) Unwrap() error {
	return e.cause
}

// ParseAPIError decodes body as a structured API error. All four fields
// (message, code, status, name) must be present; anything less is reported
// as ErrUnstructuredError so callers can fall back to a synthesized error.
func ParseAPIError(body []byte) (*APIError, error) {
	var probe struct {
		Message *string `json:"message"`
		Code    *int    `json:"code"`
		Status  *string `json:"status"`
		Name    *string `json:"name"`
	}

	err := json.Unmarshal(body, &probe)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnstructuredError, err)
	}

	if probe.Message == nil || probe.Code == nil || probe.Status == nil || probe.Name == nil {
		return nil, ErrUnstructuredError
	}

	return &APIError{
		Message: *probe.Message,
		Code:    *probe.Code,
		Status:  *probe.Status,
		Name:    *probe.Name,
	}, nil
}

// NormalizeServerError collapses a server error response into an APIError.
// The API documents a structured JSON error body on failure, but proxies and
// partial failures can break that contract, so an unusable body degrades to a
// synthesized error instead: message and code are taken from the transport
// failure, status and name are fixed literals.
func NormalizeServerError(statusCode int, body []byte, cause error) *APIError {
	apiErr, err := ParseAPIError(body)
	if err != nil {
		message := ""
		if cause != nil {
			message = cause.Error()
		}

		return &APIError{
			Message: message,
			Code:    statusCode,
			Status:  ErrorStatusServer,
			Name:    ErrorNameServerException,
			cause:   cause,
		}
	}

	apiErr.cause = cause

	return apiErr
}

// errorNameIs reports whether err is an APIError with the given name.
func errorNameIs(err error, name string) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Name == name
	}

	return false
}

// IsInvalidKey checks if the error reports an invalid API key.
func IsInvalidKey(err error) bool {
	return errorNameIs(err, ErrorNameInvalidKey)
}

// IsValidationError checks if the error reports a rejected request payload.
func IsValidationError(err error) bool {
	return errorNameIs(err, ErrorNameValidationError)
}

// IsUnknownMessage checks if the error reports an unknown message ID.
func IsUnknownMessage(err error) bool {
	return errorNameIs(err, ErrorNameUnknownMessage)
}

// IsUnknownTemplate checks if the error reports an unknown template name.
func IsUnknownTemplate(err error) bool {
	return errorNameIs(err, ErrorNameUnknownTemplate)
}

// IsServerError checks if the error was synthesized from an unstructured
// server failure rather than parsed from an API error body.
func IsServerError(err error) bool {
	return errorNameIs(err, ErrorNameServerException)
}
