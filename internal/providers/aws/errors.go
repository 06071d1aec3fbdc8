package aws

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/smithy-go"
)

type ErrorCategory string

// Error categories for better error classification and handling
const (
	// ErrResourceNotFound is returned when a requested AWS resource doesn't exist
	ErrResourceNotFound ErrorCategory = "resource_not_found"

	// ErrPermissionDenied is returned when AWS API access is denied
	ErrPermissionDenied ErrorCategory = "permission_denied"

	// ErrThrottling is returned when AWS API throttles the request
	ErrThrottling ErrorCategory = "request_throttled"

	// ErrConfigurationError is returned when there's an issue with AWS configuration
	ErrConfigurationError ErrorCategory = "configuration_error"

	// ErrNetworkError is returned for network-related errors accessing AWS API
	ErrNetworkError ErrorCategory = "network_error"

	// ErrInvalidInput is returned when the API rejects the request parameters
	ErrInvalidInput ErrorCategory = "invalid_input"

	// ErrDuplicateResource is returned when a resource with the same name already exists
	ErrDuplicateResource ErrorCategory = "duplicate_resource"

	// ErrWaitTimeout is returned when a waiter gives up before the resource reached the wanted state
	ErrWaitTimeout ErrorCategory = "wait_timeout"

	// ErrCancelled is returned when the caller cancelled the request, usually by interrupting the CLI
	ErrCancelled ErrorCategory = "request_cancelled"

	// ErrInternalError is returned for unexpected internal errors
	ErrInternalError ErrorCategory = "internal_error"
)

// Resource types reported in errors.
const (
	EC2ResourceType           = "EC2"
	SecurityGroupResourceType = "SecurityGroup"
)

// Error represents an error that occurred during AWS operations with
// additional context about what went wrong.
type Error struct {
	// Category for programmatic error handling
	Category ErrorCategory

	// ResourceType identifies the AWS resource type (e.g., EC2, SecurityGroup)
	ResourceType string

	// ResourceID identifies the specific resource ID when applicable
	ResourceID string

	// Message provides human-readable details
	Message string

	// Underlying is the wrapped cause of this error
	Underlying error
}

// Error returns a formatted error message
func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Category, e.Message)
	if e.ResourceID != "" {
		msg = fmt.Sprintf("%s [resource: %s/%s]", msg, e.ResourceType, e.ResourceID)
	} else if e.ResourceType != "" {
		msg = fmt.Sprintf("%s [resource type: %s]", msg, e.ResourceType)
	}
	if e.Underlying != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Underlying)
	}
	return msg
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Underlying
}

// NewAWSError creates a new AWS error with the specified details
func NewAWSError(category ErrorCategory, resourceType, resourceID, message string, underlying error) *Error {
	return &Error{
		Category:     category,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Message:      message,
		Underlying:   underlying,
	}
}

// IsErrorCategory checks if an error belongs to a specific error category
func IsErrorCategory(err error, category ErrorCategory) bool {
	if err == nil {
		return false
	}

	var awsErr *Error
	if errors.As(err, &awsErr) {
		return awsErr.Category == category
	}

	return false
}

// ClassifyAWSError classifies an AWS error, preferring the API error code and
// falling back to the message for transport and SDK errors.
func ClassifyAWSError(err error, resourceType, resourceID string) *Error {
	if err == nil {
		return nil
	}

	// Already classified further down the call chain
	var awsErr *Error
	if errors.As(err, &awsErr) {
		return awsErr
	}

	// The SDK wraps the context error, both in waiters and in the HTTP transport
	if errors.Is(err, context.Canceled) {
		return NewAWSError(ErrCancelled, resourceType, resourceID, messageFor(ErrCancelled), err)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		if category, ok := categoryForCode(apiErr.ErrorCode()); ok {
			return NewAWSError(category, resourceType, resourceID, messageFor(category), err)
		}
	}

	errMsg := err.Error()

	var category ErrorCategory
	switch {
	// Reference: https://docs.aws.amazon.com/AWSEC2/latest/APIReference/errors-overview.html
	case contains(errMsg, "exceeded max wait time"):
		category = ErrWaitTimeout

	case errors.Is(err, context.DeadlineExceeded):
		category = ErrWaitTimeout

	case contains(errMsg, "context canceled"):
		category = ErrCancelled

	case contains(errMsg, "InvalidGroup.Duplicate", "already exists"):
		category = ErrDuplicateResource

	case contains(errMsg, "NotFound", "InvalidInstanceID", "InvalidResource"):
		category = ErrResourceNotFound

	case contains(errMsg, "UnauthorizedOperation", "AuthFailure", "AccessDenied"):
		category = ErrPermissionDenied

	case contains(errMsg, "RequestLimitExceeded", "Throttling"):
		category = ErrThrottling

	case contains(errMsg, "InvalidParameter", "ValidationError", "MalformedQueryString",
		"InvalidAMIID", "InvalidKeyPair", "Unsupported"):
		category = ErrInvalidInput

	case contains(errMsg, "InvalidClientTokenId", "could not find region",
		"failed to retrieve credentials", "no EC2 IMDS role found"):
		category = ErrConfigurationError

	case contains(errMsg, "no such host", "connection refused", "i/o timeout", "dial tcp"):
		category = ErrNetworkError

	default:
		category = ErrInternalError
	}

	return NewAWSError(category, resourceType, resourceID, messageFor(category), err)
}

// categoryForCode maps EC2 API error codes onto categories.
func categoryForCode(code string) (ErrorCategory, bool) {
	switch {
	case code == "InvalidGroup.Duplicate", code == "InvalidPermission.Duplicate":
		return ErrDuplicateResource, true
	case strings.HasSuffix(code, ".NotFound"), code == "InvalidInstanceID.Malformed":
		return ErrResourceNotFound, true
	case code == "UnauthorizedOperation", code == "AuthFailure",
		code == "AccessDenied", code == "OptInRequired":
		return ErrPermissionDenied, true
	case code == "RequestLimitExceeded", code == "Throttling":
		return ErrThrottling, true
	case code == "InvalidClientTokenId", code == "SignatureDoesNotMatch":
		return ErrConfigurationError, true
	case strings.HasPrefix(code, "InvalidParameter"), code == "ValidationError",
		code == "MissingParameter", code == "InvalidAMIID.Malformed",
		code == "Unsupported", code == "InvalidKeyPair.Format":
		return ErrInvalidInput, true
	}
	return "", false
}

func messageFor(category ErrorCategory) string {
	switch category {
	case ErrResourceNotFound:
		return "Resource not found"
	case ErrPermissionDenied:
		return "Access denied"
	case ErrThrottling:
		return "Request throttled"
	case ErrInvalidInput:
		return "Invalid input"
	case ErrDuplicateResource:
		return "Resource already exists"
	case ErrWaitTimeout:
		return "Timed out waiting for resource state"
	case ErrCancelled:
		return "Request cancelled by caller"
	case ErrNetworkError:
		return "Network error while accessing AWS API"
	case ErrConfigurationError:
		return "AWS SDK configuration error"
	default:
		return "Internal error occurred"
	}
}

// contains checks if the error message contains any of the provided substrings
func contains(s string, substrings ...string) bool {
	for _, substr := range substrings {
		if strings.Contains(strings.ToLower(s), strings.ToLower(substr)) {
			return true
		}
	}
	return false
}
