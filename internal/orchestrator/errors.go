package orchestrator

import (
	"errors"
	"fmt"

	aws "ec2manager/internal/providers/aws"
)

// ErrorCategory classifies failures reported to the CLI.
type ErrorCategory string

const (
	// ErrConfiguration means required input was missing or inconsistent
	ErrConfiguration ErrorCategory = "configuration_error"

	// ErrProvisioningFailed means the provider rejected a rule group or instance request
	ErrProvisioningFailed ErrorCategory = "provisioning_failed"

	// ErrProvisioningTimeout means the instance did not reach the running state in time
	ErrProvisioningTimeout ErrorCategory = "provisioning_timeout"

	// ErrTerminationFailed means termination was rejected or could not be confirmed
	ErrTerminationFailed ErrorCategory = "termination_failed"

	// ErrGatewayUnavailable means the provider could not be reached or refused the credentials
	ErrGatewayUnavailable ErrorCategory = "gateway_unavailable"

	// ErrCancelled means the caller gave up, for example with Ctrl-C, before the operation finished
	ErrCancelled ErrorCategory = "operation_cancelled"
)

// ProvisionError is returned by every Service operation.
type ProvisionError struct {
	Category   ErrorCategory
	Message    string
	Resource   string // Instance id or rule group name, when known
	Phase      Phase  // Set for provisioning runs only
	Underlying error
}

// Error returns the error message
func (e *ProvisionError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Category, e.Message)
	if e.Resource != "" {
		msg = fmt.Sprintf("%s [resource: %s]", msg, e.Resource)
	}
	if e.Phase != "" {
		msg = fmt.Sprintf("%s (phase: %s)", msg, e.Phase)
	}
	if e.Underlying != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Underlying)
	}
	return msg
}

// Unwrap returns the underlying error (for errors.Is/As support)
func (e *ProvisionError) Unwrap() error {
	return e.Underlying
}

// NewProvisionError creates a new error with the given category and details
func NewProvisionError(category ErrorCategory, message, resource string, underlying error) *ProvisionError {
	return &ProvisionError{
		Category:   category,
		Message:    message,
		Resource:   resource,
		Underlying: underlying,
	}
}

// IsErrorCategory checks if an error belongs to a specific error category
func IsErrorCategory(err error, category ErrorCategory) bool {
	if err == nil {
		return false
	}

	var e *ProvisionError
	if errors.As(err, &e) {
		return e.Category == category
	}

	return false
}

// gatewayError wraps an error raised by the gateway. The category is derived from
// the gateway's classification, falling back to the category of the operation.
func gatewayError(err error, operation ErrorCategory, message, resource string) *ProvisionError {
	var existing *ProvisionError
	if errors.As(err, &existing) {
		return existing
	}
	return NewProvisionError(categorize(err, operation), message, resource, err)
}

func categorize(err error, operation ErrorCategory) ErrorCategory {
	classified := aws.ClassifyAWSError(err, "", "")
	if classified == nil {
		return operation
	}

	switch classified.Category {
	case aws.ErrWaitTimeout:
		if operation == ErrProvisioningFailed {
			return ErrProvisioningTimeout
		}
		return operation
	case aws.ErrCancelled:
		return ErrCancelled
	case aws.ErrPermissionDenied, aws.ErrNetworkError, aws.ErrConfigurationError:
		return ErrGatewayUnavailable
	default:
		return operation
	}
}
