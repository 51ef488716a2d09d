package secrets

import (
	"fmt"

	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/secretsmanager"
)

// FailureKind classifies a secrets manager failure. It only selects the
// diagnostic that gets logged, never how the failure is handled.
type FailureKind int

const (
	Unrecognized FailureKind = iota
	DecryptionFailure
	InternalServiceError
	InvalidParameter
	InvalidRequest
	ResourceNotFound
)

// KindFromCode maps a secrets manager error code to its FailureKind.
func KindFromCode(code string) FailureKind {
	switch code {
	case secretsmanager.ErrCodeDecryptionFailure:
		return DecryptionFailure
	case secretsmanager.ErrCodeInternalServiceError:
		return InternalServiceError
	case secretsmanager.ErrCodeInvalidParameterException:
		return InvalidParameter
	case secretsmanager.ErrCodeInvalidRequestException:
		return InvalidRequest
	case secretsmanager.ErrCodeResourceNotFoundException:
		return ResourceNotFound
	default:
		return Unrecognized
	}
}

// String returns the name of the kind.
func (kind FailureKind) String() string {
	switch kind {
	case DecryptionFailure:
		return "DecryptionFailure"
	case InternalServiceError:
		return "InternalServiceError"
	case InvalidParameter:
		return "InvalidParameter"
	case InvalidRequest:
		return "InvalidRequest"
	case ResourceNotFound:
		return "ResourceNotFound"
	default:
		return "Unrecognized"
	}
}

// Diagnostic returns a human readable explanation of the failure.
func (kind FailureKind) Diagnostic() string {
	switch kind {
	case DecryptionFailure:
		return "Secrets Manager can't decrypt the protected secret text using the provided KMS key."
	case InternalServiceError:
		return "An error occurred on the server side."
	case InvalidParameter:
		return "You provided an invalid value for a parameter."
	case InvalidRequest:
		return "You provided a parameter value that is not valid for the current state of the resource."
	case ResourceNotFound:
		return "We can't find the resource that you asked for."
	default:
		return "Unrecognized error."
	}
}

// RetrievalError is returned when the secret could not be fetched from the
// store. It wraps the original error unchanged.
type RetrievalError struct {
	Kind FailureKind
	Code string
	Err  error
}

// NewRetrievalError classifies err by its aws error code. Errors that do not
// carry a code are Unrecognized.
func NewRetrievalError(err error) *RetrievalError {
	rerr := &RetrievalError{Kind: Unrecognized, Err: err}

	if aerr, ok := err.(awserr.Error); ok {
		rerr.Code = aerr.Code()
		rerr.Kind = KindFromCode(aerr.Code())
	}

	return rerr
}

// Error implements error.
func (e *RetrievalError) Error() string {
	return fmt.Sprintf("failed retrieving secret (%s): %v", e.Kind, e.Err)
}

// Unwrap returns the original error.
func (e *RetrievalError) Unwrap() error {
	return e.Err
}

// Cause returns the original error for github.com/pkg/errors.Cause.
func (e *RetrievalError) Cause() error {
	return e.Err
}

// Message returns the log line for the failure.
func (e *RetrievalError) Message() string {
	if e.Kind == Unrecognized {
		return fmt.Sprintf("Unrecognized error: %s", e.Code)
	}

	return fmt.Sprintf("Failed with %s: %s", e.Code, e.Kind.Diagnostic())
}
