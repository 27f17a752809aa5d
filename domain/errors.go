package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aws/smithy-go"
	"github.com/cihub/seelog"
	"golang.org/x/exp/slices"
)

// ErrorKind groups service errors by how scenarios react to them
type ErrorKind int

const (
	KindGeneric ErrorKind = iota
	KindPermission
	KindNotFound
	KindValidation
	KindConflict
)

func (k ErrorKind) String() string {
	switch k {
	case KindPermission:
		return "permission"
	case KindNotFound:
		return "not-found"
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	default:
		return "generic"
	}
}

var permissionCodes = []string{
	"AccessDenied",
	"AccessDeniedException",
	"AccessDeniedForDependencyException",
	"UnauthorizedOperation",
}

var notFoundCodes = []string{
	"ResourceNotFoundException",
	"NoSuchBucket",
	"NoSuchKey",
	"NotFound",
}

var validationCodes = []string{
	"ValidationException",
	"ValidationError",
	"InvalidParameterValue",
}

// Classify maps an error returned by an AWS SDK call to an ErrorKind.
// Errors that do not carry an API error code are generic.
func Classify(err error) ErrorKind {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Kind
	}

	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return KindGeneric
	}

	code := apiErr.ErrorCode()
	switch {
	case slices.Contains(permissionCodes, code):
		return KindPermission
	case slices.Contains(notFoundCodes, code) || strings.HasSuffix(code, "NotFoundException"):
		return KindNotFound
	case slices.Contains(validationCodes, code):
		return KindValidation
	case code == "ConflictException":
		return KindConflict
	}
	return KindGeneric
}

// IsAlreadyEnabled reports whether err is the validation error returned when
// enabling a baseline or control that is already enabled on the target
func IsAlreadyEnabled(err error) bool {
	if err == nil || Classify(err) != KindValidation {
		return false
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return strings.Contains(strings.ToLower(apiErr.ErrorMessage()), "already enabled")
	}
	return false
}

// IsNotFound reports whether err signals a missing resource
func IsNotFound(err error) bool {
	return err != nil && Classify(err) == KindNotFound
}

// ServiceError wraps a failed SDK call with the operation name and its
// classification
type ServiceError struct {
	Operation string
	Kind      ErrorKind
	Err       error
}

// NewServiceError classifies err and wraps it for the named operation
func NewServiceError(operation string, err error) *ServiceError {
	return &ServiceError{
		Operation: operation,
		Kind:      Classify(err),
		Err:       err,
	}
}

// ReportServiceError wraps err for the named operation and logs it at error
// level. Permission errors get a hint about the caller's credentials.
func ReportServiceError(operation string, err error) error {
	svcErr := NewServiceError(operation, err)
	if svcErr.Kind == KindPermission {
		seelog.Errorf("%s: permission denied, check the IAM policy of the current credentials: %v", operation, err)
	} else {
		seelog.Errorf("%s: %v", operation, err)
	}
	return svcErr
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s failed (%s): %v", e.Operation, e.Kind, e.Err)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// OperationFailedError signals that a long-running operation reached a
// terminal failure status
type OperationFailedError struct {
	OperationIdentifier string
	Status              string
	Message             string
}

func (e OperationFailedError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("operation %s finished with status %s", e.OperationIdentifier, e.Status)
	}
	return fmt.Sprintf("operation %s finished with status %s: %s", e.OperationIdentifier, e.Status, e.Message)
}

// InterruptExecutionError signals the scenario should stop as soon as possible
type InterruptExecutionError struct {
	Wrap error
}

func (e InterruptExecutionError) Error() string {
	return e.Wrap.Error()
}

func (e InterruptExecutionError) Unwrap() error {
	return e.Wrap
}
